package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver provides robust path resolution for the anaserve binary
type PathResolver struct {
	executablePath string
	executableDir  string
	homeDir        string
	configDir      string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}

	// Resolve symlinks to the actual binary location
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}
	execDir := filepath.Dir(execPath)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = "/tmp" // fallback
	}
	configDir := getConfigDir(homeDir)

	pr := &PathResolver{
		executablePath: execPath,
		executableDir:  execDir,
		homeDir:        homeDir,
		configDir:      configDir,
	}

	log.Debugf("PathResolver initialized: exec=%s, execDir=%s, configDir=%s",
		execPath, execDir, configDir)
	return pr, nil
}

// getConfigDir returns the appropriate config directory for the platform
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, ".config", "anaserve")
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "anaserve")
		}
		return filepath.Join(homeDir, ".config", "anaserve")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "anaserve")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "anaserve")
	default:
		return filepath.Join(homeDir, ".anaserve")
	}
}

// GetDictPath resolves the dictionary file path. Candidates in order
// of preference: the path as given (if absolute), relative to the
// executable directory, relative to the working directory, and the
// config directory.
func (pr *PathResolver) GetDictPath(userSpecifiedPath string) (string, error) {
	var candidates []string

	if filepath.IsAbs(userSpecifiedPath) {
		candidates = append(candidates, userSpecifiedPath)
	}
	candidates = append(candidates, filepath.Join(pr.executableDir, userSpecifiedPath))
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, userSpecifiedPath))
	}
	candidates = append(candidates, filepath.Join(pr.configDir, filepath.Base(userSpecifiedPath)))

	for _, path := range candidates {
		if FileExists(path) {
			log.Debugf("Found dictionary file: %s", path)
			return path, nil
		}
		log.Debugf("Dictionary candidate not found: %s", path)
	}
	return "", fmt.Errorf("dictionary file %q not found in any candidate location", userSpecifiedPath)
}

// GetConfigPath returns the path for the named config file, creating
// the config directory when needed.
func (pr *PathResolver) GetConfigPath(filename string) (string, error) {
	if err := EnsureDir(pr.configDir); err != nil {
		log.Warnf("Cannot create config directory %s: %v", pr.configDir, err)
		return filepath.Join(pr.executableDir, filename), nil
	}
	return filepath.Join(pr.configDir, filename), nil
}
