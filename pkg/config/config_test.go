package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Zero(t, cfg.Solver.MinPart, "min_part 0 means auto heuristic")
	assert.False(t, cfg.Solver.ForceExhaustive)
	assert.Equal(t, 1, cfg.Solver.Workers)
	assert.Equal(t, 64, cfg.Solver.MaxResults)
	assert.Equal(t, "data/words.txt", cfg.Dict.Path)
	assert.Equal(t, 60, cfg.Dict.MaxQueryLen)
	assert.Equal(t, 24, cfg.CLI.DefaultLimit)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[solver]
min_part = 4
workers = 8

[dict]
path = "/opt/words"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Solver.MinPart)
	assert.Equal(t, 8, cfg.Solver.Workers)
	assert.Equal(t, "/opt/words", cfg.Dict.Path)
	// untouched sections keep their defaults
	assert.Equal(t, 64, cfg.Solver.MaxResults)
	assert.Equal(t, 24, cfg.CLI.DefaultLimit)
}

func TestSaveAndReloadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Solver.ForceExhaustive = true
	cfg.CLI.DefaultLimit = 12
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, loaded.Solver.ForceExhaustive)
	assert.Equal(t, 12, loaded.CLI.DefaultLimit)
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)
}

func TestPartialParseRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	// valid solver section; the dict path type is wrong and must be
	// ignored without losing the rest
	content := `
[solver]
min_part = 2

[dict]
path = 123
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Solver.MinPart)
	assert.Equal(t, "data/words.txt", cfg.Dict.Path, "bad value falls back to default")
}
