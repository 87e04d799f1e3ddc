// Copyright 2025 The AnaServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the anaserve anagram solver and IPC server.

AnaServe finds multi-word anagrams of a query string using a plain
line-oriented dictionary. Candidate words are bucketed by letter count,
longer combinations are composed by pairing shorter buckets, and the
results are ranked by a simple length-squared score so longer words
surface first. It can run as a msgpack IPC server for integration with
other tools, as an interactive CLI, or as a one-shot solver.

# Usage

Solve one query and exit:

	anaserve -q "dormitory"

Run in interactive CLI mode against a custom dictionary:

	anaserve -c -dict /usr/share/dict/words

Start the IPC server with debug logging:

	anaserve -d

The dictionary is a text file with one word per line. It is read once
at startup and kept in memory; every query seeds a fresh bucketed
store from it, since which words survive depends on the query's
letters.

# Search depth

The engine never pairs a combination half shorter than the minimum
split length. The default heuristic derives it from the query length,
which keeps long queries tractable but hides results built from very
short words. Lower it with -min, or pass -all to force a fully
exhaustive search with a minimum of one:

	anaserve -q "listen post" -min 2
	anaserve -q "eat" -all

Exhaustive searches grow combinatorially with the query length; -all
on anything beyond a dozen letters can take a long while.

# Configuration

Runtime configuration is managed through a TOML file that supports
solver parameters, dictionary settings, and CLI defaults:

	[solver]
	min_part = 0
	force_exhaustive = false
	workers = 1
	max_results = 64

	[dict]
	path = "data/words.txt"
	max_query_len = 60

The config file is automatically created with defaults if it doesn't
exist. min_part 0 selects the automatic heuristic.

# IPC Protocol

The server communicates via msgpack over stdin/stdout. Solve requests
carry the query and optional tuning values; responses return ranked
anagrams with solve timing in microseconds:

	{"id": "req1", "q": "dormitory", "l": 24}
	{"id": "req1", "s": [{"w": "dirty room", "sc": 41, "r": 1}], "c": 1, "t": 1840}

Dictionary requests support "get_info" and single-word anagram
"lookup" actions. See the server package docs for the full message
set.

# Command Line Flags

The following flags control application behavior:

	-dict string
	    Dictionary file, one word per line (default "data/words.txt")
	-q string
	    Solve a single query and exit
	-c  Run in interactive CLI mode instead of server mode
	-min int
	    Minimum letters per combination half (0 = auto heuristic)
	-all
	    Exhaustive search: force minimum split length to 1
	-limit int
	    Number of results to display (default from config)
	-workers int
	    Parallel workers for the pairing cross product
	-no-filter
	    Accept queries containing digits and symbols
	-config string
	    Custom config file path
	-d  Enable debug mode with detailed logging
	-version
	    Show current version

The application resolves dictionary and config paths relative to the
executable location, supporting both development and production
deployments.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/anaserve/internal/cli"
	"github.com/bastiangx/anaserve/internal/utils"
	"github.com/bastiangx/anaserve/pkg/anagram"
	"github.com/bastiangx/anaserve/pkg/config"
	"github.com/bastiangx/anaserve/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "anaserve"
	gh      = "https://github.com/bastiangx/anaserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires flags, config, and the dictionary into one of the three
// run modes. It manages the flow only; solving lives in pkg/anagram.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	dictPath := flag.String("dict", defaultConfig.Dict.Path, "Dictionary file, one word per line")
	configPath := flag.String("config", "", "Custom config file path")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run interactive CLI -- useful for testing and debugging")
	oneShot := flag.String("q", "", "Solve a single query and exit")
	minPart := flag.Int("min", defaultConfig.Solver.MinPart, "Minimum letters per combination half (0 = auto)")
	forceAll := flag.Bool("all", defaultConfig.Solver.ForceExhaustive, "Exhaustive search: force minimum split length to 1")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Number of results to display")
	workers := flag.Int("workers", defaultConfig.Solver.Workers, "Parallel workers for the pairing cross product")
	noFilter := flag.Bool("no-filter", defaultConfig.CLI.DefaultNoFilter, "Accept queries containing digits and symbols")

	flag.Parse()

	if *showVersion {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    false,
			ReportTimestamp: false,
			Prefix:          "",
		})

		styles := log.DefaultStyles()
		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		logger.SetStyles(styles)

		logger.Print("")
		logger.Print("[ AnaServe ] Finds multi-word anagrams, ranked!")
		logger.Print("", "version", Version)
		logger.Print("")
		logger.Print("use -h or --help to see available options")
		logger.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	appConfigPath, err := pathResolver.GetConfigPath("config.toml")
	if err != nil {
		log.Fatalf("Failed to determine config path: (%v)", err)
	}
	log.Debugf("Using config file: (%s)", appConfigPath)

	var appConfig *config.Config
	if *configPath != "" {
		appConfig, _, err = config.LoadConfigWithPriority(*configPath)
	} else {
		appConfig, err = config.InitConfig(appConfigPath)
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	resolvedDict, err := pathResolver.GetDictPath(*dictPath)
	if err != nil {
		log.Fatalf("Failed to resolve dictionary: %v", err)
	}
	log.Debugf("Using dictionary at: %s", resolvedDict)

	lines, err := anagram.FileSource{Path: resolvedDict}.Words()
	if err != nil {
		log.Fatalf("Failed to read dictionary: %v", err)
	}
	words := anagram.WordList(lines)

	opts := anagram.Options{
		MinPart:         *minPart,
		ForceExhaustive: *forceAll,
		Workers:         *workers,
	}

	// One-shot and CLI modes take their tuning from flags; server
	// mode is driven by the config file plus per-request fields.
	if *oneShot != "" {
		log.SetLevel(log.InfoLevel)
		if *debugMode {
			log.SetLevel(log.DebugLevel)
		}
		handler := cli.NewInputHandler(words, opts, *limit, *noFilter)
		handler.Query(*oneShot)
		return
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"minPart", *minPart,
			"forceAll", *forceAll,
			"limit", *limit,
			"workers", *workers)

		handler := cli.NewInputHandler(words, opts, *limit, *noFilter)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(words, resolvedDict, appConfig)

	showStartupInfo(resolvedDict, len(words))

	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(dictPath string, wordCount int) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	fmt.Fprintln(os.Stderr, "==========")
	fmt.Fprintln(os.Stderr, " AnaServe ")
	fmt.Fprintln(os.Stderr, "==========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("dictionary: ( %s ), %d words", dictPath, wordCount)
	log.Info("status: ready")
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
