// Copyright 2025 The tokenpick Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the tokenpick match server and CLI [DBG] application.

tokenpick scores how well a short query matches candidate strings, favoring
matches aligned with token boundaries (word starts, camelCase components)
over arbitrary substring matches. It can operate as a MessagePack IPC server
for integration with editors and pickers, or as a CLI application for
testing and debugging.

Token-aligned matches are scored through a bias multiplier so they always
outrank plain subsequence matches of comparable quality. Candidates that do
not match at all are dropped; the rest come back sorted by score.

# Usage

Start the server with default settings:

	tokenpick

Run in CLI mode against a candidate file, with debug logging:

	tokenpick -c -f symbols.txt -d

The candidate file holds one candidate string per line. In server mode the
candidate set is managed over the IPC protocol instead.

# Configuration

Runtime configuration is managed through a TOML file:

	[match]
	token_score_bias = 10.0

	[server]
	max_query = 60
	max_candidates = 50000
	default_limit = 24

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Search requests
are processed synchronously with microsecond timing information included in
responses.

Send a search request:

	{"id": "req1", "cmd": "search", "q": "text", "l": 20}

Receive ranked candidates:

	{"id": "req1", "rs": [{"s": "DOM.getText", "i": 0, "r": 1.19, "m": [7,8,9,10]}], "c": 1, "t": 145}

Candidate management requests adjust the held set at runtime:

	{"id": "c1", "cmd": "candidates", "action": "add", "cs": ["DOM.getText"]}
	{"id": "c2", "cmd": "candidates", "action": "count"}

# Command Line Flags

The following flags control application behavior:

	-f string
	    Candidate file for CLI mode, one candidate per line
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-limit int
	    Number of results to show (default from config)
	-bias float
	    Token score bias override (0 keeps the configured value)
	-config string
	    Custom config file path
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/tokenpick/tokenpick/internal/cli"
	"github.com/tokenpick/tokenpick/internal/utils"
	"github.com/tokenpick/tokenpick/pkg/config"
	"github.com/tokenpick/tokenpick/pkg/match"
	"github.com/tokenpick/tokenpick/pkg/search"
	"github.com/tokenpick/tokenpick/pkg/server"
)

const (
	Version = "0.3.0"
	AppName = "tokenpick"
	gh      = "https://github.com/tokenpick/tokenpick"
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

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	candidateFile := flag.String("f", "", "Candidate file for CLI mode (one candidate per line)")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Number of results to show")
	bias := flag.Float64("bias", 0, "Token score bias override (0 keeps the configured value)")
	configPathFlag := flag.String("config", "", "Custom config file path")

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
		styles.Values["version"] = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})

		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

		logger.SetStyles(styles)

		logger.Print("")
		logger.Print("[ tokenpick ] Ranks candidates the way your fingers expect!")
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

	appConfig, configPath, err := config.LoadConfigWithPriority(*configPathFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
		os.Exit(1)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(configPath))

	if *bias > 0 {
		appConfig.Match.TokenScoreBias = *bias
	}

	// CLI is mainly used for testing and dbg purposes.
	// Any new features or changes should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)

		if *candidateFile == "" {
			log.Fatal("CLI mode needs a candidate file, pass one with -f")
			os.Exit(1)
		}
		candidates, err := utils.ReadLines(*candidateFile)
		if err != nil {
			log.Fatalf("Failed to read candidate file %s: %v", *candidateFile, err)
			os.Exit(1)
		}
		log.Debug("Input info:",
			"candidates", len(candidates),
			"limit", *limit,
			"bias", appConfig.Match.TokenScoreBias)

		opts := search.Options{
			Match:     match.Options{TokenScoreBias: appConfig.Match.TokenScoreBias},
			CacheSize: 128,
		}
		inputHandler := cli.NewInputHandler(candidates, appConfig.CLI.MaxQuery, *limit, opts)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
			os.Exit(1)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(appConfig, configPath)

	showStartupInfo()

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo() {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	fmt.Fprintln(os.Stderr, "===========")
	fmt.Fprintln(os.Stderr, " tokenpick ")
	fmt.Fprintln(os.Stderr, "===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Info("status: ready")
	fmt.Fprintln(os.Stderr, "===========")
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
