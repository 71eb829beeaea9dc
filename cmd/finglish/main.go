// Copyright 2026 The Finglish Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the finglish converter CLI and IPC server.

Finglish turns Persian written in Latin letters ("salam doost") into Persian
script ("سلام دوست"). Every word is split into letter clusters, the clusters
are mapped through position tables for the beginning, middle and end of a
word, and the resulting spellings are ranked by how often they appear in a
Persian word frequency list. A small dictionary of fixed translations takes
precedence over the tables.

# Usage

Convert one phrase typed at the prompt:

	finglish
	finglish: salam doost
	1.0 سلام دوست

Keep prompting until EOF, with at most 3 results per phrase:

	finglish -i -limit 3

Run as a MessagePack IPC server on stdin/stdout:

	finglish -s

Use data files from a directory instead of the ones compiled in:

	finglish -data /path/to/data -d

The data directory must hold f2p-beginning.txt, f2p-middle.txt,
f2p-ending.txt, persian-word-freq.txt and f2p-dict.txt; the names can be
changed in the config file.

# Configuration

Runtime configuration lives in a TOML file, created with defaults on first
run in the user config directory (or at the -config path):

	[convert]
	max_word_size = 15
	cutoff = 3
	display_limit = 10

	[server]
	max_limit = 64
	max_phrase_len = 512
	cache_size = 4096

	[log]
	level = "warn"

FINGLISH_* environment variables override the file, and flags override both.

# IPC Protocol

Requests and responses are msgpack maps; see package server.

	{"id": "req1", "p": "salam doost", "l": 5}
	{"id": "req1", "s": [{"t": "سلام دوست", "c": 1.0, "r": 1}], "c": 1, "t": 212}

# Command Line Flags

	-data string
	    Directory containing the data files (default: compiled-in data)
	-config string
	    Path to the TOML config file
	-d  Enable debug logging
	-s  Run the msgpack IPC server instead of the prompt
	-i  Keep prompting until end of input
	-limit int
	    Number of phrase candidates to print
	-max-word int
	    Longest word that gets converted
	-cutoff int
	    Candidates kept per word
	-version
	    Show the current version
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/bastiangx/finglish/internal/cli"
	"github.com/bastiangx/finglish/internal/logger"
	"github.com/bastiangx/finglish/internal/utils"
	"github.com/bastiangx/finglish/pkg/config"
	"github.com/bastiangx/finglish/pkg/convert"
	"github.com/bastiangx/finglish/pkg/dictionary"
	"github.com/bastiangx/finglish/pkg/server"
)

const (
	Version        = "0.3.0"
	AppName        = "finglish"
	configFileName = "finglish.toml"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler(cancel context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		cancel()
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, data, converter and the chosen front end together.
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigHandler(cancel)

	showVersion := flag.Bool("version", false, "Show current version")
	dataDir := flag.String("data", "", "Directory containing the data files (empty uses the compiled-in data)")
	configPath := flag.String("config", "", "Path to the TOML config file")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	serverMode := flag.Bool("s", false, "Run the msgpack IPC server on stdin/stdout")
	interactive := flag.Bool("i", false, "Keep prompting until end of input")
	limit := flag.Int("limit", 0, "Number of phrase candidates to print (default from config)")
	maxWord := flag.Int("max-word", 0, "Longest word, in characters, that gets converted (default from config)")
	cutoff := flag.Int("cutoff", 0, "Candidates kept per word (default from config)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Debug logging is on before the config is read so config problems show.
	if *debugMode {
		_ = logger.Configure("debug")
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	if *configPath == "" {
		*configPath = pathResolver.GetConfigPath(configFileName)
	}
	log.Debugf("Using config file: (%s)", utils.GetAbsolutePath(*configPath))

	appConfig, err := config.InitConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	applyFlags(appConfig, *dataDir, *limit, *maxWord, *cutoff)
	if err := appConfig.Validate(); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	level := appConfig.Log.Level
	if *debugMode {
		level = "debug"
	}
	if err := logger.Configure(level); err != nil {
		log.Fatalf("Failed to set log level: %v", err)
	}

	data, err := loadData(ctx, pathResolver, appConfig)
	if err != nil {
		log.Fatalf("Failed to load data: %v", err)
	}

	converter, err := convert.New(data,
		convert.WithMaxWordSize(appConfig.Convert.MaxWordSize),
		convert.WithCutoff(appConfig.Convert.Cutoff),
	)
	if err != nil {
		log.Fatalf("Failed to init converter: %v", err)
	}
	log.Debug("Converter init done", "options", converter.Options())

	if *serverMode {
		var t convert.Transliterator = converter
		if appConfig.Server.CacheSize > 0 {
			t = convert.NewWordCache(converter, appConfig.Server.CacheSize)
		}
		log.Debug("spawning IPC", "pid", os.Getpid(), "cache", appConfig.Server.CacheSize)

		srv := server.NewServer(t, appConfig, os.Stdin, os.Stdout)
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	inputHandler := cli.NewInputHandler(converter, os.Stdin, os.Stdout, appConfig.Convert.DisplayLimit, *interactive)
	if err := inputHandler.Start(); err != nil {
		log.Fatalf("CLI error: %v", err)
	}
}

// applyFlags lets explicitly given flags win over the config file.
func applyFlags(cfg *config.Config, dataDir string, limit, maxWord, cutoff int) {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["data"] {
		cfg.Data.Dir = dataDir
	}
	if set["limit"] {
		cfg.Convert.DisplayLimit = limit
	}
	if set["max-word"] {
		cfg.Convert.MaxWordSize = maxWord
	}
	if set["cutoff"] {
		cfg.Convert.Cutoff = cutoff
	}
}

// loadData reads the compiled-in data, or the configured data directory.
func loadData(ctx context.Context, pr *utils.PathResolver, cfg *config.Config) (*dictionary.Data, error) {
	if cfg.Data.Dir == "" {
		log.Debug("Using compiled-in data")
		return dictionary.LoadDefault(ctx)
	}

	files := cfg.Files()
	dir, ok := pr.GetDataDir(cfg.Data.Dir, files.Beginning)
	if !ok {
		return nil, fmt.Errorf("no data files found for %q (looked for %s)", cfg.Data.Dir, files.Beginning)
	}
	log.Debugf("Using data dir at: %s", utils.GetAbsolutePath(dir))
	return dictionary.LoadDir(ctx, dir, files)
}

func printVersion() {
	banner := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["tables"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ Finglish ] Persian from Latin letters")
	banner.Print("", "version", Version)
	banner.Print("", "tables", "beginning / middle / ending")
	banner.Print("")
	banner.Print("use -h or --help to see available options")
}
