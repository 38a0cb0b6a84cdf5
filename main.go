// WellBot TUI - A terminal client for the WellBot wellness chatbot.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/wellbot/wellbot-tui/internal/api"
	"github.com/wellbot/wellbot-tui/internal/config"
	"github.com/wellbot/wellbot-tui/internal/logging"
	"github.com/wellbot/wellbot-tui/internal/session"
	"github.com/wellbot/wellbot-tui/internal/storage"
	"github.com/wellbot/wellbot-tui/internal/ui/app"
)

// Version information (set at build time)
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	for _, arg := range os.Args[1:] {
		if arg == "--version" || arg == "-v" {
			fmt.Printf("wellbot-tui %s (%s, built %s)\n", Version, GitCommit, BuildDate)
			return
		}
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A local .env can override server settings during development. Its
	// absence is the normal case.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dataDir, err := cfg.Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return fmt.Errorf("could not create data directory: %w", err)
	}

	log := logging.New(dataDir, cfg.Debug)
	log.Info().
		Str("version", Version).
		Str("server_url", cfg.Server.URL).
		Msg("starting wellbot-tui")

	tokens, err := session.NewFileStore(dataDir)
	if err != nil {
		return err
	}

	history, err := storage.NewHistoryStore(dataDir)
	if err != nil {
		return err
	}

	client := api.NewClient(cfg.Server.URL, tokens, log).WithTimeout(cfg.Timeout())

	root := app.New(cfg, log, tokens, history, client)
	program := tea.NewProgram(root, tea.WithAltScreen())

	// Config edits take effect without a restart.
	cfgPath, err := config.Path()
	if err == nil {
		watcher, werr := config.NewWatcher(cfgPath, log, func(next *config.Config) {
			program.Send(app.ConfigUpdatedMsg{Config: next})
		})
		if werr != nil {
			log.Warn().Err(werr).Msg("config watcher unavailable")
		} else {
			defer watcher.Close()
		}
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}

	log.Info().Msg("wellbot-tui exited")
	return nil
}
