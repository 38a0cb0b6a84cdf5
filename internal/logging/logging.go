// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging configures the structured logger for the wellbot client.
//
// The TUI owns stdout and stderr, so log output goes to a file under the
// data directory instead. Never log tokens, credentials, or message bodies.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// logFileName under the data directory.
const logFileName = "wellbot.log"

// New creates a file-backed logger in dataDir. When the log file cannot be
// opened the logger discards output rather than fighting the TUI for the
// terminal.
func New(dataDir string, debug bool) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	var out io.Writer = io.Discard
	if err := os.MkdirAll(dataDir, 0755); err == nil {
		f, err := os.OpenFile(filepath.Join(dataDir, logFileName),
			os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err == nil {
			out = f
		}
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", "wellbot-tui").
		Logger()
}
