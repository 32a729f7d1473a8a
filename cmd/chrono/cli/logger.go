// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger creates a structured logger for CLI command operations.
// When stderr is a terminal, uses slog.TextHandler for human-readable output.
// When stderr is piped or redirected (CI, scripts), uses slog.JSONHandler
// for machine-parseable output.
//
// The level is Info unless CHRONO_LOG_LEVEL names another slog level
// ("debug", "warn", "error").
//
// [Command.Execute] scopes the logger with the command path before
// calling Run. Commands add their own context via With():
//
//	logger = logger.With("zone", loc.String(), "format", format)
func NewCommandLogger() *slog.Logger {
	return newLogger(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())), levelFromEnv(os.Getenv("CHRONO_LOG_LEVEL")))
}

func newLogger(w io.Writer, terminal bool, level slog.Level) *slog.Logger {
	var handler slog.Handler
	options := &slog.HandlerOptions{Level: level}
	if terminal {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler)
}

// levelFromEnv parses a slog level name. Empty or unknown names are Info.
func levelFromEnv(value string) slog.Level {
	var level slog.Level
	if value == "" || level.UnmarshalText([]byte(value)) != nil {
		return slog.LevelInfo
	}
	return level
}
