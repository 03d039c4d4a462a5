// Copyright 2026 The Dungeon Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger creates a structured logger for command
// operations. When stderr is a terminal, slog.TextHandler gives
// human-readable output; when piped or redirected (CI, scripts),
// slog.JSONHandler gives machine-parseable lines.
//
// Commands scope the logger with invocation context via With():
//
//	logger := logger.With("verb", "test", "features", selection.FeatureSet())
func NewCommandLogger() *slog.Logger {
	var handler slog.Handler
	options := &slog.HandlerOptions{Level: slog.LevelInfo}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}
