// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package logging sets up the structured logger
// used by cladedef commands.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Init sets the default logger.
// If verbose is true,
// debug messages will be logged.
// Format is either "text" or "json".
// If w is nil, os.Stderr is used.
func Init(w io.Writer, verbose bool, format string) {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch format {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(h))
}

// New returns a logger for a command.
func New(command string) *slog.Logger {
	return slog.Default().With(slog.String("cmd", command))
}
