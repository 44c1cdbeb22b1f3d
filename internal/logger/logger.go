// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package logger

import (
	"io"
	"log/slog"
	"os"
)

var defaultLogger *slog.Logger

// newLogger builds a JSON logger writing to w. Verbose enables debug records;
// otherwise only warnings and errors are emitted so normal output stays clean.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// InitLogger configures the default logger. It should be called once, before
// any command runs. Logs never go to a file; rollr keeps no state between runs.
func InitLogger(w io.Writer, verbose bool) {
	defaultLogger = newLogger(w, verbose)
	Debug("Logging configured.", "verbose", verbose)
}

// checkLogger ensures the logger is initialized before use, preventing nil panics.
func checkLogger() {
	if defaultLogger == nil {
		defaultLogger = newLogger(os.Stderr, false)
	}
}

// Error logs an error message.
func Error(msg string, args ...any) {
	checkLogger()
	defaultLogger.Error(msg, args...)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	checkLogger()
	defaultLogger.Debug(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	checkLogger()
	defaultLogger.Warn(msg, args...)
}
