// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package logger provides the application's structured logging. Records go
// to a JSON log file under the XDG state directory and, unless the TUI is
// active, to stderr as well.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

var defaultLogger *slog.Logger

// LogFilePath determines the path for the application log file based on
// the XDG spec.
func LogFilePath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}
	return filepath.Join(stateDir, "devtask", "app.log"), nil
}

// Init configures the default logger. It must be called once at startup.
// The log file keeps everything down to debug; stderr only sees info and
// above, and is suppressed entirely when isTUI is true so log records do
// not corrupt the Bubble Tea screen.
func Init(isTUI bool) {
	var handlers []slog.Handler

	logFilePath, err := LogFilePath()
	if err == nil {
		if mkErr := os.MkdirAll(filepath.Dir(logFilePath), 0750); mkErr == nil {
			file, openErr := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
			if openErr == nil {
				handlers = append(handlers, slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))
			} else {
				fmt.Fprintf(os.Stderr, "Error opening log file %s: %v. File logging disabled.\n", logFilePath, openErr)
			}
		} else {
			fmt.Fprintf(os.Stderr, "Error creating log directory for %s: %v. File logging disabled.\n", logFilePath, mkErr)
		}
	} else {
		fmt.Fprintf(os.Stderr, "Error determining log file path: %v. File logging disabled.\n", err)
	}

	if !isTUI {
		handlers = append(handlers, slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	switch len(handlers) {
	case 0:
		defaultLogger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	case 1:
		defaultLogger = slog.New(handlers[0])
	default:
		defaultLogger = slog.New(fanoutHandler(handlers))
	}
}

// fanoutHandler forwards each record to every handler enabled for its
// level, letting the file and stderr keep different thresholds.
type fanoutHandler []slog.Handler

func (h fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, hh := range h {
		if hh.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h fanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, hh := range h {
		if hh.Enabled(ctx, r.Level) {
			if err := hh.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (h fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanoutHandler, len(h))
	for i, hh := range h {
		out[i] = hh.WithAttrs(attrs)
	}
	return out
}

func (h fanoutHandler) WithGroup(name string) slog.Handler {
	out := make(fanoutHandler, len(h))
	for i, hh := range h {
		out[i] = hh.WithGroup(name)
	}
	return out
}

// SetLogger replaces the default logger instance. Intended for tests.
func SetLogger(l *slog.Logger) {
	defaultLogger = l
}

// checkLogger guards against use before Init, which would otherwise panic.
func checkLogger() {
	if defaultLogger == nil {
		Init(false)
	}
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	checkLogger()
	defaultLogger.Debug(msg, args...)
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	checkLogger()
	defaultLogger.Info(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	checkLogger()
	defaultLogger.Warn(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	checkLogger()
	defaultLogger.Error(msg, args...)
}
