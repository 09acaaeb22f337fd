// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package envfile loads dotenv-style KEY=VALUE files into the process
// environment so that child processes spawned afterwards inherit them.
package envfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"devtask/internal/logger"
)

// DefaultDir returns the directory env files resolve against when no
// override is configured: the directory containing the running binary,
// not the caller's working directory.
func DefaultDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// Resolve returns path unchanged when absolute, otherwise joined onto dir.
func Resolve(path, dir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// Load reads the env file at path (resolved against dir when relative) and
// exports every assignment it defines into the process environment,
// overwriting existing values. A missing file is not an error: a diagnostic
// is printed and the run continues. Malformed lines (no '=', empty key) are
// skipped with a warning rather than failing the run.
func Load(path, dir string) {
	resolved := Resolve(path, dir)

	f, err := os.Open(resolved)
	if err != nil {
		fmt.Fprintf(os.Stderr, "env file not found: %s (continuing without it)\n", resolved)
		logger.Debug("env file not found", "path", resolved)
		return
	}
	defer f.Close()

	lineNo := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			fmt.Fprintf(os.Stderr, "warning: skipping malformed line %d in %s\n", lineNo, resolved)
			continue
		}

		value = unquote(strings.TrimSpace(value))
		if err := os.Setenv(key, value); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not set %s from %s: %v\n", key, resolved, err)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: error reading %s: %v\n", resolved, err)
	}
	logger.Debug("env file loaded", "path", resolved)
}

// unquote strips one pair of matching surrounding quotes, the usual dotenv
// convention. Unmatched or interior quotes are left alone.
func unquote(v string) string {
	if len(v) < 2 {
		return v
	}
	if (v[0] == '"' && v[len(v)-1] == '"') || (v[0] == '\'' && v[len(v)-1] == '\'') {
		return v[1 : len(v)-1]
	}
	return v
}
