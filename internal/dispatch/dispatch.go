// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package dispatch turns a resolved command entry into an external process:
// tool check, env file load, argument vector build, spawn, exit code
// propagation. It is the piece between the command table and the host.
package dispatch

import (
	"os"
	"path/filepath"
	"time"

	"devtask/internal/config"
	"devtask/internal/envfile"
	"devtask/internal/logger"
	"devtask/internal/registry"
	"devtask/internal/runner"
	"devtask/internal/util"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

// DefaultSchemaOut is where the schema dump lands unless overridden.
const DefaultSchemaOut = "src/schema/table.rs"

var (
	errorColor   = color.New(color.FgRed)
	stepColor    = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen)
)

// Options carries the host capabilities and path overrides for a dispatch.
type Options struct {
	Runner    runner.Runner
	EnvDir    string
	SchemaOut string
}

// NewOptions builds Options from the user config, filling in defaults for
// anything the config leaves unset.
func NewOptions(cfg config.Config, r runner.Runner) Options {
	opts := Options{Runner: r, EnvDir: cfg.EnvDir, SchemaOut: cfg.SchemaOut}
	if opts.Runner == nil {
		opts.Runner = runner.Local{}
	}
	if opts.EnvDir == "" {
		opts.EnvDir = envfile.DefaultDir()
	}
	if opts.SchemaOut == "" {
		opts.SchemaOut = DefaultSchemaOut
	}
	return opts
}

// Run executes entry with the given trailing user arguments and returns the
// exit code for the overall run: the child's own code when it ran, 1 when
// the required tool is missing or the child could not be started.
func Run(entry registry.Entry, trailing []string, opts Options) int {
	if entry.RequiresTool != "" {
		if err := opts.Runner.LookPath(entry.RequiresTool); err != nil {
			errorColor.Fprintf(os.Stderr, "Error: required tool '%s' was not found on PATH.\n", entry.RequiresTool)
			logger.Error("required tool missing", "tool", entry.RequiresTool, "command", entry.Name)
			return 1
		}
	}

	if entry.EnvFile != "" {
		envfile.Load(entry.EnvFile, opts.EnvDir)
	}

	argv := entry.Argv(trailing)
	stepColor.Fprintf(os.Stderr, "+ %s\n", util.QuoteCommand(entry.Program, argv))
	logger.Debug("dispatching", "command", entry.Name, "program", entry.Program, "args", argv)

	if entry.Kind == registry.KindSchemaDump {
		return runSchemaDump(entry, argv, opts)
	}

	code, err := opts.Runner.Run(entry.Program, argv)
	if err != nil {
		errorColor.Fprintf(os.Stderr, "Error: failed to start %s: %v\n", entry.Program, err)
		logger.Error("spawn failed", "program", entry.Program, "error", err)
		return 1
	}
	logger.Debug("command finished", "command", entry.Name, "exit_code", code)
	return code
}

// runSchemaDump captures the program's stdout instead of streaming it and,
// on success, writes it verbatim to the schema file. Nothing is written
// when the child exits non-zero.
func runSchemaDump(entry registry.Entry, argv []string, opts Options) int {
	if err := os.MkdirAll(filepath.Dir(opts.SchemaOut), 0755); err != nil {
		errorColor.Fprintf(os.Stderr, "Error: could not create %s: %v\n", filepath.Dir(opts.SchemaOut), err)
		return 1
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Color("cyan")
	s.Suffix = " Dumping database schema..."
	s.Start()
	out, code, err := opts.Runner.Capture(entry.Program, argv)
	s.Stop()

	if err != nil {
		errorColor.Fprintf(os.Stderr, "Error: failed to start %s: %v\n", entry.Program, err)
		logger.Error("spawn failed", "program", entry.Program, "error", err)
		return 1
	}
	if code != 0 {
		errorColor.Fprintf(os.Stderr, "Error: %s exited with status %d, schema file not written.\n", entry.Program, code)
		return code
	}

	if err := os.WriteFile(opts.SchemaOut, out, 0644); err != nil {
		errorColor.Fprintf(os.Stderr, "Error: could not write %s: %v\n", opts.SchemaOut, err)
		return 1
	}
	successColor.Printf("Schema written to %s\n", opts.SchemaOut)
	logger.Debug("schema dumped", "file", opts.SchemaOut, "bytes", len(out))
	return 0
}

// Describe returns the command line entry would execute, for display in
// help and the picker.
func Describe(entry registry.Entry) string {
	return util.QuoteCommand(entry.Program, entry.FixedArgs)
}
