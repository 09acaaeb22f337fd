// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package cli builds the cobra command tree from the dispatch table and
// handles exit-code propagation for the CLI surface.
package cli

import (
	"fmt"
	"os"

	"devtask/internal/config"
	"devtask/internal/registry"

	"github.com/spf13/cobra"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "dt <command> [-- <args...>]",
	Short: "Developer workflow dispatcher",
	Long: `dt maps short workflow commands to cargo, diesel and docker invocations,
loading environment overrides from dotenv files before dispatch.

Env files (.env.local, .env.staging, .env.production) are resolved relative
to the dt binary and are not required to exist. Trailing arguments after --
are forwarded to the external program where the command supports it.

Run 'dt ui' for an interactive command picker.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.EnsureConfigDir(); err != nil {
			return fmt.Errorf("failed to ensure config directory: %w", err)
		}
		loaded, err := config.LoadConfig()
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

// RunCLI executes the root command. Unknown commands exit 1 with the full
// usage listing on stderr; help and its aliases exit 0. Dispatched commands
// exit with the child's own code from inside their Run.
func RunCLI() {
	if executeRoot(rootCmd) != nil {
		os.Exit(1)
	}
}

// executeRoot runs the command tree and, on failure, follows cobra's error
// line with the full usage listing so an unrecognized command still shows
// every available one.
func executeRoot(root *cobra.Command) error {
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(root.ErrOrStderr(), root.UsageString())
	}
	return err
}

func init() {
	for _, entry := range registry.All() {
		rootCmd.AddCommand(newEntryCommand(entry))
	}
}
