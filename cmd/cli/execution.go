// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"os"

	"devtask/internal/dispatch"
	"devtask/internal/registry"
	"devtask/internal/runner"

	"github.com/spf13/cobra"
)

// newEntryCommand wraps one dispatch-table row in a cobra command. The row
// stays the single source of truth: name, summary, and the resolved command
// line all come from the entry.
func newEntryCommand(entry registry.Entry) *cobra.Command {
	use := entry.Name
	if entry.ForwardArgs {
		use += " [-- <args...>]"
	}

	long := fmt.Sprintf("%s.\n\nRuns: %s", entry.Summary, dispatch.Describe(entry))
	if entry.EnvFile != "" {
		long += fmt.Sprintf("\nLoads: %s (if present)", entry.EnvFile)
	}
	if entry.RequiresTool != "" {
		long += fmt.Sprintf("\nRequires: %s on PATH", entry.RequiresTool)
	}

	return &cobra.Command{
		Use:   use,
		Short: entry.Summary,
		Long:  long,
		Args:  cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			code := dispatch.Run(entry, args, dispatch.NewOptions(cfg, runner.Local{}))
			if code != 0 {
				os.Exit(code)
			}
		},
	}
}
