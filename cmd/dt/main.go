// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package main

import (
	"os"

	"devtask/cmd/cli"
	"devtask/cmd/tui"
	"devtask/internal/logger"
)

func main() {
	// `dt ui` opens the interactive picker; everything else, including no
	// arguments at all (which prints help), goes through the CLI.
	if len(os.Args) > 1 && os.Args[1] == "ui" {
		logger.Init(true)
		tui.RunTUI()
		return
	}
	logger.Init(false)
	cli.RunCLI()
}
