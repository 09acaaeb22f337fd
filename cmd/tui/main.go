// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package tui

import (
	"fmt"
	"os"

	"devtask/internal/config"
	"devtask/internal/dispatch"
	"devtask/internal/runner"
	"devtask/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// RunTUI runs the Bubble Tea command picker and, when the user selects an
// entry, dispatches it through the normal pipeline after the TUI has
// released the terminal. The child always gets the real stdio.
func RunTUI() {
	m := ui.InitialModel()
	p := tea.NewProgram(&m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}

	picked, ok := final.(*ui.Model).Choice()
	if !ok {
		return
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	code := dispatch.Run(picked, nil, dispatch.NewOptions(cfg, runner.Local{}))
	if code != 0 {
		os.Exit(code)
	}
}
