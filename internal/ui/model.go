// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui implements the Bubble Tea command picker. It only selects a
// table entry; the actual dispatch happens after the program has exited and
// the terminal is back in normal mode.
package ui

import (
	"fmt"
	"strings"

	"devtask/internal/dispatch"
	"devtask/internal/registry"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the picker state: the full dispatch table, a cursor, and the
// confirmed choice (if any) once the program quits.
type Model struct {
	entries []registry.Entry
	cursor  int
	choice  int // index into entries, -1 until confirmed
	width   int
	height  int
	keys    KeyMap
}

// InitialModel builds the picker over the full dispatch table.
func InitialModel() Model {
	return Model{
		entries: registry.All(),
		choice:  -1,
		keys:    DefaultKeyMap,
	}
}

// Choice returns the confirmed entry and whether one was confirmed.
func (m *Model) Choice() (registry.Entry, bool) {
	if m.choice < 0 {
		return registry.Entry{}, false
	}
	return m.entries[m.choice], true
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Home):
			m.cursor = 0
		case key.Matches(msg, m.keys.End):
			m.cursor = len(m.entries) - 1
		case key.Matches(msg, m.keys.Enter):
			m.choice = m.cursor
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("devtask — select a command"))
	b.WriteString("\n\n")

	nameWidth := 0
	for _, e := range m.entries {
		if len(e.Name) > nameWidth {
			nameWidth = len(e.Name)
		}
	}

	for i, e := range m.entries {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		name := nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, e.Name))
		b.WriteString(fmt.Sprintf("%s%s  %s\n", cursor, name, summaryStyle.Render(e.Summary)))
	}

	b.WriteString("\n")
	b.WriteString(commandStyle.Render("runs: " + dispatch.Describe(m.entries[m.cursor])))
	b.WriteString("\n\n")
	b.WriteString(m.footerView())

	return b.String()
}

// footerView renders the help line from the key map.
func (m *Model) footerView() string {
	bindings := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter, m.keys.Quit}
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+footerStyle.Render(" "+h.Desc))
	}
	return footerStyle.Render(strings.Join(parts, footerSeparatorStyle.Render(" | ")))
}
