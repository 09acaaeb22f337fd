// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package util

import "strings"

// QuoteArg renders an argument for the echoed command line. Tokens that are
// shell-safe pass through unchanged; anything with whitespace or quoting is
// wrapped in single quotes with internal single quotes escaped.
func QuoteArg(arg string) string {
	if arg != "" && !strings.ContainsAny(arg, " \t\n'\"\\$&|;<>(){}*?#~") {
		return arg
	}
	quoted := strings.ReplaceAll(arg, "'", `'\''`)
	return `'` + quoted + `'`
}

// QuoteCommand renders a full command line for display.
func QuoteCommand(program string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, QuoteArg(program))
	for _, a := range args {
		parts = append(parts, QuoteArg(a))
	}
	return strings.Join(parts, " ")
}
