// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package registry defines the static command table that drives the
// dispatcher. Every command the tool understands is a row in this table;
// nothing is added, changed, or removed at runtime.
package registry

// Kind discriminates how an entry is executed.
type Kind int

const (
	// KindSpawn runs the entry's program with inherited standard streams.
	KindSpawn Kind = iota

	// KindSchemaDump runs the entry's program with captured output and
	// writes that output verbatim to the schema file.
	KindSchemaDump
)

// Entry is one row of the dispatch table: a command name bound to an
// external program, its fixed arguments, an optional env file to load
// first, and the argument-forwarding rule.
type Entry struct {
	// Name is the unique command token (e.g. "dev:staging").
	// Lookup is a case-sensitive exact match.
	Name string

	// Summary is the one-line description shown in help and the picker.
	Summary string

	// EnvFile, when set, names a dotenv file to load before spawning.
	// Relative paths resolve against the env-file directory.
	EnvFile string

	// Program is the external executable to invoke.
	Program string

	// FixedArgs are the literal argument tokens specific to this command.
	FixedArgs []string

	// Separator appends a literal "--" after FixedArgs. The cargo run
	// family always passes it so that forwarded tokens reach the built
	// binary instead of being parsed as cargo's own flags.
	Separator bool

	// ForwardArgs appends the user-supplied trailing arguments.
	ForwardArgs bool

	// RequiresTool names a binary that must resolve on PATH before the
	// entry may execute.
	RequiresTool string

	Kind Kind
}

// Argv builds the final argument vector for the entry: fixed arguments,
// then the separator if declared, then the trailing user arguments if the
// entry forwards them.
func (e Entry) Argv(trailing []string) []string {
	argv := make([]string, 0, len(e.FixedArgs)+len(trailing)+1)
	argv = append(argv, e.FixedArgs...)
	if e.Separator {
		argv = append(argv, "--")
	}
	if e.ForwardArgs {
		argv = append(argv, trailing...)
	}
	return argv
}

// Lookup returns the entry for name and whether it exists.
func Lookup(name string) (Entry, bool) {
	for _, e := range table {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// All returns the full table in declaration order.
func All() []Entry {
	entries := make([]Entry, len(table))
	copy(entries, table)
	return entries
}
