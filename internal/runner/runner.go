// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package runner isolates PATH lookup and process spawning behind a small
// interface so the dispatch pipeline can be exercised in tests without
// invoking real external programs.
package runner

// Runner is the capability surface the dispatcher needs from the host.
type Runner interface {
	// LookPath reports whether name resolves to an executable on PATH.
	LookPath(name string) error

	// Run spawns program with args, standard streams inherited from this
	// process, and blocks until it exits. It returns the child's exit
	// code; err is non-nil only when the child could not be started.
	Run(program string, args []string) (int, error)

	// Capture spawns program with args, collects its stdout, and blocks
	// until it exits. Stderr stays attached to this process. It returns
	// the captured output and the child's exit code; err is non-nil only
	// when the child could not be started.
	Capture(program string, args []string) ([]byte, int, error)
}
