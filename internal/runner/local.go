// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package runner

import (
	"errors"
	"os"
	"os/exec"
)

// Local executes commands on the host via os/exec.
type Local struct{}

func (Local) LookPath(name string) error {
	_, err := exec.LookPath(name)
	return err
}

func (Local) Run(program string, args []string) (int, error) {
	cmd := exec.Command(program, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 1, err
}

func (Local) Capture(program string, args []string) ([]byte, int, error) {
	cmd := exec.Command(program, args...)
	cmd.Stderr = os.Stderr

	out, err := cmd.Output()
	if err == nil {
		return out, 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return out, exitErr.ExitCode(), nil
	}
	return nil, 1, err
}
