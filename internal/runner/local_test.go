// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package runner

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func requirePOSIX(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func TestLocalLookPath(t *testing.T) {
	requirePOSIX(t)
	require.NoError(t, Local{}.LookPath("sh"))
	require.Error(t, Local{}.LookPath("definitely-not-a-real-tool-xyz"))
}

func TestLocalRunPropagatesExitCode(t *testing.T) {
	requirePOSIX(t)

	code, err := Local{}.Run("sh", []string{"-c", "exit 0"})
	require.NoError(t, err)
	require.Equal(t, 0, code)

	code, err = Local{}.Run("sh", []string{"-c", "exit 7"})
	require.NoError(t, err)
	require.Equal(t, 7, code)
}

func TestLocalRunSpawnFailure(t *testing.T) {
	code, err := Local{}.Run("definitely-not-a-real-tool-xyz", nil)
	require.Error(t, err)
	require.Equal(t, 1, code)
}

func TestLocalCaptureCollectsStdout(t *testing.T) {
	requirePOSIX(t)

	out, code, err := Local{}.Capture("sh", []string{"-c", "printf 'table! {}'"})
	require.NoError(t, err)
	require.Equal(t, 0, code)
	require.Equal(t, "table! {}", string(out))
}

func TestLocalCaptureChildEnvironment(t *testing.T) {
	requirePOSIX(t)

	t.Setenv("DEVTASK_TEST_VAR", "inherited")

	out, code, err := Local{}.Capture("sh", []string{"-c", "printf '%s' \"$DEVTASK_TEST_VAR\""})
	require.NoError(t, err)
	require.Equal(t, 0, code)
	require.Equal(t, "inherited", string(out))
}
