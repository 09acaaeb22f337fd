// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package envfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestResolve(t *testing.T) {
	require.Equal(t, "/abs/.env", Resolve("/abs/.env", "/base"))
	require.Equal(t, filepath.Join("/base", ".env.local"), Resolve(".env.local", "/base"))
}

func TestLoadSetsAndOverwrites(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env.local", "FOO=bar\nKEEP=new\n")

	t.Setenv("KEEP", "old")

	Load(".env.local", dir)

	require.Equal(t, "bar", os.Getenv("FOO"))
	t.Cleanup(func() { os.Unsetenv("FOO") })
	// Existing values with the same key are overwritten.
	require.Equal(t, "new", os.Getenv("KEEP"))
}

func TestLoadSkipsCommentsBlanksAndMalformed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env.staging", `
# comment line
  # indented comment

NOEQUALS
=novalue
GOOD=yes
`)

	t.Setenv("GOOD", "")
	t.Setenv("NOEQUALS", "")

	Load(".env.staging", dir)

	require.Equal(t, "yes", os.Getenv("GOOD"))
	// Malformed lines are skipped, not exported.
	require.Equal(t, "", os.Getenv("NOEQUALS"))
}

func TestLoadStripsSurroundingQuotes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", `A="quoted value"
B='single'
C="unmatched
D=plain
`)

	for _, k := range []string{"A", "B", "C", "D"} {
		t.Setenv(k, "")
	}

	Load(".env", dir)

	require.Equal(t, "quoted value", os.Getenv("A"))
	require.Equal(t, "single", os.Getenv("B"))
	require.Equal(t, `"unmatched`, os.Getenv("C"))
	require.Equal(t, "plain", os.Getenv("D"))
}

func TestLoadMissingFileIsNonFatal(t *testing.T) {
	t.Setenv("SENTINEL", "unchanged")

	// Must not panic and must not touch the environment.
	Load(".env.nope", t.TempDir())

	require.Equal(t, "unchanged", os.Getenv("SENTINEL"))
}

func TestLoadAbsolutePathIgnoresDir(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.env", "ABS=1\n")

	t.Setenv("ABS", "")

	Load(path, "/nonexistent-base")

	require.Equal(t, "1", os.Getenv("ABS"))
}
