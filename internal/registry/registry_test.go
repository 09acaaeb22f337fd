// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableNamesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range All() {
		require.False(t, seen[e.Name], "duplicate entry %q", e.Name)
		seen[e.Name] = true
	}
}

func TestTableIsComplete(t *testing.T) {
	want := []string{
		"start",
		"dev", "dev:staging", "dev:production",
		"build", "build:staging", "build:production",
		"db:migration:create", "db:migration:run", "db:migration:revert",
		"db:migration:reset", "db:migration:status", "db:migration:schema",
		"docker:up", "docker:down",
		"check", "lint", "lint:fix", "format", "format:check",
	}
	require.Len(t, All(), len(want))
	for _, name := range want {
		_, ok := Lookup(name)
		require.True(t, ok, "missing entry %q", name)
	}
}

func TestLookupIsCaseSensitive(t *testing.T) {
	_, ok := Lookup("dev")
	require.True(t, ok)
	_, ok = Lookup("DEV")
	require.False(t, ok)
	_, ok = Lookup("Dev")
	require.False(t, ok)
	_, ok = Lookup("")
	require.False(t, ok)
}

func TestEnvFileBindings(t *testing.T) {
	want := map[string]string{
		"start":            EnvProduction,
		"dev":              EnvLocal,
		"dev:staging":      EnvStaging,
		"dev:production":   EnvProduction,
		"build":            "",
		"build:staging":    EnvStaging,
		"build:production": EnvProduction,
		"docker:up":        "",
		"lint":             "",
	}
	for name, envFile := range want {
		e, ok := Lookup(name)
		require.True(t, ok, name)
		require.Equal(t, envFile, e.EnvFile, name)
	}
}

func TestRequiredTools(t *testing.T) {
	for _, e := range All() {
		switch e.Program {
		case "diesel":
			require.Equal(t, "diesel", e.RequiresTool, e.Name)
		case "docker":
			require.Equal(t, "docker", e.RequiresTool, e.Name)
		case "cargo":
			require.Empty(t, e.RequiresTool, e.Name)
		}
	}
}

func TestArgvForwarding(t *testing.T) {
	trailing := []string{"--bin", "api"}

	tests := []struct {
		name string
		want []string
	}{
		// The cargo run family keeps its doubled/single separators exactly.
		{"dev", []string{"run", "--", "--", "--bin", "api"}},
		{"dev:staging", []string{"run", "--", "--", "--bin", "api"}},
		{"start", []string{"run", "--release", "--", "--bin", "api"}},
		{"dev:production", []string{"run", "--release", "--", "--bin", "api"}},
		// Plain forwarding, no separator.
		{"build", []string{"build", "--release", "--bin", "api"}},
		{"db:migration:create", []string{"migration", "create", "--bin", "api"}},
		// Non-forwarding entries drop trailing args entirely.
		{"docker:up", []string{"compose", "up", "-d", "--build"}},
		{"docker:down", []string{"compose", "down"}},
		{"check", []string{"check"}},
		{"lint", []string{"clippy", "--", "-D", "warnings"}},
		{"lint:fix", []string{"clippy", "--fix", "--allow-dirty", "--allow-staged"}},
		{"format", []string{"fmt"}},
		{"format:check", []string{"fmt", "--", "--check"}},
		{"db:migration:schema", []string{"print-schema"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := Lookup(tt.name)
			require.True(t, ok)
			require.Equal(t, tt.want, e.Argv(trailing))
		})
	}
}

func TestArgvWithoutTrailingArgs(t *testing.T) {
	// Separators are part of the fixed shape and appear even with no
	// user arguments, matching the observed behavior.
	e, ok := Lookup("dev")
	require.True(t, ok)
	require.Equal(t, []string{"run", "--", "--"}, e.Argv(nil))

	e, ok = Lookup("start")
	require.True(t, ok)
	require.Equal(t, []string{"run", "--release", "--"}, e.Argv(nil))
}

func TestSchemaDumpKind(t *testing.T) {
	e, ok := Lookup("db:migration:schema")
	require.True(t, ok)
	require.Equal(t, KindSchemaDump, e.Kind)
	require.False(t, e.ForwardArgs)

	for _, other := range All() {
		if other.Name == "db:migration:schema" {
			continue
		}
		require.Equal(t, KindSpawn, other.Kind, other.Name)
	}
}
