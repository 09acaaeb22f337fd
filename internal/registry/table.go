// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package registry

// Env file names read before the cargo run/build commands. They are
// resolved against the env-file directory and are not required to exist.
const (
	EnvLocal      = ".env.local"
	EnvStaging    = ".env.staging"
	EnvProduction = ".env.production"
)

// table is the complete dispatch table. Note the dev and dev:staging rows:
// their fixed arguments carry one "--" and Separator adds a second, so the
// built binary receives the forwarded tokens raw (cargo run -- -- <args>).
// That doubling is intentional and must not be collapsed.
var table = []Entry{
	{
		Name:        "start",
		Summary:     "Run the release build with production environment",
		EnvFile:     EnvProduction,
		Program:     "cargo",
		FixedArgs:   []string{"run", "--release"},
		Separator:   true,
		ForwardArgs: true,
	},
	{
		Name:        "dev",
		Summary:     "Run the debug build with local environment",
		EnvFile:     EnvLocal,
		Program:     "cargo",
		FixedArgs:   []string{"run", "--"},
		Separator:   true,
		ForwardArgs: true,
	},
	{
		Name:        "dev:staging",
		Summary:     "Run the debug build with staging environment",
		EnvFile:     EnvStaging,
		Program:     "cargo",
		FixedArgs:   []string{"run", "--"},
		Separator:   true,
		ForwardArgs: true,
	},
	{
		Name:        "dev:production",
		Summary:     "Run the release build with production environment",
		EnvFile:     EnvProduction,
		Program:     "cargo",
		FixedArgs:   []string{"run", "--release"},
		Separator:   true,
		ForwardArgs: true,
	},
	{
		Name:        "build",
		Summary:     "Build in release mode",
		Program:     "cargo",
		FixedArgs:   []string{"build", "--release"},
		ForwardArgs: true,
	},
	{
		Name:        "build:staging",
		Summary:     "Build in release mode with staging environment",
		EnvFile:     EnvStaging,
		Program:     "cargo",
		FixedArgs:   []string{"build", "--release"},
		ForwardArgs: true,
	},
	{
		Name:        "build:production",
		Summary:     "Build in release mode with production environment",
		EnvFile:     EnvProduction,
		Program:     "cargo",
		FixedArgs:   []string{"build", "--release"},
		ForwardArgs: true,
	},
	{
		Name:         "db:migration:create",
		Summary:      "Create a new database migration",
		Program:      "diesel",
		FixedArgs:    []string{"migration", "create"},
		ForwardArgs:  true,
		RequiresTool: "diesel",
	},
	{
		Name:         "db:migration:run",
		Summary:      "Apply pending database migrations",
		Program:      "diesel",
		FixedArgs:    []string{"migration", "run"},
		ForwardArgs:  true,
		RequiresTool: "diesel",
	},
	{
		Name:         "db:migration:revert",
		Summary:      "Revert the latest database migration",
		Program:      "diesel",
		FixedArgs:    []string{"migration", "revert"},
		ForwardArgs:  true,
		RequiresTool: "diesel",
	},
	{
		Name:         "db:migration:reset",
		Summary:      "Revert and re-apply the latest database migration",
		Program:      "diesel",
		FixedArgs:    []string{"migration", "redo"},
		ForwardArgs:  true,
		RequiresTool: "diesel",
	},
	{
		Name:         "db:migration:status",
		Summary:      "List database migrations and their status",
		Program:      "diesel",
		FixedArgs:    []string{"migration", "list"},
		ForwardArgs:  true,
		RequiresTool: "diesel",
	},
	{
		Name:         "db:migration:schema",
		Summary:      "Dump the database schema to src/schema/table.rs",
		Program:      "diesel",
		FixedArgs:    []string{"print-schema"},
		RequiresTool: "diesel",
		Kind:         KindSchemaDump,
	},
	{
		Name:         "docker:up",
		Summary:      "Build and start the compose services",
		Program:      "docker",
		FixedArgs:    []string{"compose", "up", "-d", "--build"},
		RequiresTool: "docker",
	},
	{
		Name:         "docker:down",
		Summary:      "Stop the compose services",
		Program:      "docker",
		FixedArgs:    []string{"compose", "down"},
		RequiresTool: "docker",
	},
	{
		Name:      "check",
		Summary:   "Type-check without building",
		Program:   "cargo",
		FixedArgs: []string{"check"},
	},
	{
		Name:      "lint",
		Summary:   "Lint with warnings promoted to errors",
		Program:   "cargo",
		FixedArgs: []string{"clippy", "--", "-D", "warnings"},
	},
	{
		Name:      "lint:fix",
		Summary:   "Lint and apply automatic fixes",
		Program:   "cargo",
		FixedArgs: []string{"clippy", "--fix", "--allow-dirty", "--allow-staged"},
	},
	{
		Name:      "format",
		Summary:   "Format the source tree",
		Program:   "cargo",
		FixedArgs: []string{"fmt"},
	},
	{
		Name:      "format:check",
		Summary:   "Check formatting without rewriting files",
		Program:   "cargo",
		FixedArgs: []string{"fmt", "--", "--check"},
	},
}
