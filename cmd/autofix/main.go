// Package main provides the entry point for the autofix CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/autofix/internal/config"
	"github.com/gorewood/autofix/internal/envfile"
	"github.com/gorewood/autofix/internal/exec"
	"github.com/gorewood/autofix/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// newRunner builds the command runner used by all commands.
// Tests swap it for a scripted recorder.
var newRunner = exec.NewRunner

// rootFlags holds the persistent flags shared by the root run.
type rootFlags struct {
	verbose bool
	dryRun  bool
	dir     string
	timeout time.Duration
}

// isJSONMode reads the --json persistent flag from the command hierarchy.
// This avoids a global jsonFlag variable, keeping commands independently
// testable without shared mutable state.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		// Walk up to root to find the persistent flag
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// isDryRun reads the -n/--dry-run persistent flag.
func isDryRun(cmd *cobra.Command) bool {
	flag := cmd.Root().PersistentFlags().Lookup("dry-run")
	return flag != nil && flag.Value.String() == "true"
}

// useColor resolves the --color persistent flag against TTY detection.
func useColor(cmd *cobra.Command) bool {
	mode := "auto"
	if flag := cmd.Root().PersistentFlags().Lookup("color"); flag != nil {
		mode = flag.Value.String()
	}
	return output.ResolveColorMode(mode, output.IsTTY(cmd.OutOrStdout()))
}

// workspaceDir reads the -C/--dir persistent flag, defaulting to the
// current directory.
func workspaceDir(cmd *cobra.Command) string {
	if flag := cmd.Root().PersistentFlags().Lookup("dir"); flag != nil {
		if dir := flag.Value.String(); dir != "" {
			return dir
		}
	}
	return "."
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the autofix CLI.
func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "autofix",
		Short: "Detect project toolchains and run their setup steps",
		Long: `Autofix - detect project toolchains and run their setup steps.

Autofix scans a directory for marker files (requirements.txt, package.json,
Cargo.toml, pubspec.yaml), then runs a fixed setup sequence per detected
toolchain:
  - Python:  create .venv, install dependencies, run formatters, pre-commit
  - Node.js: install via the lockfile's package manager, run the format script
  - Rust:    fetch crate dependencies
  - Flutter: pub get, build_runner code generation, dart format

A hard step failure stops that toolchain's remaining steps but never blocks
the other detected toolchains. Use -n to preview the exact commands without
running anything.

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFix(cmd, flags)
		},
	}

	// Load .env.local (then .env) so spawned package managers inherit
	// registry tokens and proxy settings that can't live in the shell env.
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		loadEnvFiles()
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().StringP("dir", "C", "", "Directory to operate on (default current directory)")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always, never")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Print each command before it runs")
	cmd.PersistentFlags().BoolVarP(&flags.dryRun, "dry-run", "n", false, "Plan the setup without executing anything")
	cmd.PersistentFlags().DurationVar(&flags.timeout, "timeout", 0, "Per-command timeout (0 = no limit)")

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local   (per-repo override, gitignored)
//  2. $CWD/.env         (per-repo)
//  3. ~/.config/autofix/env (global fallback — set once, works everywhere)
func loadEnvFiles() {
	_ = envfile.Load(".env.local")
	_ = envfile.Load(".env")

	if dir := config.Dir(); dir != "" {
		_ = envfile.Load(filepath.Join(dir, "env"))
	}
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "inspect", Title: "Inspection Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "admin", Title: "Admin Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	// Inspection commands: detect, doctor
	addGroupedCommand(cmd, newDetectCmd(), "inspect")
	addGroupedCommand(cmd, newDoctorCmd(), "inspect")

	// Admin commands: hooks, serve
	addGroupedCommand(cmd, newHooksCmd(), "admin")
	addGroupedCommand(cmd, newServeCmd(), "admin")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
