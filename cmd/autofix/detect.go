// Package main provides the entry point for the autofix CLI.
package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/autofix/internal/detect"
	"github.com/gorewood/autofix/internal/output"
)

// newDetectCmd creates the detect command.
func newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Show detected toolchains without running anything",
		Long: `Show the toolchains autofix detects in a directory.

Detection is a single non-recursive scan for marker files:
  requirements.txt / pyproject.toml / setup.py  -> Python
  package.json                                  -> Node.js
  Cargo.toml                                    -> Rust
  pubspec.yaml                                  -> Flutter

For Node.js projects the package manager is resolved from lockfiles
(pnpm-lock.yaml, then yarn.lock, then package-lock.json; npm when none).

Examples:
  autofix detect              # Inspect the current directory
  autofix detect -C ./app     # Inspect another directory
  autofix detect --json       # Structured output`,
		RunE: runDetect,
	}
}

// runDetect executes the detect command.
func runDetect(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())
	dir := workspaceDir(cmd)

	ws, err := detect.Inspect(dir)
	if err != nil {
		usageErr := output.NewUsageError(err.Error())
		printer.Error(usageErr)
		return usageErr
	}

	if printer.IsJSON() {
		return printer.WriteJSON(ws)
	}

	if len(ws.Matches) == 0 {
		usageErr := output.NewUsageError("no supported project found in " + dir)
		printer.Error(usageErr)
		return usageErr
	}

	printHumanDetect(printer, ws)
	return nil
}

// printHumanDetect outputs the detection result in human-readable format.
func printHumanDetect(printer *output.Printer, ws *detect.Workspace) {
	printer.Section("Detection")
	printer.KeyValue("Directory", ws.Dir)

	for _, match := range ws.Matches {
		printer.KeyValue(match.Toolchain.Display(), strings.Join(match.Markers, ", "))
	}

	if ws.PackageManager != "" {
		value := string(ws.PackageManager)
		if len(ws.Lockfiles) > 0 {
			value += " (via " + strings.Join(ws.Lockfiles, ", ") + ")"
		} else {
			value += " (default, no lockfile)"
		}
		printer.KeyValue("Package manager", value)
	}
}
