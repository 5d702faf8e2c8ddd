// Package output provides structured output handling for the autofix CLI.
//
// This package handles both human-readable and JSON output formats, so
// every command works equally well for human users and automated agents.
//
// # Printer
//
// The Printer is the primary interface for command output. It automatically
// handles format switching based on the --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//
//	// For success output
//	printer.Success(map[string]any{"message": "Setup complete", "toolchains": names})
//
//	// For error output
//	printer.Error(err)
//
//	// For raw output
//	printer.Println("Some text")
//	printer.Print("Formatted: %s\n", value)
//
// # JSON Mode
//
// When JSON mode is enabled (via --json flag), all output is structured:
//
//	// Success: {"message": "...", ...}
//	// Error: {"error": "message", "code": N}
//
// # Exit Codes
//
// The package defines standard exit codes and error types:
//
//	output.ExitSuccess     // 0: Success (soft failures included)
//	output.ExitUsageError  // 1: Bad args or no supported project
//	output.ExitStepFailure // 2: A hard setup step failed
//	output.ExitToolMissing // 3: Required external tool not found
//
// Use the error constructors to create properly-coded errors:
//
//	output.NewUsageError("no supported project found")
//	output.NewStepFailureError("dependency install failed")
//	output.NewToolMissingError("cargo not found in PATH")
//
// These errors carry exit codes that are used for both JSON error output
// and process exit codes.
package output
