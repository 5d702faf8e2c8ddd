// Package main provides the entry point for the autofix CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/autofix/internal/detect"
	"github.com/gorewood/autofix/internal/doctor"
	"github.com/gorewood/autofix/internal/output"
)

// checkStatus represents the result of a health check.
type checkStatus string

const (
	checkPass checkStatus = "pass"
	checkWarn checkStatus = "warn"
	checkFail checkStatus = "fail"
)

// checkResult holds the result of a single health check.
type checkResult struct {
	Name    string      `json:"name"`
	Status  checkStatus `json:"status"`
	Message string      `json:"message"`
	Hint    string      `json:"hint,omitempty"`
}

// doctorResult holds all check results plus summary counts.
type doctorResult struct {
	Version string        `json:"version"`
	Dir     string        `json:"dir"`
	Checks  []checkResult `json:"checks"`
	Summary doctorSummary `json:"summary"`
}

// doctorSummary holds the counts of check results.
type doctorSummary struct {
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
	Failed   int `json:"failed"`
}

// newDoctorCmd creates the doctor command.
func newDoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that required external tools are installed",
		Long: `Check that the external tools autofix needs are on PATH.

The checks cover the toolchains detected in the directory: python3 for
Python projects, the resolved package manager for Node.js, cargo for Rust,
flutter and dart for Flutter, plus git for hook installation. When no
project is detected, every known toolchain is checked.

Each check reports:
  Pass    - Tool found on PATH
  Warning - Optional tool missing (setup degrades but proceeds)
  Fail    - Required tool missing (hard setup steps cannot run)

Examples:
  autofix doctor              # Check tools for the current directory
  autofix doctor --quiet      # Only show warnings and failures
  autofix doctor --json       # Output results as JSON`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd, quiet)
		},
	}

	cmd.Flags().BoolVar(&quiet, "quiet", false, "Only show failures and warnings")

	return cmd
}

// runDoctor executes the doctor command.
func runDoctor(cmd *cobra.Command, quiet bool) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())
	dir := workspaceDir(cmd)

	ws, err := detect.Inspect(dir)
	if err != nil {
		usageErr := output.NewUsageError(err.Error())
		printer.Error(usageErr)
		return usageErr
	}

	result := gatherDoctorChecks(ws)

	if printer.IsJSON() {
		if err := printer.WriteJSON(result); err != nil {
			return err
		}
	} else {
		outputDoctorHuman(printer, result, quiet)
	}

	// Fail the exit code only for projects that actually need the tool;
	// the speculative all-toolchain sweep on an empty directory stays
	// informational.
	if result.Summary.Failed > 0 && len(ws.Matches) > 0 {
		return output.NewToolMissingError("required tools missing")
	}
	return nil
}

// gatherDoctorChecks probes the tools and maps them to check results.
func gatherDoctorChecks(ws *detect.Workspace) *doctorResult {
	result := &doctorResult{
		Version: version,
		Dir:     ws.Dir,
	}

	for _, check := range doctor.Check(ws, newRunner()) {
		result.Checks = append(result.Checks, toCheckResult(check))
	}

	for _, check := range result.Checks {
		switch check.Status {
		case checkPass:
			result.Summary.Passed++
		case checkWarn:
			result.Summary.Warnings++
		case checkFail:
			result.Summary.Failed++
		}
	}

	return result
}

// toCheckResult converts a tool probe into a pass/warn/fail check.
func toCheckResult(check doctor.ToolCheck) checkResult {
	result := checkResult{
		Name:    check.Tool,
		Message: check.Purpose,
	}

	switch {
	case check.Available:
		result.Status = checkPass
	case check.Required:
		result.Status = checkFail
		result.Hint = check.Hint
	default:
		result.Status = checkWarn
		result.Hint = check.Hint
	}

	return result
}

// outputDoctorHuman outputs the doctor result in human-readable format.
func outputDoctorHuman(printer *output.Printer, result *doctorResult, quiet bool) {
	printer.Println()
	printer.Print("autofix doctor v%s\n", result.Version)
	printer.Println()

	for _, check := range result.Checks {
		if quiet && check.Status == checkPass {
			continue
		}
		printer.Print("  %s  %s %s\n", statusIcon(check.Status), check.Name, check.Message)
		if check.Hint != "" {
			printer.Print("     -> %s\n", check.Hint)
		}
	}

	printer.Println()
	printer.Print("%s %d passed  %s %d warnings  %s %d failed\n",
		statusIcon(checkPass), result.Summary.Passed,
		statusIcon(checkWarn), result.Summary.Warnings,
		statusIcon(checkFail), result.Summary.Failed,
	)
}

// statusIcon returns the icon for a check status.
func statusIcon(status checkStatus) string {
	switch status {
	case checkPass:
		return "ok"
	case checkWarn:
		return "!!"
	case checkFail:
		return "XX"
	default:
		return "??"
	}
}
