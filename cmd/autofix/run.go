// Package main provides the entry point for the autofix CLI.
package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/autofix/internal/detect"
	"github.com/gorewood/autofix/internal/dispatch"
	"github.com/gorewood/autofix/internal/output"
)

// runFix executes the root command: detect toolchains, run their setup
// sequences, report per-step results.
func runFix(cmd *cobra.Command, flags *rootFlags) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())
	dir := workspaceDir(cmd)

	ws, err := detect.Inspect(dir)
	if err != nil {
		usageErr := output.NewUsageError(err.Error())
		printer.Error(usageErr)
		return usageErr
	}

	if len(ws.Matches) == 0 {
		usageErr := output.NewUsageError("no supported project found in " + dir)
		printer.Error(usageErr)
		return usageErr
	}

	opts := dispatch.Options{
		DryRun:  flags.dryRun,
		Timeout: flags.timeout,
	}
	if !printer.IsJSON() {
		printDetection(printer, ws, flags.dryRun)
		attachProgress(printer, &opts, flags.verbose)
	}

	report := dispatch.New(newRunner(), opts).Run(cmd.Context(), ws)

	if printer.IsJSON() {
		if err := printer.WriteJSON(report); err != nil {
			return err
		}
		return report.Err()
	}

	printSummary(printer, report)

	if err := report.Err(); err != nil {
		printer.Error(err)
		return err
	}
	return nil
}

// printDetection outputs the detection header before any step runs.
func printDetection(printer *output.Printer, ws *detect.Workspace, dryRun bool) {
	styles := printer.Styles()

	var names []string
	for _, match := range ws.Matches {
		names = append(names, match.Toolchain.Display()+" ("+strings.Join(match.Markers, ", ")+")")
	}
	printer.Print("%s %s\n", styles.Bold.Render("Detected:"), strings.Join(names, ", "))

	if ws.PackageManager != "" {
		reason := "no lockfile, npm default"
		if len(ws.Lockfiles) > 0 {
			reason = strings.Join(ws.Lockfiles, ", ")
		}
		printer.Print("%s %s (%s)\n", styles.Bold.Render("Package manager:"), ws.PackageManager, styles.Dim.Render(reason))
	}

	if dryRun {
		printer.Println(styles.Accent.Render("Dry run: no commands will be executed"))
	}
}

// attachProgress wires human-readable progressive output into the dispatcher.
func attachProgress(printer *output.Printer, opts *dispatch.Options, verbose bool) {
	styles := printer.Styles()

	opts.OnToolchainStart = func(toolchain detect.Toolchain) {
		printer.Println()
		printer.Println(styles.Title.Render(toolchain.Display()))
	}

	if verbose {
		opts.OnCommand = func(_ detect.Toolchain, invocation string) {
			printer.Print("  %s %s\n", styles.Dim.Render("$"), invocation)
		}
	}

	opts.OnStep = func(_ detect.Toolchain, result dispatch.StepResult) {
		printStepResult(printer, result, verbose)
	}
}

// printStepResult renders one completed step line, plus planned commands in
// dry-run mode and captured stderr for verbose failures.
func printStepResult(printer *output.Printer, result dispatch.StepResult, verbose bool) {
	styles := printer.Styles()

	switch result.Status {
	case dispatch.StatusOK:
		printer.Print("  %s  %s\n", styles.Success.Render("ok"), result.Label)
	case dispatch.StatusSkipped:
		printer.Print("  %s  %s %s\n", styles.Dim.Render("--"), result.Label, styles.Dim.Render("("+result.Message+")"))
	case dispatch.StatusDryRun:
		printer.Print("  %s  %s\n", styles.Accent.Render(">>"), result.Label)
		for _, invocation := range result.Commands {
			printer.Print("      %s %s\n", styles.Dim.Render("$"), invocation)
		}
	case dispatch.StatusFailed:
		printer.Print("  %s  %s %s\n", styles.Error.Render("XX"), result.Label, styles.Error.Render("("+result.Message+")"))
		if verbose && result.Stderr != "" {
			for line := range strings.SplitSeq(result.Stderr, "\n") {
				printer.Print("      %s\n", styles.Dim.Render(line))
			}
		}
	}
}

// printSummary renders the final per-toolchain state line.
func printSummary(printer *output.Printer, report *dispatch.RunReport) {
	styles := printer.Styles()

	var parts []string
	for _, tc := range report.Toolchains {
		var state string
		switch tc.State {
		case dispatch.StateOK:
			state = styles.Success.Render("ok")
		case dispatch.StateDegraded:
			state = styles.Warning.Render("degraded")
		case dispatch.StateFailed:
			state = styles.Error.Render("failed")
		}
		parts = append(parts, tc.Toolchain.Display()+" "+state)
	}

	printer.Println()
	printer.Print("%s %s\n", styles.Bold.Render("Summary:"), strings.Join(parts, ", "))
}
