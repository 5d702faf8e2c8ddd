package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/autofix/internal/hooks"
	"github.com/gorewood/autofix/internal/output"
)

// newHooksInstallCmd creates the hooks install subcommand.
func newHooksInstallCmd() *cobra.Command {
	var chain bool
	var force bool

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the autofix pre-commit hook",
		Long: `Install the autofix pre-commit hook to .git/hooks/.

The hook runs the pre-commit framework when available and never blocks
commits when it is missing.
Use --chain to preserve an existing hook (runs it after autofix's checks).
Use --force to overwrite an existing hook without backup.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHooksInstall(cmd, chain, force)
		},
	}

	cmd.Flags().BoolVar(&chain, "chain", false, "Preserve existing hook, chain to it")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing hook without backup")

	return cmd
}

// runHooksInstall executes the hooks install command.
func runHooksInstall(cmd *cobra.Command, chain, force bool) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())
	workspace := workspaceDir(cmd)

	if isDryRun(cmd) {
		return handleInstallDryRun(printer, workspace, chain, force)
	}

	chained, err := hooks.Install(workspace, chain, force)
	if err != nil {
		printer.Error(err)
		return err
	}

	return outputInstallSuccess(printer, chained)
}

// outputInstallSuccess outputs the success message for install.
func outputInstallSuccess(printer *output.Printer, chained bool) error {
	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"status":  "ok",
			"hook":    "pre-commit",
			"chained": chained,
		})
	}

	msg := "Installed pre-commit hook"
	if chained {
		msg += " (existing hook backed up and chained)"
	}
	return printer.Success(map[string]any{"message": msg})
}

// handleInstallDryRun handles dry-run output for install.
func handleInstallDryRun(printer *output.Printer, workspace string, chain, force bool) error {
	hookPath, err := hooks.PreCommitPath(workspace)
	if err != nil {
		printer.Error(err)
		return err
	}
	existingHook := hooks.Exists(hookPath)

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"status":          "dry_run",
			"hook":            "pre-commit",
			"exists":          existingHook,
			"would_chain":     chain && existingHook,
			"would_overwrite": force && existingHook,
		})
	}

	printer.Section("Dry Run")
	printer.KeyValue("Hook", "pre-commit")
	printer.KeyValue("Path", hookPath)
	printer.KeyValue("Action", hooks.DescribeInstallAction(existingHook, chain, force))

	return nil
}

// newHooksUninstallCmd creates the hooks uninstall subcommand.
func newHooksUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the autofix pre-commit hook",
		Long:  `Remove the autofix pre-commit hook and restore any backup.`,
		RunE:  runHooksUninstall,
	}
}

// runHooksUninstall executes the hooks uninstall command.
func runHooksUninstall(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())
	workspace := workspaceDir(cmd)

	hookPath, err := hooks.PreCommitPath(workspace)
	if err != nil {
		printer.Error(err)
		return err
	}
	status := hooks.CheckStatus(hookPath)

	if isDryRun(cmd) {
		return handleUninstallDryRun(printer, hookPath, status.Installed)
	}

	if !status.Installed {
		return outputNoHookInstalled(printer)
	}

	restored, err := hooks.Uninstall(workspace)
	if err != nil {
		printer.Error(err)
		return err
	}

	return outputUninstallSuccess(printer, restored)
}

// outputNoHookInstalled outputs the message when no hook is installed.
func outputNoHookInstalled(printer *output.Printer) error {
	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"status":  "ok",
			"message": "no autofix hook installed",
		})
	}
	return printer.Success(map[string]any{"message": "No autofix hook installed"})
}

// outputUninstallSuccess outputs the success message for uninstall.
func outputUninstallSuccess(printer *output.Printer, restored bool) error {
	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"status":   "ok",
			"hook":     "pre-commit",
			"restored": restored,
		})
	}

	msg := "Removed pre-commit hook"
	if restored {
		msg += " and restored original"
	}
	return printer.Success(map[string]any{"message": msg})
}

// handleUninstallDryRun handles dry-run output for uninstall.
func handleUninstallDryRun(printer *output.Printer, hookPath string, installed bool) error {
	hasBackup := hooks.Exists(hookPath + ".backup")

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"status":        "dry_run",
			"hook":          "pre-commit",
			"installed":     installed,
			"has_backup":    hasBackup,
			"would_restore": installed && hasBackup,
		})
	}

	printer.Section("Dry Run")
	printer.KeyValue("Hook", "pre-commit")
	printer.KeyValue("Path", hookPath)
	printer.KeyValue("Action", hooks.DescribeUninstallAction(installed, hasBackup))

	return nil
}
