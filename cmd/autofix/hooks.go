package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/autofix/internal/hooks"
	"github.com/gorewood/autofix/internal/output"
)

// hooksListResult holds the data for hooks list output.
type hooksListResult struct {
	PreCommit hooks.Status `json:"pre_commit"`
}

// newHooksCmd creates the hooks parent command with subcommands.
func newHooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hooks",
		Short: "Manage the git pre-commit hook",
		Long: `Manage the git pre-commit hook autofix installs.

The hook runs the pre-commit framework when it is installed and never
blocks commits when it is missing. An existing foreign hook is preserved
with --chain (backed up and run after autofix's checks) or replaced with
--force.

Subcommands:
  install    Install the pre-commit hook
  uninstall  Remove the hook, restore any backup
  list       Show hook status

Examples:
  autofix hooks list              # Show hook status
  autofix hooks install           # Install pre-commit hook
  autofix hooks install --chain   # Install and preserve existing hook
  autofix hooks uninstall         # Remove hook, restore backup`,
	}

	cmd.AddCommand(newHooksListCmd())
	cmd.AddCommand(newHooksInstallCmd())
	cmd.AddCommand(newHooksUninstallCmd())
	return cmd
}

// newHooksListCmd creates the hooks list subcommand.
func newHooksListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show status of the git pre-commit hook",
		Long:  `Show whether the autofix pre-commit hook is installed and chained.`,
		RunE:  runHooksList,
	}
}

// runHooksList executes the hooks list command.
func runHooksList(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	hookPath, err := hooks.PreCommitPath(workspaceDir(cmd))
	if err != nil {
		printer.Error(err)
		return err
	}

	result := &hooksListResult{PreCommit: hooks.CheckStatus(hookPath)}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"pre_commit": map[string]any{
				"installed": result.PreCommit.Installed,
				"chained":   result.PreCommit.Chained,
			},
		})
	}

	printHumanHooksList(printer, result)
	return nil
}

// printHumanHooksList outputs hook status in human-readable format.
func printHumanHooksList(printer *output.Printer, result *hooksListResult) {
	printer.Section("Git Hooks")

	statusStr := "not installed"
	if result.PreCommit.Installed {
		statusStr = "installed"
		if result.PreCommit.Chained {
			statusStr += " (chained)"
		}
	}
	printer.KeyValue("pre-commit", statusStr)
}
