package hooks

import (
	"os"

	"github.com/gorewood/autofix/internal/output"
)

// Uninstall removes the autofix pre-commit hook from the workspace and
// restores a backed-up original when one exists. Returns whether a backup
// was restored. Removing a hook autofix did not write is refused.
func Uninstall(workspace string) (bool, error) {
	hookPath, err := PreCommitPath(workspace)
	if err != nil {
		return false, err
	}

	status := CheckStatus(hookPath)
	if !status.Installed {
		if Exists(hookPath) {
			return false, output.NewUsageError("pre-commit hook was not installed by autofix; not removing")
		}
		return false, nil
	}

	if err := os.Remove(hookPath); err != nil {
		return false, output.NewStepFailureErrorWithCause("failed to remove hook", err)
	}

	backupPath := hookPath + ".backup"
	if Exists(backupPath) {
		if err := os.Rename(backupPath, hookPath); err != nil {
			return false, output.NewStepFailureErrorWithCause("failed to restore backup hook", err)
		}
		return true, nil
	}

	return false, nil
}

// DescribeUninstallAction returns a human-readable description of what the
// uninstall operation would do given the current state.
func DescribeUninstallAction(installed, hasBackup bool) string {
	switch {
	case !installed:
		return "no autofix hook installed"
	case hasBackup:
		return "would remove and restore backup"
	default:
		return "would remove"
	}
}
