package hooks

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gorewood/autofix/internal/output"
)

// marker identifies hook scripts written by autofix.
const marker = "autofix pre-commit hook"

// Status represents the status of the managed pre-commit hook.
type Status struct {
	Installed bool `json:"installed"`
	Chained   bool `json:"chained"`
}

// Dir returns the .git/hooks directory for a workspace.
// Fails when the workspace is not a git repository.
func Dir(workspace string) (string, error) {
	gitDir := filepath.Join(workspace, ".git")
	info, err := os.Stat(gitDir)
	if err != nil || !info.IsDir() {
		return "", output.NewUsageError("not a git repository")
	}
	return filepath.Join(gitDir, "hooks"), nil
}

// PreCommitPath returns the pre-commit hook path for a workspace.
func PreCommitPath(workspace string) (string, error) {
	dir, err := Dir(workspace)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "pre-commit"), nil
}

// Exists checks if a hook file exists at the given path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// CheckStatus checks if a hook is installed and whether it chains to a backup.
func CheckStatus(hookPath string) Status {
	status := Status{}

	content, err := os.ReadFile(hookPath)
	if err != nil {
		return status // Not installed
	}

	contentStr := string(content)
	if strings.Contains(contentStr, marker) {
		status.Installed = true
		status.Chained = strings.Contains(contentStr, ".backup")
	}

	return status
}

// GenerateScript generates the pre-commit hook script content.
// The hook runs the pre-commit framework when available and never blocks
// commits when it is missing. If withChain is true, the hook chains to the
// backed-up original hook.
func GenerateScript(withChain bool) string {
	script := `#!/bin/sh
# ` + marker + `
# Runs pre-commit checks when the framework is installed

if command -v pre-commit >/dev/null 2>&1; then
  pre-commit run --hook-stage pre-commit "$@"
fi
`

	if withChain {
		script += `
# Chain to original hook if it exists
if [ -x ".git/hooks/pre-commit.backup" ]; then
  exec .git/hooks/pre-commit.backup "$@"
fi
`
	}

	return script
}

// Backup moves an existing hook to a .backup location.
func Backup(hookPath string) error {
	backupPath := hookPath + ".backup"
	if err := os.Rename(hookPath, backupPath); err != nil {
		return output.NewStepFailureErrorWithCause("failed to backup existing hook", err)
	}
	return nil
}

// Install writes the autofix pre-commit hook into the workspace's
// .git/hooks directory. An existing foreign hook is an error unless chain
// (backup and chain to it) or force (overwrite) is set. Returns whether the
// written hook chains to a backup.
func Install(workspace string, chain, force bool) (bool, error) {
	hookPath, err := PreCommitPath(workspace)
	if err != nil {
		return false, err
	}

	if err := os.MkdirAll(filepath.Dir(hookPath), 0o755); err != nil {
		return false, output.NewStepFailureErrorWithCause("failed to create hooks directory", err)
	}

	existing := Exists(hookPath)
	if existing && !force {
		if !chain {
			return false, output.NewUsageError("hook already exists; use --chain to preserve or --force to overwrite")
		}
		if err := Backup(hookPath); err != nil {
			return false, err
		}
	}

	chained := chain && existing && !force
	content := GenerateScript(chained)
	// #nosec G306 -- hook needs execute permission
	if err := os.WriteFile(hookPath, []byte(content), 0o755); err != nil {
		return false, output.NewStepFailureErrorWithCause("failed to write hook", err)
	}

	return chained, nil
}

// DescribeInstallAction returns a human-readable description of what the
// install operation would do given the current state.
func DescribeInstallAction(existingHook, chain, force bool) string {
	if !existingHook {
		return "would install"
	}
	switch {
	case force:
		return "would overwrite existing hook"
	case chain:
		return "would backup and chain existing hook"
	default:
		return "would fail (hook exists, use --chain or --force)"
	}
}
