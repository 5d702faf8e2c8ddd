// Package hooks installs and manages the autofix git pre-commit hook.
//
// The dispatcher's pre-commit step delegates hook installation to the
// pre-commit framework itself (python -m pre_commit install). This package
// covers the direct path: writing a shim into .git/hooks that invokes
// pre-commit when it is available, with backup and chaining for any hook
// that was already there.
//
// This package contains pure filesystem logic. Command-layer adapters in
// cmd/autofix handle CLI concerns (flags, output formatting, cobra wiring)
// and delegate here for the actual work:
//
//	status := hooks.CheckStatus(hookPath)
//	chained, err := hooks.Install(workspace, chain, force)
//	restored, err := hooks.Uninstall(workspace)
package hooks
