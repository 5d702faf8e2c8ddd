// Package dispatch runs the per-toolchain setup sequences for autofix.
//
// Each toolchain has a fixed, ordered table of steps (dependency install,
// formatters, hook install). A step carries a precondition, the external
// commands to run, and a hard/soft severity. The dispatcher walks the
// detected toolchains in marker-table priority order and executes their
// tables sequentially through an injected exec.Runner:
//
//	dispatcher := dispatch.New(exec.NewRunner(), dispatch.Options{})
//	report := dispatcher.Run(ctx, workspace)
//	if err := report.Err(); err != nil { ... }
//
// Failure semantics:
//
//   - unmet precondition: step skipped, informational
//   - hard step failed: toolchain marked failed, its remaining steps are
//     skipped, the next toolchain still runs
//   - soft step failed: reported, toolchain continues and ends degraded
//
// Soft-only failures leave the process exit code at zero; hard failures
// surface through RunReport.Err with the appropriate exit code.
//
// Dry-run mode evaluates the same preconditions and resolves the same
// commands as a real run but never executes them; Plan exposes that step
// list directly. Availability probes (is ruff importable in the venv) go
// through the runner in both modes, so the plans cannot diverge.
package dispatch
