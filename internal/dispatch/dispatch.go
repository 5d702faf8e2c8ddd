package dispatch

import (
	"context"
	"time"

	"github.com/gorewood/autofix/internal/detect"
	"github.com/gorewood/autofix/internal/exec"
)

// Options configures a Dispatcher. Dry-run and verbose are explicit values
// here rather than globals so commands stay independently testable.
type Options struct {
	// DryRun suppresses command execution; every runnable step is reported
	// as dry_run with the commands it would have executed.
	DryRun bool

	// Timeout bounds each external command. Zero means unbounded, which
	// matches the historical behavior of waiting on hung tools.
	Timeout time.Duration

	// OnToolchainStart is called before a toolchain's steps run.
	OnToolchainStart func(toolchain detect.Toolchain)

	// OnCommand is called with the full invocation text before each
	// external command executes (verbose mode).
	OnCommand func(toolchain detect.Toolchain, invocation string)

	// OnStep is called after each step completes, for progressive output.
	OnStep func(toolchain detect.Toolchain, result StepResult)
}

// Dispatcher runs the fixed setup sequence for every detected toolchain,
// one command at a time, toolchains in marker-table priority order.
type Dispatcher struct {
	runner exec.Runner
	opts   Options
}

// New creates a Dispatcher using the given command runner.
func New(runner exec.Runner, opts Options) *Dispatcher {
	return &Dispatcher{
		runner: runner,
		opts:   opts,
	}
}

// Run executes the setup sequence for every toolchain in ws.
// A hard failure in one toolchain never prevents the next toolchain from
// running; the report always covers the full detected set.
func (d *Dispatcher) Run(ctx context.Context, ws *detect.Workspace) *RunReport {
	report := &RunReport{
		Dir:            ws.Dir,
		DryRun:         d.opts.DryRun,
		PackageManager: ws.PackageManager,
		Lockfiles:      ws.Lockfiles,
	}

	for _, match := range ws.Matches {
		report.Toolchains = append(report.Toolchains, d.runToolchain(ctx, ws, match))
	}

	return report
}

// Plan evaluates preconditions and resolves commands without executing
// anything, regardless of the dispatcher's dry-run setting. Used by the MCP
// plan tool and shared with dry-run mode so the two can never diverge.
func (d *Dispatcher) Plan(ctx context.Context, ws *detect.Workspace) *RunReport {
	planner := &Dispatcher{
		runner: d.runner,
		opts:   Options{DryRun: true, Timeout: d.opts.Timeout},
	}
	return planner.Run(ctx, ws)
}

// runToolchain executes one toolchain's step table in order.
func (d *Dispatcher) runToolchain(ctx context.Context, ws *detect.Workspace, match detect.Match) ToolchainResult {
	if d.opts.OnToolchainStart != nil {
		d.opts.OnToolchainStart(match.Toolchain)
	}

	result := ToolchainResult{
		Toolchain: match.Toolchain,
		Markers:   match.Markers,
	}

	hardFailed := false
	for _, s := range stepsFor(match.Toolchain) {
		var stepResult StepResult
		if hardFailed {
			stepResult = StepResult{
				Name:     s.name,
				Label:    s.label,
				Severity: s.severity,
				Status:   StatusSkipped,
				Message:  "earlier hard step failed",
			}
		} else {
			stepResult = d.runStep(ctx, ws, match.Toolchain, s)
		}

		if stepResult.Status == StatusFailed && s.severity == SeverityHard {
			hardFailed = true
		}

		result.Steps = append(result.Steps, stepResult)
		if d.opts.OnStep != nil {
			d.opts.OnStep(match.Toolchain, stepResult)
		}
	}

	result.State = deriveState(result.Steps)
	return result
}

// runStep plans and executes a single step.
func (d *Dispatcher) runStep(ctx context.Context, ws *detect.Workspace, toolchain detect.Toolchain, s step) StepResult {
	result := StepResult{
		Name:     s.name,
		Label:    s.label,
		Severity: s.severity,
	}

	sc := &stepContext{ctx: ctx, ws: ws, runner: d.runner}
	commands, skip := s.plan(sc)
	if skip != "" {
		result.Status = StatusSkipped
		result.Message = skip
		return result
	}

	for _, cmd := range commands {
		result.Commands = append(result.Commands, cmd.String())
	}

	if d.opts.DryRun {
		result.Status = StatusDryRun
		return result
	}

	for _, cmd := range commands {
		if d.opts.OnCommand != nil {
			d.opts.OnCommand(toolchain, cmd.String())
		}

		runResult, err := d.execute(ctx, cmd)
		if err != nil {
			result.Status = StatusFailed
			result.Message = err.Error()
			result.Stderr = runResult.Stderr
			result.ToolMissing = exec.IsNotFound(err)
			return result
		}
	}

	result.Status = StatusOK
	return result
}

// execute runs one command, applying the per-command timeout when set.
func (d *Dispatcher) execute(ctx context.Context, cmd exec.RunArgs) (exec.RunResult, error) {
	if d.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.opts.Timeout)
		defer cancel()
	}
	return d.runner.Run(ctx, cmd)
}
