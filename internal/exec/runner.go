package exec

import (
	"bytes"
	"context"
	"errors"
	osexec "os/exec"
	"strings"
)

// commandRunner is the default Runner backed by os/exec.
type commandRunner struct{}

// NewRunner creates the default Runner that executes real commands.
func NewRunner() Runner {
	return &commandRunner{}
}

// Run executes the command described by args.
// Stdout and stderr are captured and returned trimmed.
func (r *commandRunner) Run(ctx context.Context, args RunArgs) (RunResult, error) {
	cmd := osexec.CommandContext(ctx, args.Cmd, args.Args...)
	cmd.Dir = args.Cwd
	if len(args.Env) > 0 {
		cmd.Env = append(cmd.Environ(), args.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := RunResult{
		Stdout: strings.TrimSpace(stdout.String()),
		Stderr: strings.TrimSpace(stderr.String()),
	}

	if err != nil {
		// Context cancellation or timeout takes precedence over the
		// exit status the killed process reports.
		if ctxErr := ctx.Err(); ctxErr != nil {
			result.ExitCode = -1
			return result, ctxErr
		}

		var execErr *osexec.Error
		if errors.As(err, &execErr) {
			result.ExitCode = -1
			return result, &NotFoundError{Cmd: args.Cmd}
		}

		var exitErr *osexec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, &ExitStatusError{
				Cmd:      args.Cmd,
				ExitCode: exitErr.ExitCode(),
				Stderr:   result.Stderr,
				cause:    exitErr,
			}
		}

		// I/O or setup failure before the process started
		result.ExitCode = -1
		return result, err
	}

	return result, nil
}

// LookPath reports whether cmd resolves to an executable in PATH.
func (r *commandRunner) LookPath(cmd string) bool {
	_, err := osexec.LookPath(cmd)
	return err == nil
}
