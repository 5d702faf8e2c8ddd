// Package exec runs external commands for the autofix CLI.
//
// The dispatcher never talks to os/exec directly: it depends on the Runner
// interface, which a Recorder can stand in for during tests. The real
// implementation captures output and converts every failure mode into a
// typed error, so a broken package manager never crashes a run.
package exec

import (
	"context"
	"strings"
)

// RunArgs describes a single external command invocation.
type RunArgs struct {
	Cmd  string
	Args []string

	// Cwd is the working directory for the command. Empty means the
	// current process working directory.
	Cwd string

	// Env holds additional environment variables in KEY=VALUE form,
	// appended to the current process environment.
	Env []string
}

// NewRunArgs creates run arguments for the given command and arguments.
func NewRunArgs(cmd string, args ...string) RunArgs {
	return RunArgs{
		Cmd:  cmd,
		Args: args,
	}
}

// WithCwd returns a copy with the working directory set.
func (a RunArgs) WithCwd(cwd string) RunArgs {
	a.Cwd = cwd
	return a
}

// WithEnv returns a copy with additional environment variables set.
func (a RunArgs) WithEnv(env []string) RunArgs {
	a.Env = env
	return a
}

// String returns the full invocation text, e.g. "pip install -r requirements.txt".
// Used for verbose logging and dry-run output.
func (a RunArgs) String() string {
	if len(a.Args) == 0 {
		return a.Cmd
	}
	return a.Cmd + " " + strings.Join(a.Args, " ")
}

// RunResult is the result of running a command.
type RunResult struct {
	// The exit code of the command.
	ExitCode int
	// The stdout output captured from running the command, trimmed.
	Stdout string
	// The stderr output captured from running the command, trimmed.
	Stderr string
}

// Runner executes external commands and probes tool availability.
type Runner interface {
	// Run executes the command described by args and captures its output.
	// A non-zero exit returns the populated RunResult together with an
	// *ExitStatusError; a missing binary returns a *NotFoundError.
	Run(ctx context.Context, args RunArgs) (RunResult, error)

	// LookPath reports whether cmd resolves to an executable in PATH.
	LookPath(cmd string) bool
}
