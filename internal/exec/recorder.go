package exec

import (
	"context"
	"strings"
	"sync"
)

// Recorder is a Runner test double. It records every invocation and returns
// scripted results keyed by the full command line, so dispatcher tests are
// deterministic without invoking real package managers.
//
// Unscripted commands succeed with an empty result.
type Recorder struct {
	mu      sync.Mutex
	calls   []RunArgs
	results map[string]RunResult
	errs    map[string]error
	missing map[string]bool
}

// NewRecorder creates an empty Recorder where every command succeeds.
func NewRecorder() *Recorder {
	return &Recorder{
		results: map[string]RunResult{},
		errs:    map[string]error{},
		missing: map[string]bool{},
	}
}

// Respond scripts a successful result for the given command line.
func (r *Recorder) Respond(cmdline string, result RunResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results[cmdline] = result
}

// FailWith scripts a non-zero exit for the given command line.
func (r *Recorder) FailWith(cmdline string, exitCode int, stderr string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cmd, _, _ := strings.Cut(cmdline, " ")
	r.results[cmdline] = RunResult{ExitCode: exitCode, Stderr: stderr}
	r.errs[cmdline] = &ExitStatusError{Cmd: cmd, ExitCode: exitCode, Stderr: stderr}
}

// MarkMissing makes LookPath return false for cmd and any invocation of it
// fail with a NotFoundError.
func (r *Recorder) MarkMissing(cmd string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.missing[cmd] = true
}

// Run records the invocation and returns the scripted result.
func (r *Recorder) Run(_ context.Context, args RunArgs) (RunResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, args)

	if r.missing[args.Cmd] {
		return RunResult{ExitCode: -1}, &NotFoundError{Cmd: args.Cmd}
	}

	key := args.String()
	if err, ok := r.errs[key]; ok {
		return r.results[key], err
	}
	if result, ok := r.results[key]; ok {
		return result, nil
	}
	return RunResult{}, nil
}

// LookPath reports tool availability per MarkMissing scripting.
func (r *Recorder) LookPath(cmd string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.missing[cmd]
}

// Calls returns the recorded invocations in order.
func (r *Recorder) Calls() []RunArgs {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RunArgs, len(r.calls))
	copy(out, r.calls)
	return out
}

// CommandLines returns the full invocation text of each recorded call in order.
func (r *Recorder) CommandLines() []string {
	calls := r.Calls()
	lines := make([]string, len(calls))
	for i, call := range calls {
		lines[i] = call.String()
	}
	return lines
}
