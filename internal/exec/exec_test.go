package exec

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRunArgsString(t *testing.T) {
	tests := []struct {
		name string
		args RunArgs
		want string
	}{
		{
			name: "command only",
			args: NewRunArgs("cargo"),
			want: "cargo",
		},
		{
			name: "command with args",
			args: NewRunArgs("pip", "install", "-r", "requirements.txt"),
			want: "pip install -r requirements.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.args.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunArgsBuilders(t *testing.T) {
	args := NewRunArgs("npm", "install").
		WithCwd("/tmp/project").
		WithEnv([]string{"CI=1"})

	if args.Cwd != "/tmp/project" {
		t.Errorf("Cwd = %q, want %q", args.Cwd, "/tmp/project")
	}
	if len(args.Env) != 1 || args.Env[0] != "CI=1" {
		t.Errorf("Env = %v, want [CI=1]", args.Env)
	}

	// Builders must not mutate the receiver
	base := NewRunArgs("npm", "install")
	_ = base.WithCwd("/elsewhere")
	if base.Cwd != "" {
		t.Error("WithCwd should not mutate the original args")
	}
}

func TestRunnerRun_Success(t *testing.T) {
	runner := NewRunner()

	result, err := runner.Run(context.Background(), NewRunArgs("sh", "-c", "echo hello"))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", result.ExitCode)
	}
	if result.Stdout != "hello" {
		t.Errorf("Stdout = %q, want %q", result.Stdout, "hello")
	}
}

func TestRunnerRun_NonZeroExit(t *testing.T) {
	runner := NewRunner()

	result, err := runner.Run(context.Background(), NewRunArgs("sh", "-c", "echo oops >&2; exit 3"))
	if err == nil {
		t.Fatal("Run() should return an error for non-zero exit")
	}

	var exitErr *ExitStatusError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error should be *ExitStatusError, got %T: %v", err, err)
	}
	if exitErr.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", exitErr.ExitCode)
	}
	if result.Stderr != "oops" {
		t.Errorf("Stderr = %q, want %q", result.Stderr, "oops")
	}
}

func TestRunnerRun_CommandNotFound(t *testing.T) {
	runner := NewRunner()

	_, err := runner.Run(context.Background(), NewRunArgs("definitely-not-a-real-binary-xyz"))
	if !IsNotFound(err) {
		t.Fatalf("error should be a NotFoundError, got %T: %v", err, err)
	}
}

func TestRunnerRun_Timeout(t *testing.T) {
	runner := NewRunner()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := runner.Run(ctx, NewRunArgs("sh", "-c", "sleep 5"))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("error should wrap context.DeadlineExceeded, got %v", err)
	}
}

func TestRunnerLookPath(t *testing.T) {
	runner := NewRunner()

	if !runner.LookPath("sh") {
		t.Error("LookPath(sh) should be true")
	}
	if runner.LookPath("definitely-not-a-real-binary-xyz") {
		t.Error("LookPath for a bogus binary should be false")
	}
}

func TestRecorder_ScriptedResults(t *testing.T) {
	rec := NewRecorder()
	rec.Respond("cargo fetch", RunResult{Stdout: "ok"})
	rec.FailWith("pip install -r requirements.txt", 1, "resolution failed")
	rec.MarkMissing("flutter")

	// Scripted success
	result, err := rec.Run(context.Background(), NewRunArgs("cargo", "fetch"))
	if err != nil || result.Stdout != "ok" {
		t.Errorf("scripted success: result=%+v err=%v", result, err)
	}

	// Scripted failure
	result, err = rec.Run(context.Background(), NewRunArgs("pip", "install", "-r", "requirements.txt"))
	var exitErr *ExitStatusError
	if !errors.As(err, &exitErr) {
		t.Fatalf("scripted failure should return *ExitStatusError, got %v", err)
	}
	if result.Stderr != "resolution failed" {
		t.Errorf("Stderr = %q, want %q", result.Stderr, "resolution failed")
	}

	// Missing tool
	_, err = rec.Run(context.Background(), NewRunArgs("flutter", "pub", "get"))
	if !IsNotFound(err) {
		t.Errorf("missing tool should return NotFoundError, got %v", err)
	}
	if rec.LookPath("flutter") {
		t.Error("LookPath(flutter) should be false after MarkMissing")
	}

	// Unscripted commands succeed
	result, err = rec.Run(context.Background(), NewRunArgs("npm", "install"))
	if err != nil || result.ExitCode != 0 {
		t.Errorf("unscripted command should succeed: result=%+v err=%v", result, err)
	}

	// All calls recorded in order
	want := []string{
		"cargo fetch",
		"pip install -r requirements.txt",
		"flutter pub get",
		"npm install",
	}
	got := rec.CommandLines()
	if len(got) != len(want) {
		t.Fatalf("recorded %d calls, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, got[i], want[i])
		}
	}
}
