package dispatch

import (
	"strings"

	"github.com/gorewood/autofix/internal/detect"
	"github.com/gorewood/autofix/internal/output"
)

// Status is the outcome of a single setup step.
type Status string

const (
	StatusOK      Status = "ok"
	StatusSkipped Status = "skipped"
	StatusDryRun  Status = "dry_run"
	StatusFailed  Status = "failed"
)

// Severity classifies how a step failure affects the toolchain.
// A hard failure marks the toolchain failed and stops its remaining steps;
// a soft failure is reported and the toolchain continues, ending degraded.
type Severity string

const (
	SeverityHard Severity = "hard"
	SeveritySoft Severity = "soft"
)

// StepResult records the outcome of one setup step.
type StepResult struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Severity    Severity `json:"severity"`
	Status      Status   `json:"status"`
	Message     string   `json:"message,omitempty"`
	Commands    []string `json:"commands,omitempty"`
	Stderr      string   `json:"stderr,omitempty"`
	ToolMissing bool     `json:"tool_missing,omitempty"`
}

// ToolchainState summarizes a toolchain's setup outcome.
type ToolchainState string

const (
	// StateOK means every hard and soft step succeeded or was skipped.
	StateOK ToolchainState = "ok"
	// StateDegraded means all hard steps succeeded but a soft step failed.
	StateDegraded ToolchainState = "degraded"
	// StateFailed means at least one hard step failed.
	StateFailed ToolchainState = "failed"
)

// ToolchainResult holds the ordered step outcomes for one toolchain.
type ToolchainResult struct {
	Toolchain detect.Toolchain `json:"toolchain"`
	Markers   []string         `json:"markers,omitempty"`
	State     ToolchainState   `json:"state"`
	Steps     []StepResult     `json:"steps"`
}

// RunReport is the full result of one dispatcher run. It exists only for the
// final summary; nothing is persisted between invocations.
type RunReport struct {
	Dir            string                `json:"dir"`
	DryRun         bool                  `json:"dry_run,omitempty"`
	PackageManager detect.PackageManager `json:"package_manager,omitempty"`
	Lockfiles      []string              `json:"lockfiles,omitempty"`
	Toolchains     []ToolchainResult     `json:"toolchains"`
}

// Failed reports whether any toolchain had a hard step failure.
func (r *RunReport) Failed() bool {
	for _, tc := range r.Toolchains {
		if tc.State == StateFailed {
			return true
		}
	}
	return false
}

// Degraded reports whether any toolchain ended degraded.
func (r *RunReport) Degraded() bool {
	for _, tc := range r.Toolchains {
		if tc.State == StateDegraded {
			return true
		}
	}
	return false
}

// Err converts the report into the exit-coded error for the CLI.
// Returns nil when no hard step failed. When every hard failure was a
// missing tool, the tool-missing code wins so the user sees an install
// problem rather than a generic failure.
func (r *RunReport) Err() error {
	var failed []string
	toolMissingOnly := true

	for _, tc := range r.Toolchains {
		if tc.State != StateFailed {
			continue
		}
		failed = append(failed, tc.Toolchain.Display())
		for _, step := range tc.Steps {
			if step.Status == StatusFailed && step.Severity == SeverityHard && !step.ToolMissing {
				toolMissingOnly = false
			}
		}
	}

	if len(failed) == 0 {
		return nil
	}

	msg := "setup failed for " + strings.Join(failed, ", ")
	if toolMissingOnly {
		return output.NewToolMissingError(msg + ": required tool not found")
	}
	return output.NewStepFailureError(msg)
}

// deriveState computes the toolchain state from its step outcomes.
func deriveState(steps []StepResult) ToolchainState {
	state := StateOK
	for _, step := range steps {
		if step.Status != StatusFailed {
			continue
		}
		if step.Severity == SeverityHard {
			return StateFailed
		}
		state = StateDegraded
	}
	return state
}
