package mcp

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/autofix/internal/detect"
	"github.com/gorewood/autofix/internal/dispatch"
	"github.com/gorewood/autofix/internal/doctor"
	"github.com/gorewood/autofix/internal/exec"
)

// resolveDir defaults an empty tool input directory to the process cwd.
func resolveDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	return cwd, nil
}

// --- Detect tool ---

// ToolchainMatch is one detected toolchain for output.
type ToolchainMatch struct {
	Toolchain string   `json:"toolchain" jsonschema:"detected toolchain name"`
	Markers   []string `json:"markers"   jsonschema:"marker files that matched"`
}

// DetectInput is the input for the detect tool.
type DetectInput struct {
	Dir string `json:"dir,omitempty" jsonschema:"directory to inspect (defaults to the current directory)"`
}

// DetectOutput is the output for the detect tool.
type DetectOutput struct {
	Dir            string           `json:"dir"                       jsonschema:"inspected directory"`
	Toolchains     []ToolchainMatch `json:"toolchains"                jsonschema:"detected toolchains in priority order"`
	PackageManager string           `json:"package_manager,omitempty" jsonschema:"resolved Node package manager"`
	Lockfiles      []string         `json:"lockfiles,omitempty"       jsonschema:"Node lockfiles found"`
}

func handleDetect() mcp.ToolHandlerFor[DetectInput, DetectOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input DetectInput) (*mcp.CallToolResult, DetectOutput, error) {
		dir, err := resolveDir(input.Dir)
		if err != nil {
			return nil, DetectOutput{}, err
		}

		ws, err := detect.Inspect(dir)
		if err != nil {
			return nil, DetectOutput{}, fmt.Errorf("inspecting %s: %w", dir, err)
		}

		out := DetectOutput{
			Dir:            ws.Dir,
			Toolchains:     toToolchainMatches(ws.Matches),
			PackageManager: string(ws.PackageManager),
			Lockfiles:      ws.Lockfiles,
		}
		return nil, out, nil
	}
}

func toToolchainMatches(matches []detect.Match) []ToolchainMatch {
	out := make([]ToolchainMatch, len(matches))
	for i, m := range matches {
		out[i] = ToolchainMatch{
			Toolchain: string(m.Toolchain),
			Markers:   m.Markers,
		}
	}
	return out
}

// --- Plan tool ---

// PlanStep is one planned setup step for output.
type PlanStep struct {
	Name     string   `json:"name"               jsonschema:"step identifier"`
	Label    string   `json:"label"              jsonschema:"human-readable step label"`
	Severity string   `json:"severity"           jsonschema:"hard or soft"`
	Status   string   `json:"status"             jsonschema:"dry_run when the step would execute, skipped otherwise"`
	Message  string   `json:"message,omitempty"  jsonschema:"skip reason"`
	Commands []string `json:"commands,omitempty" jsonschema:"exact commands the step would run"`
}

// PlanToolchain holds the planned steps for one toolchain.
type PlanToolchain struct {
	Toolchain string     `json:"toolchain" jsonschema:"toolchain name"`
	Markers   []string   `json:"markers"   jsonschema:"marker files that matched"`
	Steps     []PlanStep `json:"steps"     jsonschema:"ordered setup steps"`
}

// PlanInput is the input for the plan tool.
type PlanInput struct {
	Dir string `json:"dir,omitempty" jsonschema:"directory to plan for (defaults to the current directory)"`
}

// PlanOutput is the output for the plan tool.
type PlanOutput struct {
	Dir            string          `json:"dir"                       jsonschema:"inspected directory"`
	PackageManager string          `json:"package_manager,omitempty" jsonschema:"resolved Node package manager"`
	Toolchains     []PlanToolchain `json:"toolchains"                jsonschema:"planned steps per detected toolchain"`
}

func handlePlan(runner exec.Runner) mcp.ToolHandlerFor[PlanInput, PlanOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PlanInput) (*mcp.CallToolResult, PlanOutput, error) {
		dir, err := resolveDir(input.Dir)
		if err != nil {
			return nil, PlanOutput{}, err
		}

		ws, err := detect.Inspect(dir)
		if err != nil {
			return nil, PlanOutput{}, fmt.Errorf("inspecting %s: %w", dir, err)
		}

		report := dispatch.New(runner, dispatch.Options{}).Plan(ctx, ws)

		out := PlanOutput{
			Dir:            report.Dir,
			PackageManager: string(report.PackageManager),
			Toolchains:     toPlanToolchains(report.Toolchains),
		}
		return nil, out, nil
	}
}

func toPlanToolchains(results []dispatch.ToolchainResult) []PlanToolchain {
	out := make([]PlanToolchain, len(results))
	for i, tc := range results {
		steps := make([]PlanStep, len(tc.Steps))
		for j, step := range tc.Steps {
			steps[j] = PlanStep{
				Name:     step.Name,
				Label:    step.Label,
				Severity: string(step.Severity),
				Status:   string(step.Status),
				Message:  step.Message,
				Commands: step.Commands,
			}
		}
		out[i] = PlanToolchain{
			Toolchain: string(tc.Toolchain),
			Markers:   tc.Markers,
			Steps:     steps,
		}
	}
	return out
}

// --- Doctor tool ---

// DoctorCheck is one tool availability check for output.
type DoctorCheck struct {
	Tool      string `json:"tool"                jsonschema:"external tool name"`
	Toolchain string `json:"toolchain,omitempty" jsonschema:"toolchain that needs the tool"`
	Purpose   string `json:"purpose"             jsonschema:"what the tool is used for"`
	Required  bool   `json:"required"            jsonschema:"whether a hard setup step needs the tool"`
	Available bool   `json:"available"           jsonschema:"whether the tool was found on PATH"`
	Hint      string `json:"hint,omitempty"      jsonschema:"install hint"`
}

// DoctorInput is the input for the doctor tool.
type DoctorInput struct {
	Dir string `json:"dir,omitempty" jsonschema:"directory whose toolchains to check (defaults to the current directory)"`
}

// DoctorOutput is the output for the doctor tool.
type DoctorOutput struct {
	Dir     string        `json:"dir"     jsonschema:"inspected directory"`
	Healthy bool          `json:"healthy" jsonschema:"true when every required tool is available"`
	Checks  []DoctorCheck `json:"checks"  jsonschema:"tool availability checks"`
}

func handleDoctor(runner exec.Runner) mcp.ToolHandlerFor[DoctorInput, DoctorOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input DoctorInput) (*mcp.CallToolResult, DoctorOutput, error) {
		dir, err := resolveDir(input.Dir)
		if err != nil {
			return nil, DoctorOutput{}, err
		}

		ws, err := detect.Inspect(dir)
		if err != nil {
			return nil, DoctorOutput{}, fmt.Errorf("inspecting %s: %w", dir, err)
		}

		checks := doctor.Check(ws, runner)

		out := DoctorOutput{
			Dir:     dir,
			Healthy: true,
			Checks:  make([]DoctorCheck, len(checks)),
		}
		for i, c := range checks {
			if c.Required && !c.Available {
				out.Healthy = false
			}
			out.Checks[i] = DoctorCheck{
				Tool:      c.Tool,
				Toolchain: string(c.Toolchain),
				Purpose:   c.Purpose,
				Required:  c.Required,
				Available: c.Available,
				Hint:      c.Hint,
			}
		}
		return nil, out, nil
	}
}
