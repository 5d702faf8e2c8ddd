// Package doctor checks availability of the external tools autofix invokes.
//
// Every setup step shells out to an ecosystem tool (pip, npm, cargo,
// flutter). The checks here probe PATH for the tools each detected
// toolchain needs, so a run can be diagnosed before anything executes.
package doctor

import (
	"github.com/gorewood/autofix/internal/detect"
	"github.com/gorewood/autofix/internal/exec"
)

// ToolCheck is the result of probing one external tool.
type ToolCheck struct {
	Tool      string           `json:"tool"`
	Toolchain detect.Toolchain `json:"toolchain,omitempty"`
	Purpose   string           `json:"purpose"`
	Required  bool             `json:"required"`
	Available bool             `json:"available"`
	Hint      string           `json:"hint,omitempty"`
}

// requirement is one row of the per-toolchain tool table.
type requirement struct {
	tool     string
	purpose  string
	required bool
	hint     string
}

// requirements lists the external tools per toolchain. Required tools back
// hard steps; the rest only degrade a run when missing.
var requirements = map[detect.Toolchain][]requirement{
	detect.Python: {
		{tool: "python3", purpose: "create virtual environments", required: true, hint: "install Python from https://python.org/"},
	},
	detect.Rust: {
		{tool: "cargo", purpose: "fetch crate dependencies", required: true, hint: "install Rust from https://rustup.rs/"},
	},
	detect.Flutter: {
		{tool: "flutter", purpose: "get packages and run code generation", required: true, hint: "install Flutter from https://flutter.dev/"},
		{tool: "dart", purpose: "format Dart code", required: false, hint: "dart ships with the Flutter SDK"},
	},
}

// Check probes PATH for the tools the workspace's detected toolchains need.
// When nothing was detected, every known toolchain is covered so the report
// is still useful on an empty directory. Git is always checked because the
// hook step writes into .git/hooks.
func Check(ws *detect.Workspace, runner exec.Runner) []ToolCheck {
	toolchains := ws.Toolchains()
	if len(toolchains) == 0 {
		for _, rule := range detect.Rules {
			toolchains = append(toolchains, rule.Toolchain)
		}
	}

	var checks []ToolCheck
	for _, toolchain := range toolchains {
		if toolchain == detect.Node {
			checks = append(checks, nodeCheck(ws, runner))
			continue
		}
		for _, req := range requirements[toolchain] {
			checks = append(checks, ToolCheck{
				Tool:      req.tool,
				Toolchain: toolchain,
				Purpose:   req.purpose,
				Required:  req.required,
				Available: runner.LookPath(req.tool),
				Hint:      req.hint,
			})
		}
	}

	checks = append(checks, ToolCheck{
		Tool:      "git",
		Purpose:   "install pre-commit hooks",
		Required:  false,
		Available: runner.LookPath("git"),
		Hint:      "install git from https://git-scm.com/",
	})

	return checks
}

// nodeCheck probes the package manager the lockfiles resolved to, falling
// back to npm when the workspace has no Node project.
func nodeCheck(ws *detect.Workspace, runner exec.Runner) ToolCheck {
	manager := ws.PackageManager
	if manager == "" {
		manager = detect.Npm
	}
	return ToolCheck{
		Tool:      string(manager),
		Toolchain: detect.Node,
		Purpose:   "install Node.js dependencies",
		Required:  true,
		Available: runner.LookPath(string(manager)),
		Hint:      "install Node.js from https://nodejs.org/",
	}
}
