package dispatch

import (
	"context"
	"slices"

	"github.com/gorewood/autofix/internal/detect"
	"github.com/gorewood/autofix/internal/exec"
)

// stepContext carries what a step's plan function needs: the workspace and a
// runner for read-only availability probes (formatter import checks). Probes
// run even in dry-run mode so the planned commands match a real run.
type stepContext struct {
	ctx    context.Context
	ws     *detect.Workspace
	runner exec.Runner
}

// step is one row of a toolchain's setup table. plan evaluates the step's
// precondition against the workspace and returns the commands to execute;
// a non-empty skip reason means the precondition is unmet.
type step struct {
	name     string
	label    string
	severity Severity
	plan     func(sc *stepContext) (commands []exec.RunArgs, skip string)
}

// stepsFor returns the fixed, ordered setup sequence for a toolchain.
// The tables are the single source of truth: dry-run, real runs, and the
// plan tool all consult the same rows.
func stepsFor(toolchain detect.Toolchain) []step {
	switch toolchain {
	case detect.Python:
		return pythonSteps
	case detect.Node:
		return nodeSteps
	case detect.Rust:
		return rustSteps
	case detect.Flutter:
		return flutterSteps
	}
	return nil
}

var pythonSteps = []step{
	{
		name:     "venv",
		label:    "Create virtual environment",
		severity: SeverityHard,
		plan: func(sc *stepContext) ([]exec.RunArgs, string) {
			if detect.HasVenv(sc.ws.Dir) {
				return nil, "virtual environment already exists"
			}
			cmd := exec.NewRunArgs(detect.SystemPython(), "-m", "venv", detect.VenvDir).WithCwd(sc.ws.Dir)
			return []exec.RunArgs{cmd}, ""
		},
	},
	{
		name:     "deps",
		label:    "Install dependencies",
		severity: SeverityHard,
		plan: func(sc *stepContext) ([]exec.RunArgs, string) {
			manifest, ok := detect.PythonManifest(sc.ws.Dir)
			if !ok {
				return nil, "no dependency manifest"
			}
			pip := detect.VenvPip(sc.ws.Dir)
			var cmd exec.RunArgs
			if manifest == "requirements.txt" {
				cmd = exec.NewRunArgs(pip, "install", "-r", "requirements.txt").WithCwd(sc.ws.Dir)
			} else {
				// pyproject.toml or setup.py: editable install of the project
				cmd = exec.NewRunArgs(pip, "install", "-e", ".").WithCwd(sc.ws.Dir)
			}
			return []exec.RunArgs{cmd}, ""
		},
	},
	{
		name:     "format",
		label:    "Format code",
		severity: SeveritySoft,
		plan: func(sc *stepContext) ([]exec.RunArgs, string) {
			if !detect.VenvPythonExists(sc.ws.Dir) {
				return nil, "no virtual environment"
			}
			python := detect.VenvPython(sc.ws.Dir)
			// ruff wins over black when both are installed
			for _, formatter := range []struct {
				pkg  string
				args []string
			}{
				{"ruff", []string{"-m", "ruff", "format", "."}},
				{"black", []string{"-m", "black", "."}},
			} {
				if pythonPackageInstalled(sc, python, formatter.pkg) {
					cmd := exec.NewRunArgs(python, formatter.args...).WithCwd(sc.ws.Dir)
					return []exec.RunArgs{cmd}, ""
				}
			}
			return nil, "no formatter installed (ruff or black)"
		},
	},
	{
		name:     "pre-commit",
		label:    "Install pre-commit hook",
		severity: SeveritySoft,
		plan: func(sc *stepContext) ([]exec.RunArgs, string) {
			if !detect.HasPreCommitConfig(sc.ws.Dir) {
				return nil, "no " + detect.PreCommitConfig
			}
			if !sc.ws.HasGitDir() {
				return nil, "not a git repository"
			}
			python := detect.SystemPython()
			if detect.VenvPythonExists(sc.ws.Dir) {
				python = detect.VenvPython(sc.ws.Dir)
			}
			cmd := exec.NewRunArgs(python, "-m", "pre_commit", "install").WithCwd(sc.ws.Dir)
			return []exec.RunArgs{cmd}, ""
		},
	},
}

var nodeSteps = []step{
	{
		name:     "install",
		label:    "Install dependencies",
		severity: SeverityHard,
		plan: func(sc *stepContext) ([]exec.RunArgs, string) {
			pm := string(sc.ws.PackageManager)
			if pm == "" {
				pm = string(detect.Npm)
			}
			var cmd exec.RunArgs
			if pm == string(detect.Npm) && slices.Contains(sc.ws.Lockfiles, "package-lock.json") {
				cmd = exec.NewRunArgs(pm, "ci").WithCwd(sc.ws.Dir)
			} else {
				cmd = exec.NewRunArgs(pm, "install").WithCwd(sc.ws.Dir)
			}
			return []exec.RunArgs{cmd}, ""
		},
	},
	{
		name:     "format",
		label:    "Format code",
		severity: SeveritySoft,
		plan: func(sc *stepContext) ([]exec.RunArgs, string) {
			if detect.HasFormatScript(sc.ws.Dir) {
				cmd := exec.NewRunArgs("npm", "run", "format").WithCwd(sc.ws.Dir)
				return []exec.RunArgs{cmd}, ""
			}
			if detect.HasPrettierConfig(sc.ws.Dir) {
				cmd := exec.NewRunArgs("npx", "prettier", "--write", ".").WithCwd(sc.ws.Dir)
				return []exec.RunArgs{cmd}, ""
			}
			return nil, "no format script or prettier config"
		},
	},
}

var rustSteps = []step{
	{
		name:     "fetch",
		label:    "Fetch dependencies",
		severity: SeverityHard,
		plan: func(sc *stepContext) ([]exec.RunArgs, string) {
			cmd := exec.NewRunArgs("cargo", "fetch").WithCwd(sc.ws.Dir)
			return []exec.RunArgs{cmd}, ""
		},
	},
}

var flutterSteps = []step{
	{
		name:     "pub-get",
		label:    "Get packages",
		severity: SeverityHard,
		plan: func(sc *stepContext) ([]exec.RunArgs, string) {
			cmd := exec.NewRunArgs("flutter", "pub", "get").WithCwd(sc.ws.Dir)
			return []exec.RunArgs{cmd}, ""
		},
	},
	{
		name:     "build-runner",
		label:    "Run code generation",
		severity: SeveritySoft,
		plan: func(sc *stepContext) ([]exec.RunArgs, string) {
			if !detect.HasBuildRunner(sc.ws.Dir) {
				return nil, "pubspec.yaml does not declare build_runner"
			}
			cmd := exec.NewRunArgs(
				"flutter", "packages", "pub", "run",
				"build_runner", "build", "--delete-conflicting-outputs",
			).WithCwd(sc.ws.Dir)
			return []exec.RunArgs{cmd}, ""
		},
	},
	{
		name:     "format",
		label:    "Format Dart code",
		severity: SeveritySoft,
		plan: func(sc *stepContext) ([]exec.RunArgs, string) {
			cmd := exec.NewRunArgs("dart", "format", ".").WithCwd(sc.ws.Dir)
			return []exec.RunArgs{cmd}, ""
		},
	},
}

// pythonPackageInstalled probes whether the venv interpreter can import pkg.
// The probe is read-only and runs in dry-run mode too, so the chosen
// formatter command is identical between modes.
func pythonPackageInstalled(sc *stepContext, python, pkg string) bool {
	_, err := sc.runner.Run(sc.ctx, exec.NewRunArgs(python, "-c", "import "+pkg).WithCwd(sc.ws.Dir))
	return err == nil
}
