package detect

import (
	"os"
	"path/filepath"
	"runtime"
)

// VenvDir is the virtual environment directory created by the python setup.
const VenvDir = ".venv"

// PreCommitConfig is the hook configuration file that triggers pre-commit install.
const PreCommitConfig = ".pre-commit-config.yaml"

// pythonManifests lists the Python dependency manifests in precedence order.
// requirements.txt wins over pyproject.toml; bare setup.py comes last.
var pythonManifests = []string{"requirements.txt", "pyproject.toml", "setup.py"}

// PythonManifest returns the highest-precedence Python manifest present in dir.
// The second return is false when none exist.
func PythonManifest(dir string) (string, bool) {
	for _, name := range pythonManifests {
		if fileExists(dir, name) {
			return name, true
		}
	}
	return "", false
}

// HasVenv reports whether dir already has a virtual environment directory.
func HasVenv(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, VenvDir))
	return err == nil && info.IsDir()
}

// SystemPython returns the interpreter used to create virtual environments.
func SystemPython() string {
	if runtime.GOOS == "windows" {
		return "python"
	}
	return "python3"
}

// VenvPython returns the path of the virtual environment's python for dir.
func VenvPython(dir string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(dir, VenvDir, "Scripts", "python.exe")
	}
	return filepath.Join(dir, VenvDir, "bin", "python")
}

// VenvPip returns the path of the virtual environment's pip for dir.
func VenvPip(dir string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(dir, VenvDir, "Scripts", "pip.exe")
	}
	return filepath.Join(dir, VenvDir, "bin", "pip")
}

// VenvPythonExists reports whether the venv interpreter is present on disk.
func VenvPythonExists(dir string) bool {
	_, err := os.Stat(VenvPython(dir))
	return err == nil
}

// HasPreCommitConfig reports whether dir contains a pre-commit configuration.
func HasPreCommitConfig(dir string) bool {
	return fileExists(dir, PreCommitConfig)
}
