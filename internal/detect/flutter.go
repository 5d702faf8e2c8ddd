package detect

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// pubspec is the subset of pubspec.yaml this tool reads.
type pubspec struct {
	Dependencies    map[string]any `yaml:"dependencies"`
	DevDependencies map[string]any `yaml:"dev_dependencies"`
}

// HasBuildRunner reports whether dir's pubspec.yaml declares build_runner,
// which enables the code-generation step after flutter pub get.
func HasBuildRunner(dir string) bool {
	data, err := os.ReadFile(filepath.Join(dir, "pubspec.yaml"))
	if err != nil {
		return false
	}

	var spec pubspec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return false
	}

	if _, ok := spec.DevDependencies["build_runner"]; ok {
		return true
	}
	_, ok := spec.Dependencies["build_runner"]
	return ok
}
