package detect

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// PackageManager identifies the Node.js package manager to invoke.
type PackageManager string

const (
	Npm  PackageManager = "npm"
	Yarn PackageManager = "yarn"
	Pnpm PackageManager = "pnpm"
)

// lockfilePrecedence fixes the package-manager choice when several lockfiles
// coexist. First match wins; npm is the fallback when no lockfile is present.
var lockfilePrecedence = []struct {
	file    string
	manager PackageManager
}{
	{"pnpm-lock.yaml", Pnpm},
	{"yarn.lock", Yarn},
	{"package-lock.json", Npm},
}

// ResolvePackageManager selects the Node package manager for dir from
// lockfile presence, and returns every lockfile found so callers can report
// the disambiguation when more than one is present.
func ResolvePackageManager(dir string) (PackageManager, []string) {
	manager := Npm
	var lockfiles []string
	chosen := false

	for _, entry := range lockfilePrecedence {
		if !fileExists(dir, entry.file) {
			continue
		}
		lockfiles = append(lockfiles, entry.file)
		if !chosen {
			manager = entry.manager
			chosen = true
		}
	}

	return manager, lockfiles
}

// packageJSON is the subset of package.json this tool reads.
type packageJSON struct {
	Scripts map[string]string `json:"scripts"`
}

// HasFormatScript reports whether dir's package.json declares a "format" script.
func HasFormatScript(dir string) bool {
	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		return false
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return false
	}

	_, ok := pkg.Scripts["format"]
	return ok
}

// prettierConfigs are the Prettier configuration files checked for the
// fallback formatting step when no "format" script exists.
var prettierConfigs = []string{".prettierrc", "prettier.config.js", ".prettierrc.json"}

// HasPrettierConfig reports whether dir contains a Prettier configuration file.
func HasPrettierConfig(dir string) bool {
	for _, name := range prettierConfigs {
		if fileExists(dir, name) {
			return true
		}
	}
	return false
}
