// Package detect inspects a project directory for toolchain marker files.
//
// Detection is a single non-recursive scan of the directory's top level
// checked against the static marker table in Rules. A directory can match
// several toolchains at once (requirements.txt next to package.json); the
// result is always sorted by the table's priority so output is reproducible.
package detect

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Match records one detected toolchain and the marker files that matched.
type Match struct {
	Toolchain Toolchain `json:"toolchain"`
	Priority  int       `json:"-"`
	Markers   []string  `json:"markers"`
}

// Workspace is the full detection result for one directory.
type Workspace struct {
	Dir            string         `json:"dir"`
	Matches        []Match        `json:"matches"`
	PackageManager PackageManager `json:"package_manager,omitempty"`
	Lockfiles      []string       `json:"lockfiles,omitempty"`
}

// Has reports whether the workspace detected the given toolchain.
func (w *Workspace) Has(toolchain Toolchain) bool {
	for _, m := range w.Matches {
		if m.Toolchain == toolchain {
			return true
		}
	}
	return false
}

// Toolchains returns the detected toolchains in priority order.
func (w *Workspace) Toolchains() []Toolchain {
	out := make([]Toolchain, len(w.Matches))
	for i, m := range w.Matches {
		out[i] = m.Toolchain
	}
	return out
}

// HasGitDir reports whether the workspace has a .git directory at its top level.
func (w *Workspace) HasGitDir() bool {
	info, err := os.Stat(filepath.Join(w.Dir, ".git"))
	return err == nil && info.IsDir()
}

// Detect scans the top level of dir once and returns the set of matched
// toolchains sorted by marker-table priority. An empty result means no
// supported project was found.
func Detect(dir string) ([]Match, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	present := make(map[string]bool, len(entries))
	for _, entry := range entries {
		present[entry.Name()] = true
	}

	var matches []Match
	for _, rule := range Rules {
		var markers []string
		for _, marker := range rule.Markers {
			if present[marker] {
				markers = append(markers, marker)
			}
		}
		if len(markers) > 0 {
			matches = append(matches, Match{
				Toolchain: rule.Toolchain,
				Priority:  rule.Priority,
				Markers:   markers,
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Priority < matches[j].Priority
	})
	return matches, nil
}

// Inspect runs full detection on dir: toolchain matches plus the Node
// package-manager resolution when a Node project is present.
func Inspect(dir string) (*Workspace, error) {
	matches, err := Detect(dir)
	if err != nil {
		return nil, err
	}

	ws := &Workspace{
		Dir:     dir,
		Matches: matches,
	}

	if ws.Has(Node) {
		ws.PackageManager, ws.Lockfiles = ResolvePackageManager(dir)
	}

	return ws, nil
}

// fileExists reports whether name exists in dir as a regular file.
func fileExists(dir, name string) bool {
	info, err := os.Stat(filepath.Join(dir, name))
	return err == nil && info.Mode().IsRegular()
}
