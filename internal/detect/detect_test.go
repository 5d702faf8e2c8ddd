package detect

import (
	"os"
	"path/filepath"
	"testing"
)

// writeFiles creates empty marker files (or files with content when the map
// value is non-empty) in a fresh temp directory.
func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if content == "" {
			content = "\n"
		}
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return dir
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  []Toolchain
	}{
		{
			name:  "requirements.txt only yields python",
			files: map[string]string{"requirements.txt": ""},
			want:  []Toolchain{Python},
		},
		{
			name:  "pyproject.toml yields python",
			files: map[string]string{"pyproject.toml": ""},
			want:  []Toolchain{Python},
		},
		{
			name:  "setup.py yields python",
			files: map[string]string{"setup.py": ""},
			want:  []Toolchain{Python},
		},
		{
			name:  "package.json yields node",
			files: map[string]string{"package.json": "{}"},
			want:  []Toolchain{Node},
		},
		{
			name:  "Cargo.toml yields rust",
			files: map[string]string{"Cargo.toml": ""},
			want:  []Toolchain{Rust},
		},
		{
			name:  "pubspec.yaml yields flutter",
			files: map[string]string{"pubspec.yaml": ""},
			want:  []Toolchain{Flutter},
		},
		{
			name: "python and node both detected in priority order",
			files: map[string]string{
				"requirements.txt": "",
				"package.json":     "{}",
			},
			want: []Toolchain{Python, Node},
		},
		{
			name: "all four toolchains in priority order",
			files: map[string]string{
				"pubspec.yaml":     "",
				"Cargo.toml":       "",
				"package.json":     "{}",
				"requirements.txt": "",
			},
			want: []Toolchain{Python, Node, Rust, Flutter},
		},
		{
			name:  "no markers yields empty set",
			files: map[string]string{"README.md": "hi"},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeFiles(t, tt.files)

			matches, err := Detect(dir)
			if err != nil {
				t.Fatalf("Detect() error = %v", err)
			}

			if len(matches) != len(tt.want) {
				t.Fatalf("Detect() = %v, want toolchains %v", matches, tt.want)
			}
			for i, want := range tt.want {
				if matches[i].Toolchain != want {
					t.Errorf("matches[%d] = %s, want %s", i, matches[i].Toolchain, want)
				}
			}
		})
	}
}

func TestDetect_MarkerDirectoryDoesNotCount(t *testing.T) {
	// A directory named like a marker file must not trigger detection.
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "node_modules"), 0o755); err != nil {
		t.Fatal(err)
	}

	matches, err := Detect(dir)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("Detect() = %v, want empty", matches)
	}
}

func TestDetect_NonRecursive(t *testing.T) {
	// Markers in subdirectories are ignored; only the top level counts.
	dir := t.TempDir()
	sub := filepath.Join(dir, "backend")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "requirements.txt"), []byte("\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	matches, err := Detect(dir)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("Detect() should ignore nested markers, got %v", matches)
	}
}

func TestDetect_MissingDirectory(t *testing.T) {
	_, err := Detect(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Error("Detect() should fail for a missing directory")
	}
}

func TestInspect(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"requirements.txt": "",
		"package.json":     "{}",
		"pnpm-lock.yaml":   "",
	})

	ws, err := Inspect(dir)
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}

	if !ws.Has(Python) || !ws.Has(Node) {
		t.Errorf("workspace should detect python and node: %v", ws.Toolchains())
	}
	if ws.Has(Rust) {
		t.Error("workspace should not detect rust")
	}
	if ws.PackageManager != Pnpm {
		t.Errorf("PackageManager = %s, want pnpm", ws.PackageManager)
	}
}

func TestWorkspaceHasGitDir(t *testing.T) {
	dir := t.TempDir()
	ws := &Workspace{Dir: dir}

	if ws.HasGitDir() {
		t.Error("HasGitDir() should be false without .git")
	}

	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	if !ws.HasGitDir() {
		t.Error("HasGitDir() should be true with .git directory")
	}
}

func TestToolchainDisplay(t *testing.T) {
	tests := []struct {
		toolchain Toolchain
		want      string
	}{
		{Python, "Python"},
		{Node, "Node.js"},
		{Rust, "Rust"},
		{Flutter, "Flutter"},
		{Toolchain("zig"), "zig"},
	}

	for _, tt := range tests {
		if got := tt.toolchain.Display(); got != tt.want {
			t.Errorf("Display(%s) = %q, want %q", tt.toolchain, got, tt.want)
		}
	}
}
