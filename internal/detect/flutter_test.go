package detect

import "testing"

func TestHasBuildRunner(t *testing.T) {
	tests := []struct {
		name    string
		pubspec string
		want    bool
	}{
		{
			name: "build_runner in dev_dependencies",
			pubspec: `name: app
dev_dependencies:
  build_runner: ^2.4.0
  flutter_test:
    sdk: flutter
`,
			want: true,
		},
		{
			name: "build_runner in dependencies",
			pubspec: `name: app
dependencies:
  build_runner: ^2.4.0
`,
			want: true,
		},
		{
			name: "no build_runner",
			pubspec: `name: app
dependencies:
  http: ^1.0.0
`,
			want: false,
		},
		{
			name:    "malformed yaml",
			pubspec: "name: [unclosed",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeFiles(t, map[string]string{"pubspec.yaml": tt.pubspec})
			if got := HasBuildRunner(dir); got != tt.want {
				t.Errorf("HasBuildRunner() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasBuildRunner_MissingFile(t *testing.T) {
	if HasBuildRunner(t.TempDir()) {
		t.Error("HasBuildRunner() should be false without pubspec.yaml")
	}
}
