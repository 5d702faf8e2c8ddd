package hooks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// gitWorkspace creates a temp workspace with a .git/hooks directory.
func gitWorkspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".git", "hooks"), 0o755); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestDir(t *testing.T) {
	t.Run("git workspace", func(t *testing.T) {
		workspace := gitWorkspace(t)
		dir, err := Dir(workspace)
		if err != nil {
			t.Fatalf("Dir() error = %v", err)
		}
		want := filepath.Join(workspace, ".git", "hooks")
		if dir != want {
			t.Errorf("Dir() = %q, want %q", dir, want)
		}
	})

	t.Run("not a git repository", func(t *testing.T) {
		if _, err := Dir(t.TempDir()); err == nil {
			t.Error("Dir() should fail without .git")
		}
	})
}

func TestGenerateScript(t *testing.T) {
	t.Run("without chain", func(t *testing.T) {
		got := GenerateScript(false)
		if !strings.HasPrefix(got, "#!/bin/sh") {
			t.Error("expected shebang")
		}
		if !strings.Contains(got, "pre-commit run") {
			t.Error("expected pre-commit invocation")
		}
		if strings.Contains(got, ".backup") {
			t.Error("should not contain backup chain")
		}
	})

	t.Run("with chain", func(t *testing.T) {
		got := GenerateScript(true)
		if !strings.Contains(got, "pre-commit run") {
			t.Error("expected pre-commit invocation")
		}
		if !strings.Contains(got, "pre-commit.backup") {
			t.Error("expected backup chain section")
		}
	})
}

func TestInstallAndStatus(t *testing.T) {
	workspace := gitWorkspace(t)

	chained, err := Install(workspace, false, false)
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	if chained {
		t.Error("fresh install should not be chained")
	}

	hookPath, err := PreCommitPath(workspace)
	if err != nil {
		t.Fatal(err)
	}

	status := CheckStatus(hookPath)
	if !status.Installed || status.Chained {
		t.Errorf("status = %+v, want installed and not chained", status)
	}

	info, err := os.Stat(hookPath)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode()&0o111 == 0 {
		t.Error("hook should be executable")
	}
}

func TestInstall_ExistingHookRequiresFlag(t *testing.T) {
	workspace := gitWorkspace(t)
	hookPath, err := PreCommitPath(workspace)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(hookPath, []byte("#!/bin/sh\necho mine\n"), 0o755); err != nil { //nolint:gosec // hook needs exec bit
		t.Fatal(err)
	}

	if _, err := Install(workspace, false, false); err == nil {
		t.Error("Install() should refuse to overwrite a foreign hook")
	}
}

func TestInstall_ChainBacksUpExistingHook(t *testing.T) {
	workspace := gitWorkspace(t)
	hookPath, err := PreCommitPath(workspace)
	if err != nil {
		t.Fatal(err)
	}
	original := "#!/bin/sh\necho mine\n"
	if err := os.WriteFile(hookPath, []byte(original), 0o755); err != nil { //nolint:gosec // hook needs exec bit
		t.Fatal(err)
	}

	chained, err := Install(workspace, true, false)
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	if !chained {
		t.Error("install over existing hook with --chain should chain")
	}

	backup, err := os.ReadFile(hookPath + ".backup")
	if err != nil {
		t.Fatalf("backup should exist: %v", err)
	}
	if string(backup) != original {
		t.Error("backup should preserve the original hook")
	}

	status := CheckStatus(hookPath)
	if !status.Installed || !status.Chained {
		t.Errorf("status = %+v, want installed and chained", status)
	}
}

func TestInstall_ForceOverwrites(t *testing.T) {
	workspace := gitWorkspace(t)
	hookPath, err := PreCommitPath(workspace)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(hookPath, []byte("#!/bin/sh\necho mine\n"), 0o755); err != nil { //nolint:gosec // hook needs exec bit
		t.Fatal(err)
	}

	chained, err := Install(workspace, false, true)
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	if chained {
		t.Error("force overwrite should not chain")
	}
	if Exists(hookPath + ".backup") {
		t.Error("force overwrite should not create a backup")
	}
}

func TestUninstall(t *testing.T) {
	t.Run("removes installed hook", func(t *testing.T) {
		workspace := gitWorkspace(t)
		if _, err := Install(workspace, false, false); err != nil {
			t.Fatal(err)
		}

		restored, err := Uninstall(workspace)
		if err != nil {
			t.Fatalf("Uninstall() error = %v", err)
		}
		if restored {
			t.Error("nothing to restore without a backup")
		}

		hookPath, _ := PreCommitPath(workspace)
		if Exists(hookPath) {
			t.Error("hook should be removed")
		}
	})

	t.Run("restores backup", func(t *testing.T) {
		workspace := gitWorkspace(t)
		hookPath, _ := PreCommitPath(workspace)
		original := "#!/bin/sh\necho mine\n"
		if err := os.WriteFile(hookPath, []byte(original), 0o755); err != nil { //nolint:gosec // hook needs exec bit
			t.Fatal(err)
		}
		if _, err := Install(workspace, true, false); err != nil {
			t.Fatal(err)
		}

		restored, err := Uninstall(workspace)
		if err != nil {
			t.Fatalf("Uninstall() error = %v", err)
		}
		if !restored {
			t.Error("backup should be restored")
		}

		content, err := os.ReadFile(hookPath)
		if err != nil {
			t.Fatal(err)
		}
		if string(content) != original {
			t.Error("restored hook should match the original")
		}
	})

	t.Run("refuses foreign hook", func(t *testing.T) {
		workspace := gitWorkspace(t)
		hookPath, _ := PreCommitPath(workspace)
		if err := os.WriteFile(hookPath, []byte("#!/bin/sh\necho mine\n"), 0o755); err != nil { //nolint:gosec // hook needs exec bit
			t.Fatal(err)
		}

		if _, err := Uninstall(workspace); err == nil {
			t.Error("Uninstall() should refuse a hook autofix did not write")
		}
	})

	t.Run("no hook installed", func(t *testing.T) {
		workspace := gitWorkspace(t)
		restored, err := Uninstall(workspace)
		if err != nil {
			t.Fatalf("Uninstall() error = %v", err)
		}
		if restored {
			t.Error("nothing should be restored")
		}
	})
}

func TestDescribeInstallAction(t *testing.T) {
	tests := []struct {
		name         string
		existingHook bool
		chain        bool
		force        bool
		want         string
	}{
		{"no existing hook", false, false, false, "would install"},
		{"existing with force", true, false, true, "would overwrite"},
		{"existing with chain", true, true, false, "would backup and chain"},
		{"existing no flags", true, false, false, "would fail"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DescribeInstallAction(tt.existingHook, tt.chain, tt.force)
			if !strings.Contains(got, tt.want) {
				t.Errorf("DescribeInstallAction(%v,%v,%v) = %q, want to contain %q",
					tt.existingHook, tt.chain, tt.force, got, tt.want)
			}
		})
	}
}

func TestDescribeUninstallAction(t *testing.T) {
	tests := []struct {
		name      string
		installed bool
		hasBackup bool
		want      string
	}{
		{"not installed", false, false, "no autofix hook installed"},
		{"installed with backup", true, true, "would remove and restore backup"},
		{"installed no backup", true, false, "would remove"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DescribeUninstallAction(tt.installed, tt.hasBackup)
			if !strings.Contains(got, tt.want) {
				t.Errorf("DescribeUninstallAction(%v,%v) = %q, want to contain %q",
					tt.installed, tt.hasBackup, got, tt.want)
			}
		})
	}
}
