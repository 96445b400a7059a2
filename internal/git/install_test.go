package git

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInstall(t *testing.T) {
	gitDir := t.TempDir()
	inst := NewInstaller(gitDir, "hookrunner")

	if err := inst.Install([]string{"pre-commit", "pre-push"}); err != nil {
		t.Fatalf("Install: %v", err)
	}

	for _, stage := range []string{"pre-commit", "pre-push"} {
		path := filepath.Join(gitDir, "hooks", stage)
		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("hook %s not written: %v", stage, err)
		}
		if !strings.Contains(string(content), hookMarker) {
			t.Errorf("hook %s missing marker", stage)
		}
		if !strings.Contains(string(content), "run --stage "+stage) {
			t.Errorf("hook %s does not invoke the right stage", stage)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode()&0o100 == 0 {
			t.Errorf("hook %s not executable: %v", stage, info.Mode())
		}
	}
}

func TestInstallRejectsVirtualStage(t *testing.T) {
	inst := NewInstaller(t.TempDir(), "hookrunner")

	if err := inst.Install([]string{"manual"}); err == nil {
		t.Error("expected error for a stage git never invokes")
	}
}

func TestInstallBacksUpForeignHook(t *testing.T) {
	gitDir := t.TempDir()
	hookPath := filepath.Join(gitDir, "hooks", "pre-commit")
	foreign := []byte("#!/bin/sh\necho preexisting\n")
	if err := os.MkdirAll(filepath.Dir(hookPath), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(hookPath, foreign, 0o755); err != nil {
		t.Fatal(err)
	}

	inst := NewInstaller(gitDir, "hookrunner")
	if err := inst.Install([]string{"pre-commit"}); err != nil {
		t.Fatalf("Install: %v", err)
	}

	backup, err := os.ReadFile(hookPath + backupSuffix)
	if err != nil {
		t.Fatalf("backup not written: %v", err)
	}
	if string(backup) != string(foreign) {
		t.Errorf("backup = %q, want original foreign hook", backup)
	}
	if !inst.isOurs(hookPath) {
		t.Error("hook should have been replaced with ours")
	}

	// Reinstalling over our own hook must not clobber the backup.
	if err := inst.Install([]string{"pre-commit"}); err != nil {
		t.Fatalf("reinstall: %v", err)
	}
	backup2, err := os.ReadFile(hookPath + backupSuffix)
	if err != nil {
		t.Fatal(err)
	}
	if string(backup2) != string(foreign) {
		t.Errorf("backup changed on reinstall: %q", backup2)
	}
}

func TestUninstallRestoresBackup(t *testing.T) {
	gitDir := t.TempDir()
	hookPath := filepath.Join(gitDir, "hooks", "pre-commit")
	foreign := []byte("#!/bin/sh\necho preexisting\n")
	if err := os.MkdirAll(filepath.Dir(hookPath), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(hookPath, foreign, 0o755); err != nil {
		t.Fatal(err)
	}

	inst := NewInstaller(gitDir, "hookrunner")
	if err := inst.Install([]string{"pre-commit"}); err != nil {
		t.Fatalf("Install: %v", err)
	}
	if err := inst.Uninstall([]string{"pre-commit"}); err != nil {
		t.Fatalf("Uninstall: %v", err)
	}

	restored, err := os.ReadFile(hookPath)
	if err != nil {
		t.Fatalf("hook should have been restored: %v", err)
	}
	if string(restored) != string(foreign) {
		t.Errorf("restored = %q, want original foreign hook", restored)
	}
	if _, err := os.Stat(hookPath + backupSuffix); err == nil {
		t.Error("backup should be gone after restore")
	}
}

func TestUninstallRemovesOurs(t *testing.T) {
	gitDir := t.TempDir()
	inst := NewInstaller(gitDir, "hookrunner")

	if err := inst.Install([]string{"pre-push"}); err != nil {
		t.Fatalf("Install: %v", err)
	}
	if err := inst.Uninstall([]string{"pre-push"}); err != nil {
		t.Fatalf("Uninstall: %v", err)
	}

	if _, err := os.Stat(filepath.Join(gitDir, "hooks", "pre-push")); err == nil {
		t.Error("hook should have been removed")
	}
}

func TestUninstallLeavesForeignHook(t *testing.T) {
	gitDir := t.TempDir()
	hookPath := filepath.Join(gitDir, "hooks", "pre-commit")
	foreign := []byte("#!/bin/sh\necho mine\n")
	if err := os.MkdirAll(filepath.Dir(hookPath), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(hookPath, foreign, 0o755); err != nil {
		t.Fatal(err)
	}

	inst := NewInstaller(gitDir, "hookrunner")
	if err := inst.Uninstall([]string{"pre-commit"}); err != nil {
		t.Fatalf("Uninstall: %v", err)
	}

	content, err := os.ReadFile(hookPath)
	if err != nil {
		t.Fatalf("foreign hook should be untouched: %v", err)
	}
	if string(content) != string(foreign) {
		t.Errorf("foreign hook modified: %q", content)
	}
}
