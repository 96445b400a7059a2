package git

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/pantryworks/recipe-converter/internal/constants"
)

// hookMarker identifies scripts we wrote; anything else in the way is a
// foreign hook and gets backed up rather than overwritten.
const hookMarker = "hookrunner git hook"

// backupSuffix is appended to a foreign hook before it is replaced.
const backupSuffix = ".pre-hookrunner"

const hookScriptTemplate = `#!/bin/sh
# {{.Marker}} - {{.Stage}}
# Auto-generated, do not edit directly

HOOKRUNNER_BIN="{{.Binary}}"

if ! command -v "$HOOKRUNNER_BIN" >/dev/null 2>&1; then
    echo "hookrunner not found. Skipping {{.Stage}} hook."
    exit 0
fi

exec "$HOOKRUNNER_BIN" run --stage {{.Stage}} "$@"
`

// Installer manages hookrunner scripts under .git/hooks.
type Installer struct {
	binary   string
	hooksDir string
}

// NewInstaller returns an installer writing scripts that invoke binary
// (looked up on PATH) into gitDir/hooks.
func NewInstaller(gitDir, binary string) *Installer {
	if binary == "" {
		binary = "hookrunner"
	}
	return &Installer{
		binary:   binary,
		hooksDir: filepath.Join(gitDir, "hooks"),
	}
}

// Install writes a hook script for every stage. Stages must be git-backed;
// the virtual manual stage has nothing to install.
func (m *Installer) Install(stages []string) error {
	if err := os.MkdirAll(m.hooksDir, 0o755); err != nil {
		return fmt.Errorf("create hooks directory: %w", err)
	}
	for _, stage := range stages {
		if !constants.IsGitHookStage(stage) {
			return fmt.Errorf("stage %q has no git hook", stage)
		}
		if err := m.installHook(stage); err != nil {
			return fmt.Errorf("install %s hook: %w", stage, err)
		}
		logger().Info("installed git hook", "stage", stage)
	}
	return nil
}

// Uninstall removes our scripts for the stages and restores any hooks that
// were backed up when they were installed. Foreign hooks are left alone.
func (m *Installer) Uninstall(stages []string) error {
	for _, stage := range stages {
		hookPath := filepath.Join(m.hooksDir, stage)

		if m.isOurs(hookPath) {
			if err := os.Remove(hookPath); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("remove %s hook: %w", stage, err)
			}
			logger().Info("removed git hook", "stage", stage)
		}

		backupPath := hookPath + backupSuffix
		if _, err := os.Stat(backupPath); err == nil {
			if err := os.Rename(backupPath, hookPath); err != nil {
				return fmt.Errorf("restore %s hook backup: %w", stage, err)
			}
			logger().Info("restored previous git hook", "stage", stage)
		}
	}
	return nil
}

// installHook writes one hook script, backing up a foreign hook first.
func (m *Installer) installHook(stage string) error {
	hookPath := filepath.Join(m.hooksDir, stage)

	if _, err := os.Stat(hookPath); err == nil {
		if !m.isOurs(hookPath) {
			backupPath := hookPath + backupSuffix
			if err := os.Rename(hookPath, backupPath); err != nil {
				return fmt.Errorf("backup existing hook: %w", err)
			}
			logger().Warn("backed up existing hook", "stage", stage, "backup", backupPath)
		}
	}

	tmpl, err := template.New(stage).Parse(hookScriptTemplate)
	if err != nil {
		return fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	data := struct {
		Marker string
		Stage  string
		Binary string
	}{
		Marker: hookMarker,
		Stage:  stage,
		Binary: m.binary,
	}
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}

	// Hook scripts must be executable.
	if err := os.WriteFile(hookPath, buf.Bytes(), 0o755); err != nil {
		return fmt.Errorf("write hook file: %w", err)
	}
	return nil
}

// isOurs checks whether a hook file carries our marker.
func (m *Installer) isOurs(hookPath string) bool {
	content, err := os.ReadFile(hookPath)
	if err != nil {
		return false
	}
	return bytes.Contains(content, []byte(hookMarker))
}
