package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Hooks configures the hookrunner binary: where the hook document lives,
// where pinned source clones are cached, and how status lines are rendered.
type Hooks struct {
	// File is the hook document path, relative to the repository root.
	File string `koanf:"file"`
	// CacheDir holds one clone per pinned (url, rev) pair. A leading ~
	// expands to the user's home directory.
	CacheDir string `koanf:"cache_dir"`
	// Color controls status output - one of "auto", "always", "never".
	Color string `koanf:"color"`
	// MaxBatch caps the bytes of filenames handed to a single hook
	// invocation; longer file lists are split across invocations.
	MaxBatch string `koanf:"max_batch"`
	// Parsed
	MaxBatchBytes int64 `koanf:"-"`
}

func (h *Hooks) Validate() error {
	if h.File == "" {
		return fmt.Errorf("hooks.file is required")
	}

	if h.CacheDir == "" {
		return fmt.Errorf("hooks.cache_dir is required")
	}
	expanded, err := expandHome(h.CacheDir)
	if err != nil {
		return fmt.Errorf("hooks.cache_dir: %w", err)
	}
	h.CacheDir = expanded

	switch h.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("hooks.color must be one of auto, always, never - got: %s", h.Color)
	}

	if h.MaxBatch != "" {
		bytes, err := ParseSize(h.MaxBatch)
		if err != nil {
			return fmt.Errorf("hooks.max_batch: %w", err)
		}
		if bytes < 1 {
			return fmt.Errorf("hooks.max_batch must be > 0")
		}
		h.MaxBatchBytes = bytes
	}

	return nil
}

// EnsureCacheDir creates the clone cache and verifies it is writable. Called
// before materializing remote sources, not at config load, so commands that
// never touch the cache do not create it.
func (h *Hooks) EnsureCacheDir() error {
	if err := os.MkdirAll(h.CacheDir, 0o755); err != nil {
		return fmt.Errorf("hooks.cache_dir: %w", err)
	}
	probe := filepath.Join(h.CacheDir, ".hookrunner-probe")
	if err := os.WriteFile(probe, nil, 0644); err != nil {
		return fmt.Errorf("hooks.cache_dir: not writable: %w", err)
	}
	os.Remove(probe)
	return nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
