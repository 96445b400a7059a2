package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile_WithDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.yml")
	content := `
ingredients:
  custom:
    - name: masa harina
      grams_per_cup: 114
`
	if err := os.WriteFile(cfgFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c := New()
	if err := c.LoadFromFile(cfgFile); err != nil {
		t.Fatal(err)
	}

	// Check defaults are applied
	if c.Log.Level != "info" {
		t.Errorf("expected log.level=info, got %q", c.Log.Level)
	}
	if c.Log.Format != "text" {
		t.Errorf("expected log.format=text, got %q", c.Log.Format)
	}
	if c.Hooks.File != ".hookrunner.yaml" {
		t.Errorf("expected hooks.file=.hookrunner.yaml, got %q", c.Hooks.File)
	}
	if c.Hooks.CacheDir != "~/.cache/hookrunner/repos" {
		t.Errorf("expected default hooks.cache_dir, got %q", c.Hooks.CacheDir)
	}
	if c.Hooks.Color != "auto" {
		t.Errorf("expected hooks.color=auto, got %q", c.Hooks.Color)
	}
	if c.Hooks.MaxBatch != "128kb" {
		t.Errorf("expected hooks.max_batch=128kb, got %q", c.Hooks.MaxBatch)
	}
	if len(c.Ingredients.Custom) != 1 || c.Ingredients.Custom[0].Name != "masa harina" {
		t.Errorf("expected one custom ingredient, got %+v", c.Ingredients.Custom)
	}
}

func TestLoadFromFile_OverrideDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.yml")
	content := `
log:
  level: debug
  format: json
hooks:
  file: .hooks.yml
  cache_dir: /tmp/hookrunner-cache
  color: never
  max_batch: 64kb
ingredients:
  custom:
    - name: masa harina
      grams_per_cup: 114
      aliases: [masa]
    - name: all-purpose flour
      grams_per_cup: 125
`
	if err := os.WriteFile(cfgFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c := New()
	if err := c.LoadFromFile(cfgFile); err != nil {
		t.Fatal(err)
	}

	if c.Log.Level != "debug" {
		t.Errorf("expected log.level=debug, got %q", c.Log.Level)
	}
	if c.Log.Format != "json" {
		t.Errorf("expected log.format=json, got %q", c.Log.Format)
	}
	if c.Hooks.File != ".hooks.yml" {
		t.Errorf("expected hooks.file override, got %q", c.Hooks.File)
	}
	if c.Hooks.CacheDir != "/tmp/hookrunner-cache" {
		t.Errorf("expected hooks.cache_dir override, got %q", c.Hooks.CacheDir)
	}
	if c.Hooks.Color != "never" {
		t.Errorf("expected hooks.color=never, got %q", c.Hooks.Color)
	}
	if c.Hooks.MaxBatch != "64kb" {
		t.Errorf("expected hooks.max_batch=64kb, got %q", c.Hooks.MaxBatch)
	}
	if len(c.Ingredients.Custom) != 2 {
		t.Errorf("expected two custom ingredients, got %+v", c.Ingredients.Custom)
	}
	if c.Ingredients.Custom[0].Aliases[0] != "masa" {
		t.Errorf("expected alias masa, got %+v", c.Ingredients.Custom[0].Aliases)
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	c := New()
	if err := c.LoadFromFile(filepath.Join(t.TempDir(), "no-such.yml")); err != nil {
		t.Fatalf("missing config file should fall back to defaults: %v", err)
	}
	if c.Hooks.File != ".hookrunner.yaml" {
		t.Errorf("expected defaults after missing file, got hooks.file=%q", c.Hooks.File)
	}
}

func TestValidate_ExpandsCacheDir(t *testing.T) {
	h := &Hooks{File: ".hookrunner.yaml", CacheDir: "~/.cache/hookrunner/repos", Color: "auto"}
	if err := h.Validate(); err != nil {
		t.Fatal(err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	want := filepath.Join(home, ".cache", "hookrunner", "repos")
	if h.CacheDir != want {
		t.Errorf("CacheDir = %q, want %q", h.CacheDir, want)
	}
}

func TestValidate_Color(t *testing.T) {
	for _, color := range []string{"auto", "always", "never"} {
		h := &Hooks{File: "x", CacheDir: "/tmp/cache", Color: color}
		if err := h.Validate(); err != nil {
			t.Errorf("color %q should be accepted: %v", color, err)
		}
	}

	h := &Hooks{File: "x", CacheDir: "/tmp/cache", Color: "sometimes"}
	if err := h.Validate(); err == nil {
		t.Error("expected validation error for hooks.color=sometimes")
	}
}

func TestValidate_MaxBatch(t *testing.T) {
	h := &Hooks{File: "x", CacheDir: "/tmp/cache", Color: "auto", MaxBatch: "64kb"}
	if err := h.Validate(); err != nil {
		t.Fatal(err)
	}
	if h.MaxBatchBytes != 64*1024 {
		t.Errorf("MaxBatchBytes = %d, want %d", h.MaxBatchBytes, 64*1024)
	}

	h = &Hooks{File: "x", CacheDir: "/tmp/cache", Color: "auto", MaxBatch: "12zz"}
	if err := h.Validate(); err == nil {
		t.Error("expected validation error for hooks.max_batch=12zz")
	}
}

func TestValidate_Ingredients(t *testing.T) {
	i := &Ingredients{Custom: []IngredientEntry{{Name: "", GramsPerCup: 100}}}
	if err := i.Validate(); err == nil {
		t.Error("expected validation error for unnamed ingredient")
	}

	i = &Ingredients{Custom: []IngredientEntry{{Name: "lead shot", GramsPerCup: -1}}}
	if err := i.Validate(); err == nil {
		t.Error("expected validation error for non-positive density")
	}

	i = &Ingredients{Custom: []IngredientEntry{{Name: "masa harina", GramsPerCup: 114}}}
	if err := i.Validate(); err != nil {
		t.Errorf("valid entry rejected: %v", err)
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	c := &Config{
		Log:   Log{Level: "loud", Format: "text"},
		Hooks: Hooks{File: "x", CacheDir: "/tmp/cache", Color: "auto"},
	}
	if err := c.Validate(); err == nil {
		t.Error("expected validation error for log.level=loud")
	}
}

func TestEnsureCacheDir(t *testing.T) {
	h := &Hooks{CacheDir: filepath.Join(t.TempDir(), "repos")}
	if err := h.EnsureCacheDir(); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(h.CacheDir)
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsDir() {
		t.Error("cache dir should have been created")
	}
}

func TestEnsureCacheDir_NotWritable(t *testing.T) {
	f := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(f, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	h := &Hooks{CacheDir: f}
	if err := h.EnsureCacheDir(); err == nil {
		t.Error("expected error when cache dir path is a file")
	}
}
