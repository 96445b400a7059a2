package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/pantryworks/recipe-converter/internal/constants"
)

type Config struct {
	Log         Log         `koanf:"log"`
	Hooks       Hooks       `koanf:"hooks"`
	Ingredients Ingredients `koanf:"ingredients"`
	File        string      `koanf:"-"`
}

func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yml"
	}
	return filepath.Join(home, ".config", "recipe-converter", "config.yml")
}

func New() *Config {
	return &Config{}
}

func NewFromConfigFile(path string) (*Config, error) {
	c := New()
	if err := c.LoadFromFile(path); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.Log.Configure("", false)
	return c, nil
}

func (c *Config) LoadFromFile(path string) error {
	c.File = path

	k := koanf.New(".")

	defaults := map[string]any{
		"log.level":              "info",
		"log.format":             "text",
		"log.disable_timestamps": false,
		"hooks.file":             constants.DocumentFilename,
		"hooks.cache_dir":        "~/.cache/hookrunner/repos",
		"hooks.color":            "auto",
		"hooks.max_batch":        "128kb",
	}

	for key, val := range defaults {
		if err := k.Set(key, val); err != nil {
			return fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Warn("config file not found, using defaults", "path", path)
		} else {
			return fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := k.Unmarshal("", c); err != nil {
		return fmt.Errorf("unmarshalling config: %w", err)
	}

	return nil
}

func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log config: %w", err)
	}
	if err := c.Hooks.Validate(); err != nil {
		return fmt.Errorf("hooks config: %w", err)
	}
	if err := c.Ingredients.Validate(); err != nil {
		return fmt.Errorf("ingredients config: %w", err)
	}
	return nil
}
