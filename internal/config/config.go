// Package config loads the weekplanner CLI configuration from a YAML file,
// creating the file with defaults on first run.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	// Strategy selects the slot-finding search: "anytime" or "workhours".
	Strategy string `yaml:"strategy"`

	// Schedules lists XML schedule files loaded at startup.
	Schedules []string `yaml:"schedules"`

	// ExportDir is where saved schedules and ICS exports are written.
	ExportDir string `yaml:"export_dir"`

	// SearchTimeout caps one slot search, as a Go duration string
	// (e.g. "5s"). Empty means no deadline.
	SearchTimeout string `yaml:"search_timeout"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file exists yet.
func Default() Config {
	return Config{
		Strategy:  "anytime",
		ExportDir: ".",
		LogLevel:  "info",
	}
}

// Load reads the configuration at path. A missing file is created with the
// defaults (0600, like the rest of the user's planner data) and the defaults
// are returned.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := Default()
		if err := Save(path, cfg); err != nil {
			return Config{}, err
		}
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories as
// needed.
func Save(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
