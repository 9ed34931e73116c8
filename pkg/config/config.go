package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the optional on-disk configuration. The API key deliberately has
// no place here; it is supplied per invocation and never persisted.
type Config struct {
	EnvironmentID string `yaml:"environment_id"`
	PageSize      int    `yaml:"page_size"`
	DebounceMs    int    `yaml:"debounce_ms"`
	ExportDir     string `yaml:"export_dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		PageSize:   10,
		DebounceMs: 300,
		ExportDir:  ".",
	}
}

// DefaultPath is the config file looked up when no --config flag is given.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".kontaudit.yaml")
}

// LoadFromFile reads a YAML configuration file, applies defaults for unset
// fields and validates the result.
func LoadFromFile(filename string) (Config, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Config{}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault loads the given path, falling back to defaults when the
// default config file simply does not exist. An explicit path must exist.
func LoadOrDefault(path string, explicit bool) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return Config{}, fmt.Errorf("config file %s does not exist", path)
		}
		return Default(), nil
	}
	return LoadFromFile(path)
}

// ApplyDefaults fills unset fields with the built-in values.
func (c *Config) ApplyDefaults() {
	def := Default()
	if c.PageSize == 0 {
		c.PageSize = def.PageSize
	}
	if c.DebounceMs == 0 {
		c.DebounceMs = def.DebounceMs
	}
	if c.ExportDir == "" {
		c.ExportDir = def.ExportDir
	}
}

// Validate rejects values the UI cannot work with.
func (c *Config) Validate() error {
	if c.PageSize < 1 {
		return fmt.Errorf("page_size must be at least 1, got %d", c.PageSize)
	}
	if c.DebounceMs < 0 {
		return fmt.Errorf("debounce_ms must not be negative, got %d", c.DebounceMs)
	}
	return nil
}
