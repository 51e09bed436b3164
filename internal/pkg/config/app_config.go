package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppConfig is the root of the YAML configuration file
type AppConfig struct {
	Logger   LoggerSettings   `yaml:"logger"`
	Dispatch DispatchSettings `yaml:"dispatch"`
}

// Validate checks every section
func (c *AppConfig) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return c.Dispatch.Validate()
}

// LoadAppConfig reads and decodes the configuration file at path without validating it, so callers
// can apply overrides first. Unknown keys are rejected.
func LoadAppConfig(path string) (*AppConfig, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg AppConfig
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}
	return &cfg, nil
}

// InitializeAppConfig reads, decodes and validates the configuration file at path.
func InitializeAppConfig(path string) (*AppConfig, error) {
	cfg, err := LoadAppConfig(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}
