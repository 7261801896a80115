package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file looked up when no path is given.
const DefaultConfigFile = "mpusweep.yaml"

// Load resolves and loads the configuration.
//
// An explicit path must exist. With an empty path, mpusweep.yaml in the
// current directory is used when present; otherwise defaults apply.
func Load(path string) (*Config, error) {
	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err != nil {
			return Default(), nil
		}
		path = DefaultConfigFile
	}
	return LoadFile(path)
}

// LoadFile reads and parses the configuration from a YAML file.
func LoadFile(path string) (*Config, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	// Zero values from the file fall back to defaults
	if cfg.Days == 0 {
		cfg.Days = Default().Days
	}
	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}
