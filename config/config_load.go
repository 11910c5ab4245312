package config

import (
	"fmt"
	"log/slog"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Load reads a TOML configuration file, layered over the defaults, and
// validates the result. An empty path returns the validated defaults.
func Load(path string, logger *slog.Logger) (*Config, error) {
	cfg := NewDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Error("failed to read config file", "path", path, "error", err)
			return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, cfg); err != nil {
			logger.Error("failed to unmarshal TOML config", "path", path, "error", err)
			return nil, fmt.Errorf("config: failed to unmarshal TOML: %w", err)
		}
		logger.Info("loaded configuration file", "path", path)
	}

	if err := Validate(cfg); err != nil {
		logger.Error("configuration validation failed", "error", err)
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}
