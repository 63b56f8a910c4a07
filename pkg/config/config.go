package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
// Keys missing from the file keep their defaults.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if cfg.LogFile == "" {
		return errors.New("log_file: a log file is required")
	}

	if cfg.ExportFile == "" {
		return errors.New("export_file: an export path is required")
	}

	if cfg.FailedLoginThreshold < 0 {
		return fmt.Errorf("failed_login_threshold: must be >= 0, got %d", cfg.FailedLoginThreshold)
	}

	if err := validateStatus(cfg.FailureStatus); err != nil {
		return fmt.Errorf("failure_status: %w", err)
	}

	if cfg.FailureMarker == "" {
		return errors.New("failure_marker: must not be empty")
	}

	return nil
}

func validateStatus(status string) error {
	if len(status) != 3 {
		return fmt.Errorf("%q is not a 3-digit status code", status)
	}
	for _, c := range status {
		if c < '0' || c > '9' {
			return fmt.Errorf("%q is not a 3-digit status code", status)
		}
	}
	return nil
}
