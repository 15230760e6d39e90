package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// LoadDefault loads the user config from DefaultPath when that file exists
// and plain defaults when it does not. A missing default file is not an
// error; a present but broken one is.
func LoadDefault(ctx context.Context) (*Config, error) {
	if path, err := DefaultPath(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return Load(ctx, path)
		}
	}

	cfg := DefaultConfig()
	cfg.applyEnvironmentOverrides()
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// DefaultPath returns the user config location, e.g.
// ~/.config/hebdate/config.yaml on Linux.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "hebdate", "config.yaml"), nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	u, err := url.Parse(cfg.Service.BaseURL)
	if err != nil {
		return fmt.Errorf("service.base_url: invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("service.base_url: scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("service.base_url: url must have a host")
	}

	if cfg.Service.Timeout <= 0 {
		return errors.New("service.timeout: must be positive")
	}

	if cfg.UI.Trigger == "" {
		return errors.New("ui.trigger: must not be empty")
	}

	return nil
}

// ResolveIcon returns the icon path result items should carry. An explicit
// ui.icon wins; otherwise a logo.svg next to the executable is used when
// present. No icon is not an error, items simply carry none.
func (c *Config) ResolveIcon() string {
	if c.UI.Icon != "" {
		return c.UI.Icon
	}

	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	candidate := filepath.Join(filepath.Dir(exe), "logo.svg")
	if _, err := os.Stat(candidate); err != nil {
		return ""
	}
	return candidate
}
