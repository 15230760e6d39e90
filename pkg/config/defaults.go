package config

import (
	"os"
	"time"
)

// Default values for configuration.
const (
	DefaultBaseURL = "https://www.hebcal.com"
	DefaultTimeout = 5 * time.Second
	DefaultTrigger = "hebcal "
)

// Environment variable names.
const (
	EnvServiceURL = "HEBDATE_SERVICE_URL"
	EnvTimeout    = "HEBDATE_TIMEOUT"
	EnvTrigger    = "HEBDATE_TRIGGER"
	EnvIcon       = "HEBDATE_ICON"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Service: ServiceConfig{
			BaseURL: DefaultBaseURL,
			Timeout: DefaultTimeout,
		},
		UI: UIConfig{
			Trigger: DefaultTrigger,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if v := os.Getenv(EnvServiceURL); v != "" {
		c.Service.BaseURL = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Service.Timeout = d
		}
	}
	if v := os.Getenv(EnvTrigger); v != "" {
		c.UI.Trigger = v
	}
	if v := os.Getenv(EnvIcon); v != "" {
		c.UI.Icon = v
	}
}
