// Package config provides configuration loading and validation for hebdate.
package config

import "time"

// Config is the root configuration structure loaded from YAML.
type Config struct {
	Service ServiceConfig `yaml:"service"`
	UI      UIConfig      `yaml:"ui,omitempty"`
}

// ServiceConfig points at the converter service.
type ServiceConfig struct {
	// BaseURL is the converter service root, scheme and host included.
	BaseURL string `yaml:"base_url"`

	// Timeout bounds a single conversion request.
	Timeout time.Duration `yaml:"timeout"`
}

// UIConfig shapes the launcher-facing surface.
type UIConfig struct {
	// Trigger is the keyword prefix a launcher uses to route queries here.
	Trigger string `yaml:"trigger"`

	// Icon is the path result items carry. When empty, a logo.svg next to
	// the executable is used if present.
	Icon string `yaml:"icon,omitempty"`
}
