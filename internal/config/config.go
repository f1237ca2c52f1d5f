// Package config provides configuration loading and management.
package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Defaults of configuration values.
const (
	DefaultIndentation = 2
	DefaultProject     = "."
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the seedctl configuration.
// Loaded from ~/.seedctl/config.yaml.
type Config struct {
	// Indentation is the number of spaces of one indentation level in
	// generated build script fragments.
	// Env: SEED_INDENTATION, Default: 2
	Indentation int `mapstructure:"indentation" yaml:"indentation"`

	// Project is the default project folder commands apply to.
	// Env: SEED_PROJECT, Default: "."
	Project string `mapstructure:"project" yaml:"project"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `seedctl config init` to generate the initial config file.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		Indentation: DefaultIndentation,
		Project:     DefaultProject,
		Log:         LogConfig{Timestamps: &timestamps},
	}
}

// WithDefaults returns a copy of c with unset values defaulted.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.Indentation == 0 {
		out.Indentation = DefaultIndentation
	}
	if out.Project == "" {
		out.Project = DefaultProject
	}
	return &out
}

// Marshal renders c as a YAML config file.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("# seedctl configuration\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return buf.Bytes(), nil
}
