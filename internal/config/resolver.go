package config

import (
	"os"
	"strconv"

	"github.com/seedctl/seedctl/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a configuration value with its source.
type ResolvedValue struct {
	Key    string
	Value  string
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveOptions contains the candidate values of one setting.
type ResolveOptions struct {
	// Key is the config key.
	Key string
	// FlagValue is the flag value (empty if not set).
	FlagValue string
	// EnvVar is the environment variable of the setting.
	EnvVar string
	// ConfigValue is the config file value (empty if not set).
	ConfigValue string
	// Default is the built-in default.
	Default string
}

// Resolve resolves a setting using precedence:
// (1) flag, (2) environment variable, (3) config file, (4) default.
func Resolve(opts ResolveOptions) ResolvedValue {
	result := ResolvedValue{
		Key:      opts.Key,
		Shadowed: make(map[ConfigSource]string),
	}

	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, opts.FlagValue},
		{SourceEnv, os.Getenv(opts.EnvVar)},
		{SourceConfig, opts.ConfigValue},
		{SourceDefault, opts.Default},
	}
	if opts.EnvVar == "" {
		candidates[1].value = ""
	}

	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		result.Shadowed[c.source] = c.value
	}

	return result
}

// ResolveIndentation resolves the indentation width. A zero flag means unset.
func ResolveIndentation(flagValue int, cfg *Config) ResolvedValue {
	opts := ResolveOptions{
		Key:     "indentation",
		EnvVar:  EnvIndentation,
		Default: strconv.Itoa(DefaultIndentation),
	}
	if flagValue > 0 {
		opts.FlagValue = strconv.Itoa(flagValue)
	}
	if cfg != nil && cfg.Indentation > 0 {
		opts.ConfigValue = strconv.Itoa(cfg.Indentation)
	}
	return Resolve(opts)
}

// ResolveProject resolves the project folder.
func ResolveProject(flagValue string, cfg *Config) ResolvedValue {
	opts := ResolveOptions{
		Key:       "project",
		FlagValue: flagValue,
		EnvVar:    EnvProject,
		Default:   DefaultProject,
	}
	if cfg != nil {
		opts.ConfigValue = cfg.Project
	}
	return Resolve(opts)
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) SEED_CONFIG env, (3) ~/.seedctl/config.yaml default
func ResolveConfigPath(flagValue string) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}

	return Resolve(ResolveOptions{
		Key:       "config",
		FlagValue: flagValue,
		EnvVar:    EnvConfig,
		Default:   paths.ConfigFile,
	}), nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
