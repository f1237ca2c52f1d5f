package config

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// Indentation bounds.
const (
	minIndentation = 1
	maxIndentation = 8
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validate validates the given configuration.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	if cfg.Indentation != 0 && (cfg.Indentation < minIndentation || cfg.Indentation > maxIndentation) {
		errs = append(errs, ValidationError{
			Field:   "indentation",
			Message: fmt.Sprintf("must be between %d and %d", minIndentation, maxIndentation),
		})
	}

	if cfg.Project != "" && strings.TrimSpace(cfg.Project) == "" {
		errs = append(errs, ValidationError{
			Field:   "project",
			Message: "must not be empty or whitespace only",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ValidateFile validates a configuration file at the given path.
func ValidateFile(fsys afero.Fs, path string) error {
	cfg, err := NewLoader(fsys).Load(path)
	if err != nil {
		return fmt.Errorf("loading config file: %w", err)
	}

	return Validate(cfg)
}
