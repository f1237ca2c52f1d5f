// Package errors provides sentinel errors and structured error types for seedctl.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates an invalid command, manifest or configuration value.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a project, file or build script was not found.
	ErrNotFound = errors.New("not found")

	// ErrNeedleNotFound indicates a mandatory insertion point is missing from a file.
	ErrNeedleNotFound = errors.New("needle not found")

	// ErrAmbiguousNeedle indicates a needle matched more than one line.
	ErrAmbiguousNeedle = errors.New("ambiguous needle")

	// ErrUnsupportedCommand indicates the build tool has no equivalent for a command.
	ErrUnsupportedCommand = errors.New("unsupported command")

	// ErrCatalog indicates the versions catalog could not be read or written.
	ErrCatalog = errors.New("catalog error")

	// ErrFileSystem indicates a project file could not be read, written or copied.
	ErrFileSystem = errors.New("file system error")
)

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates an invalid manifest, flag or config value.
	ExitValidationError = 2

	// ExitNotFound indicates a project or file was not found.
	ExitNotFound = 5

	// ExitNeedleNotFound indicates a mandatory needle was missing.
	ExitNeedleNotFound = 7

	// ExitUnsupportedCommand indicates a command the build tool cannot express.
	ExitUnsupportedCommand = 8
)

// DetailError captures structured error information.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path (optional).
	Location string

	// Field is the offending field name (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}

	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.Context[k])
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// ExitError wraps an error with a process exit code.
type ExitError struct {
	// Code is the process exit code.
	Code int

	// Err is the underlying error.
	Err error

	// Printed reports whether the command layer already printed the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewUnsupportedError creates an unsupported command error for a build tool.
func NewUnsupportedError(command, buildTool, reason string) error {
	return &DetailError{
		Type:    "unsupported command",
		Message: reason,
		Context: map[string]string{
			"Command":    command,
			"Build tool": buildTool,
		},
		Cause: ErrUnsupportedCommand,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// ExitCodeFromError determines the exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrNeedleNotFound):
		return ExitNeedleNotFound
	case errors.Is(err, ErrUnsupportedCommand):
		return ExitUnsupportedCommand
	default:
		return ExitGeneralError
	}
}
