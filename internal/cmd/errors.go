package cmd

import (
	"fmt"

	"github.com/seedctl/seedctl/internal/cmdutil"
	"github.com/seedctl/seedctl/internal/config"
	oerrors "github.com/seedctl/seedctl/internal/errors"
)

// exitError wraps err with the exit code matching its sentinel.
func exitError(err error) error {
	return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err}
}

// printedExitError prints err and wraps it so main does not print it again.
func printedExitError(msg string, err error) error {
	cmdutil.PrintApplyError(msg, err)
	return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err, Printed: true}
}

func invalidIndentation(value config.ResolvedValue) error {
	return &oerrors.ExitError{
		Code: oerrors.ExitValidationError,
		Err: &oerrors.DetailError{
			Type:    "validation failed",
			Message: fmt.Sprintf("invalid indentation %q", value.Value),
			Field:   "indentation",
			Context: map[string]string{"Source": string(value.Source)},
			Hint:    "Use a width between 1 and 8 spaces.",
			Cause:   oerrors.ErrValidation,
		},
	}
}
