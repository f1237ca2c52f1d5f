package cmdutil

import (
	"errors"
	"fmt"
	"io"

	oerrors "github.com/seedctl/seedctl/internal/errors"
	"github.com/seedctl/seedctl/internal/javabuild"
	"github.com/seedctl/seedctl/internal/output"
	"github.com/seedctl/seedctl/internal/projectfiles"
	"github.com/seedctl/seedctl/internal/replacement"
)

// PrintApplyError prints a command failure in a user-friendly format.
// A missing needle names the file and the needle. A detailed error prints
// its summary followed by the structured details.
func PrintApplyError(msg string, err error) {
	var needleErr *replacement.NeedleNotFoundError
	var detailErr *oerrors.DetailError

	switch {
	case errors.As(err, &needleErr):
		output.FileLogger(needleErr.File.String()).Error(msg, "needle", needleErr.Needle)
		output.Info("Restore the needle comment in the file or regenerate the project with 'seedctl init'.")
	case errors.As(err, &detailErr):
		output.Error(fmt.Sprintf("%s: %s", msg, detailErr.Message))
		output.Details(detailErr.Error())
	default:
		output.Error(msg, "error", err)
	}
}

// WriteResult writes the status line of an applied command.
func WriteResult(w io.Writer, result javabuild.Result) {
	fmt.Fprintln(w, output.FormatCommandLine(
		result.Command.Kind(), javabuild.Subject(result.Command), result.Outcome.String()))
}

// WriteFailure writes the status line of the command that failed.
func WriteFailure(w io.Writer, cmd javabuild.Command) {
	fmt.Fprintln(w, output.FormatCommandLine(cmd.Kind(), javabuild.Subject(cmd), output.StatusFailed))
}

// WriteChanges writes the unified diff of every file changed through files.
func WriteChanges(w io.Writer, files *projectfiles.Files, color bool) error {
	changes, err := files.Changes()
	if err != nil {
		return err
	}

	fileChanges := make([]output.FileChange, 0, len(changes))
	for _, c := range changes {
		fileChanges = append(fileChanges, output.FileChange{
			Path:   c.Path.String(),
			Before: c.Before,
			After:  c.After,
		})
	}

	text, err := output.RenderDiff(fileChanges, color)
	if err != nil {
		return fmt.Errorf("rendering diff: %w", err)
	}
	_, err = io.WriteString(w, text)
	return err
}
