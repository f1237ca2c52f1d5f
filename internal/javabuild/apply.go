package javabuild

import (
	"fmt"

	oerrors "github.com/seedctl/seedctl/internal/errors"
	"github.com/seedctl/seedctl/internal/output"
)

// Handler applies commands to the build files of one build tool.
type Handler interface {
	// BuildTool returns the build tool handled.
	BuildTool() BuildTool

	// Handle applies a single command.
	Handle(cmd Command) (Outcome, error)
}

// Result is the outcome of one applied command.
type Result struct {
	// Index is the 1-based position of the command.
	Index   int
	Command Command
	Outcome Outcome
}

// Apply applies commands in order and stops at the first failure. An
// unsupported outcome is a failure wrapping ErrUnsupportedCommand. observe,
// when not nil, is called after each command handled without error.
func Apply(handler Handler, commands []Command, observe func(Result)) ([]Result, error) {
	results := make([]Result, 0, len(commands))

	for i, cmd := range commands {
		index := i + 1
		output.Debug("applying command", "index", index, "kind", cmd.Kind(), "subject", Subject(cmd))

		outcome, err := handler.Handle(cmd)
		if err != nil {
			return results, fmt.Errorf("command %d (%s): %w", index, cmd.Kind(), err)
		}

		result := Result{Index: index, Command: cmd, Outcome: outcome}
		if outcome.Status == StatusUnsupported {
			return results, fmt.Errorf("command %d (%s): %w", index, cmd.Kind(),
				oerrors.NewUnsupportedError(cmd.Kind(), string(handler.BuildTool()), outcome.Reason))
		}

		results = append(results, result)
		if observe != nil {
			observe(result)
		}
	}

	return results, nil
}
