package replacement

import (
	"fmt"

	oerrors "github.com/seedctl/seedctl/internal/errors"
	"github.com/seedctl/seedctl/internal/output"
	"github.com/seedctl/seedctl/internal/projectfiles"
)

// ContentReplacer applies one replacement to the content of a file.
type ContentReplacer interface {
	Apply(file projectfiles.FilePath, content string) (string, error)
}

// NeedleNotFoundError reports a mandatory element missing from a file.
type NeedleNotFoundError struct {
	File   projectfiles.FilePath
	Needle string
}

func (e *NeedleNotFoundError) Error() string {
	return fmt.Sprintf("can't apply mandatory replacement in %s: needle %q not found", e.File, e.Needle)
}

// Unwrap returns ErrNeedleNotFound.
func (e *NeedleNotFoundError) Unwrap() error {
	return oerrors.ErrNeedleNotFound
}

// MandatoryReplacer fails when its element can't be found.
type MandatoryReplacer struct {
	Replacer ElementReplacer
	Text     string
}

// Mandatory wraps replacer so a missing element is an error.
func Mandatory(replacer ElementReplacer, text string) MandatoryReplacer {
	return MandatoryReplacer{Replacer: replacer, Text: text}
}

func (m MandatoryReplacer) Apply(file projectfiles.FilePath, content string) (string, error) {
	if !m.Replacer.Condition()(content, m.Text) {
		return content, nil
	}

	updated, matched, err := m.Replacer.Apply(content, m.Text)
	if err != nil {
		return content, fmt.Errorf("patching %s: %w", file, err)
	}
	if !matched {
		return content, &NeedleNotFoundError{File: file, Needle: m.Replacer.Element()}
	}
	return updated, nil
}

// OptionalReplacer leaves the content unchanged when its element can't be found.
type OptionalReplacer struct {
	Replacer ElementReplacer
	Text     string
}

// Optional wraps replacer so a missing element is silently skipped.
func Optional(replacer ElementReplacer, text string) OptionalReplacer {
	return OptionalReplacer{Replacer: replacer, Text: text}
}

func (o OptionalReplacer) Apply(file projectfiles.FilePath, content string) (string, error) {
	if !o.Replacer.Condition()(content, o.Text) {
		return content, nil
	}

	updated, matched, err := o.Replacer.Apply(content, o.Text)
	if err != nil {
		return content, fmt.Errorf("patching %s: %w", file, err)
	}
	if !matched {
		output.FileLogger(file.String()).Debug("optional replacement skipped", "needle", o.Replacer.Element())
		return content, nil
	}
	return updated, nil
}
