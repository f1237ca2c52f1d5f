package javabuild

import (
	"fmt"
	"regexp"
	"strings"

	oerrors "github.com/seedctl/seedctl/internal/errors"
)

// PatchPosition says where the text of a FilePatch goes.
type PatchPosition string

const (
	// PatchBefore inserts the text on its own line before the needle line.
	PatchBefore PatchPosition = "before"
	// PatchAfter inserts the text on its own line after the needle line.
	PatchAfter PatchPosition = "after"
	// PatchReplace rewrites the needle with the text.
	PatchReplace PatchPosition = "replace"
	// PatchEndOfFile appends the text as the last line.
	PatchEndOfFile PatchPosition = "end-of-file"
	// PatchFileStart prepends the text as the first line.
	PatchFileStart PatchPosition = "file-start"
)

// FilePatch is one text replacement in a project file. Needle is a literal
// text and Pattern a regular expression compiled in multi-line mode; the
// needle positions take exactly one of them.
type FilePatch struct {
	Position PatchPosition
	Needle   string
	Pattern  string
	Text     string

	// All rewrites every match of a replace patch instead of the first.
	All bool

	// Required fails the patch when its needle is missing.
	Required bool

	// Once skips the patch when the text is already in the file.
	Once bool
}

// PatchFile patches any project file, such as a properties file or a source
// file, with ordered text replacements.
type PatchFile struct {
	Path    string
	Patches []FilePatch

	// Optional skips the command when the file does not exist.
	Optional bool
}

func (PatchFile) Kind() string { return "PatchFile" }
func (PatchFile) isCommand()   {}

// Validate checks the path and every patch.
func (c PatchFile) Validate() error {
	if strings.TrimSpace(c.Path) == "" {
		return oerrors.NewValidationError("patched file path is required", "", "path", "")
	}
	if len(c.Patches) == 0 {
		return oerrors.NewValidationError(
			fmt.Sprintf("no replacements for %s", c.Path), "", "replacements", "")
	}
	for i, patch := range c.Patches {
		if err := patch.Validate(); err != nil {
			return fmt.Errorf("replacements[%d]: %w", i, err)
		}
	}
	return nil
}

// Validate checks that the position and its needle agree.
func (p FilePatch) Validate() error {
	switch p.Position {
	case PatchBefore, PatchAfter, PatchReplace:
		if (p.Needle == "") == (p.Pattern == "") {
			return oerrors.NewValidationError(
				fmt.Sprintf("%s patch needs either a needle or a regex", p.Position), "", "needle", "")
		}
		if p.Pattern != "" {
			if _, err := p.Regexp(); err != nil {
				return oerrors.NewValidationError(
					fmt.Sprintf("invalid regex %q: %v", p.Pattern, err), "", "regex", "")
			}
		}
	case PatchEndOfFile, PatchFileStart:
		if p.Needle != "" || p.Pattern != "" {
			return oerrors.NewValidationError(
				fmt.Sprintf("%s patch takes no needle", p.Position), "", "needle", "")
		}
	default:
		return oerrors.NewValidationError(
			fmt.Sprintf("unknown patch position %q", p.Position), "", "position",
			"Use one of before, after, replace, end-of-file, file-start.")
	}
	return nil
}

// Regexp compiles Pattern in multi-line mode.
func (p FilePatch) Regexp() (*regexp.Regexp, error) {
	return regexp.Compile("(?m)" + p.Pattern)
}
