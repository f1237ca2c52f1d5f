package gradle

import (
	"fmt"

	oerrors "github.com/seedctl/seedctl/internal/errors"
	"github.com/seedctl/seedctl/internal/javabuild"
	"github.com/seedctl/seedctl/internal/projectfiles"
	"github.com/seedctl/seedctl/internal/replacement"
)

func (h *CommandHandler) patchFile(cmd javabuild.PatchFile) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}
	path, err := projectfiles.NewFilePath(cmd.Path)
	if err != nil {
		return false, err
	}

	replacers := make([]replacement.FileReplacer, 0, len(cmd.Patches))
	for _, patch := range cmd.Patches {
		content, err := contentReplacer(patch)
		if err != nil {
			return false, err
		}
		if cmd.Optional {
			replacers = append(replacers, replacement.OptionalFile(path, content))
		} else {
			replacers = append(replacers, replacement.MandatoryFile(path, content))
		}
	}

	written, err := h.replacer.Apply(replacers...)
	return len(written) > 0, err
}

// contentReplacer maps a patch to its replacement primitive and policy.
func contentReplacer(patch javabuild.FilePatch) (replacement.ContentReplacer, error) {
	condition := replacement.Always()
	if patch.Once {
		condition = replacement.NotContainingReplacement()
	}
	mode := replacement.First
	if patch.All {
		mode = replacement.All
	}

	var element replacement.ElementReplacer
	switch patch.Position {
	case javabuild.PatchBefore, javabuild.PatchAfter, javabuild.PatchReplace:
		if patch.Pattern != "" {
			re, err := patch.Regexp()
			if err != nil {
				return nil, oerrors.NewValidationError(err.Error(), "", "regex", "")
			}
			switch patch.Position {
			case javabuild.PatchBefore:
				element = replacement.NewRegexNeedleBefore(condition, re)
			case javabuild.PatchAfter:
				element = replacement.NewRegexNeedleAfter(condition, re)
			default:
				element = replacement.NewRegexReplacer(condition, re, mode)
			}
			break
		}
		switch patch.Position {
		case javabuild.PatchBefore:
			element = replacement.NewTextNeedleBefore(condition, patch.Needle)
		case javabuild.PatchAfter:
			element = replacement.NewTextNeedleAfter(condition, patch.Needle)
		default:
			element = replacement.NewTextReplacer(condition, patch.Needle, mode)
		}
	case javabuild.PatchEndOfFile:
		element = replacement.NewEndOfFile(condition)
	case javabuild.PatchFileStart:
		element = replacement.NewFileStart(condition)
	default:
		return nil, fmt.Errorf("unknown patch position %q: %w", patch.Position, oerrors.ErrValidation)
	}

	if patch.Required {
		return replacement.Mandatory(element, patch.Text), nil
	}
	return replacement.Optional(element, patch.Text), nil
}
