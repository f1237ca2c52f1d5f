package templates

import (
	"fmt"
	"regexp"
	"unicode"

	oerrors "github.com/seedctl/seedctl/internal/errors"
)

// groupRegex matches a dotted Maven group of lowercase Java identifiers.
var groupRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*)*$`)

// ValidateProjectName checks if a project name is valid.
// Project names allow letters, digits, hyphens, dots and underscores.
func ValidateProjectName(name string) error {
	if name == "" {
		return oerrors.NewValidationError("project name cannot be empty", "", "name", "")
	}

	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' && r != '.' {
			return oerrors.NewValidationError(
				fmt.Sprintf("invalid project name %q: contains invalid character %q", name, r), "", "name", "")
		}
	}

	if !unicode.IsLetter(rune(name[0])) {
		return oerrors.NewValidationError(
			fmt.Sprintf("invalid project name %q: must start with a letter", name), "", "name", "")
	}

	return nil
}

// ValidateGroup checks if a project group is a valid Maven group.
func ValidateGroup(group string) error {
	if !groupRegex.MatchString(group) {
		return oerrors.NewValidationError(
			fmt.Sprintf("invalid project group %q", group), "", "group",
			"Use lowercase dotted identifiers such as com.example.")
	}
	return nil
}
