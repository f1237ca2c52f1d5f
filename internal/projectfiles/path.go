// Package projectfiles is the filesystem boundary of the patching engine. It
// resolves project-relative paths against a project root, reads and writes
// project files and copies template resources into the tree.
package projectfiles

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	oerrors "github.com/seedctl/seedctl/internal/errors"
)

// FilePath is a normalized, slash-separated path relative to a project root.
// It never escapes the root.
type FilePath string

// NewFilePath normalizes p and rejects absolute paths and paths leaving the root.
func NewFilePath(p string) (FilePath, error) {
	if strings.TrimSpace(p) == "" {
		return "", oerrors.NewValidationError("project file path is empty", "", "path", "")
	}
	if filepath.IsAbs(p) || strings.HasPrefix(p, "/") {
		return "", oerrors.NewValidationError(
			fmt.Sprintf("project file path %q is absolute", p), p, "path",
			"Use a path relative to the project folder.")
	}

	cleaned := path.Clean(filepath.ToSlash(p))
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", oerrors.NewValidationError(
			fmt.Sprintf("project file path %q escapes the project folder", p), p, "path", "")
	}
	return FilePath(cleaned), nil
}

// MustFilePath is NewFilePath for static paths known to be valid.
func MustFilePath(p string) FilePath {
	fp, err := NewFilePath(p)
	if err != nil {
		panic(err)
	}
	return fp
}

// String returns the slash-separated relative path.
func (p FilePath) String() string {
	return string(p)
}

// Dir returns the parent directory of the path, "." for top-level files.
func (p FilePath) Dir() string {
	return path.Dir(string(p))
}
