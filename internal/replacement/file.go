package replacement

import (
	"errors"
	"fmt"

	oerrors "github.com/seedctl/seedctl/internal/errors"
	"github.com/seedctl/seedctl/internal/output"
	"github.com/seedctl/seedctl/internal/projectfiles"
)

// Files is the part of the project file gateway used to patch files.
type Files interface {
	ReadString(p projectfiles.FilePath) (string, error)
	WriteString(p projectfiles.FilePath, content string) error
}

// FileReplacer addresses a content replacement to one project file.
type FileReplacer struct {
	Path     projectfiles.FilePath
	Replacer ContentReplacer

	// Optional skips the replacement when the file does not exist.
	Optional bool
}

// MandatoryFile creates a FileReplacer failing when the file is missing.
func MandatoryFile(path projectfiles.FilePath, replacer ContentReplacer) FileReplacer {
	return FileReplacer{Path: path, Replacer: replacer}
}

// OptionalFile creates a FileReplacer skipped when the file is missing.
func OptionalFile(path projectfiles.FilePath, replacer ContentReplacer) FileReplacer {
	return FileReplacer{Path: path, Replacer: replacer, Optional: true}
}

// FileContentReplacer applies ordered replacements to project files.
type FileContentReplacer struct {
	files Files
}

// NewFileContentReplacer creates a FileContentReplacer on top of files.
func NewFileContentReplacer(files Files) *FileContentReplacer {
	return &FileContentReplacer{files: files}
}

// Apply groups replacers per file, keeping the order in which files first
// appear, and applies each group to the file content read once. A file is
// written only when its content changed, and is left untouched when any of
// its replacers fails. It returns the files that were written.
func (r *FileContentReplacer) Apply(replacers ...FileReplacer) ([]projectfiles.FilePath, error) {
	var order []projectfiles.FilePath
	groups := make(map[projectfiles.FilePath][]FileReplacer)
	for _, replacer := range replacers {
		if _, seen := groups[replacer.Path]; !seen {
			order = append(order, replacer.Path)
		}
		groups[replacer.Path] = append(groups[replacer.Path], replacer)
	}

	var written []projectfiles.FilePath
	for _, path := range order {
		changed, err := r.applyToFile(path, groups[path])
		if err != nil {
			return written, err
		}
		if changed {
			written = append(written, path)
		}
	}
	return written, nil
}

func (r *FileContentReplacer) applyToFile(path projectfiles.FilePath, replacers []FileReplacer) (bool, error) {
	logger := output.FileLogger(path.String())

	content, err := r.files.ReadString(path)
	if err != nil {
		if errors.Is(err, oerrors.ErrNotFound) && allOptional(replacers) {
			logger.Debug("skipping optional replacements on missing file")
			return false, nil
		}
		return false, fmt.Errorf("can't apply replacements to %s: %w", path, err)
	}

	updated := content
	for _, replacer := range replacers {
		updated, err = replacer.Replacer.Apply(path, updated)
		if err != nil {
			return false, err
		}
	}

	if updated == content {
		logger.Debug("content unchanged")
		return false, nil
	}

	if err := r.files.WriteString(path, updated); err != nil {
		return false, fmt.Errorf("can't write replacements to %s: %w", path, err)
	}
	logger.Debug("content patched", "replacements", len(replacers))
	return true, nil
}

func allOptional(replacers []FileReplacer) bool {
	for _, replacer := range replacers {
		if !replacer.Optional {
			return false
		}
	}
	return true
}
