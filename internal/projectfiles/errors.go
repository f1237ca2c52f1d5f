package projectfiles

import (
	"fmt"

	oerrors "github.com/seedctl/seedctl/internal/errors"
)

// UnableCreateFolderError reports a directory that could not be created.
type UnableCreateFolderError struct {
	Path string
	Err  error
}

func (e *UnableCreateFolderError) Error() string {
	return fmt.Sprintf("unable to create folder %s: %v", e.Path, e.Err)
}

// Unwrap exposes both the file system sentinel and the cause.
func (e *UnableCreateFolderError) Unwrap() []error {
	return []error{oerrors.ErrFileSystem, e.Err}
}

// UnableCopyFileError reports a template resource that could not be copied.
type UnableCopyFileError struct {
	Source      string
	Destination string
	Err         error
}

func (e *UnableCopyFileError) Error() string {
	return fmt.Sprintf("unable to copy %s to %s: %v", e.Source, e.Destination, e.Err)
}

// Unwrap exposes both the file system sentinel and the cause.
func (e *UnableCopyFileError) Unwrap() []error {
	return []error{oerrors.ErrFileSystem, e.Err}
}
