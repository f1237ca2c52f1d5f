package projectfiles

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/seedctl/seedctl/internal/errors"
	"github.com/seedctl/seedctl/internal/output"
)

// Change is the before/after content of a file touched through Files.
type Change struct {
	Path    FilePath
	Before  string
	After   string
	Created bool
}

// Files reads and writes files of one project folder.
// It is not safe for concurrent use; one application run owns the tree.
type Files struct {
	fs        afero.Fs
	root      string
	resources afero.Fs

	// journal keeps the original content of every touched file, in touch order.
	journal []FilePath
	origin  map[FilePath]*string
}

// New creates a gateway rooted at root on fsys. Template resources are read
// from resources.
func New(fsys afero.Fs, root string, resources fs.FS) *Files {
	return &Files{
		fs:        fsys,
		root:      filepath.Clean(root),
		resources: afero.FromIOFS{FS: resources},
		origin:    make(map[FilePath]*string),
	}
}

// Root returns the project folder.
func (f *Files) Root() string {
	return f.root
}

// Resolve returns the location of p on the underlying file system.
func (f *Files) Resolve(p FilePath) string {
	return filepath.Join(f.root, filepath.FromSlash(string(p)))
}

// Exists reports whether p exists in the project.
func (f *Files) Exists(p FilePath) (bool, error) {
	ok, err := afero.Exists(f.fs, f.Resolve(p))
	if err != nil {
		return false, fmt.Errorf("checking %s: %w: %w", f.Resolve(p), oerrors.ErrFileSystem, err)
	}
	return ok, nil
}

// ReadBytes returns the raw content of p. A missing file wraps ErrNotFound.
func (f *Files) ReadBytes(p FilePath) ([]byte, error) {
	location := f.Resolve(p)
	data, err := afero.ReadFile(f.fs, location)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", location, oerrors.ErrNotFound)
		}
		return nil, fmt.Errorf("reading %s: %w: %w", location, oerrors.ErrFileSystem, err)
	}
	return data, nil
}

// ReadString returns the content of p as a string.
func (f *Files) ReadString(p FilePath) (string, error) {
	data, err := f.ReadBytes(p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteString replaces the content of p, creating parent folders as needed.
func (f *Files) WriteString(p FilePath, content string) error {
	f.remember(p)

	location := f.Resolve(p)
	if err := f.mkdirAll(filepath.Dir(location)); err != nil {
		return err
	}
	if err := afero.WriteFile(f.fs, location, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w: %w", location, oerrors.ErrFileSystem, err)
	}
	return nil
}

// CopyIfMissing copies the template resource source to destination unless
// destination already exists. An existing destination is left untouched and
// is not an error. It reports whether a copy happened.
func (f *Files) CopyIfMissing(source string, destination FilePath) (bool, error) {
	location := f.Resolve(destination)

	exists, err := f.Exists(destination)
	if err != nil {
		return false, err
	}
	if exists {
		output.Debug("not copying template since destination already exists",
			"source", source, "destination", location)
		return false, nil
	}

	folder := filepath.Dir(location)
	if err := f.mkdirAll(folder); err != nil {
		return false, err
	}

	data, err := afero.ReadFile(f.resources, source)
	if err != nil {
		return false, &UnableCopyFileError{Source: source, Destination: location, Err: err}
	}

	f.remember(destination)
	if err := afero.WriteFile(f.fs, location, data, 0o644); err != nil {
		return false, &UnableCopyFileError{Source: source, Destination: location, Err: err}
	}

	output.Debug("copied template", "source", source, "destination", location)
	return true, nil
}

// Changes returns the touched files whose content differs from the original,
// in the order they were first touched.
func (f *Files) Changes() ([]Change, error) {
	changes := make([]Change, 0, len(f.journal))
	for _, p := range f.journal {
		current, err := f.ReadString(p)
		if err != nil {
			return nil, err
		}

		before := f.origin[p]
		if before == nil {
			changes = append(changes, Change{Path: p, After: current, Created: true})
			continue
		}
		if *before != current {
			changes = append(changes, Change{Path: p, Before: *before, After: current})
		}
	}
	return changes, nil
}

// mkdirAll creates folder and its parents. Copy-on-write overlays report a
// folder of the base layer as ErrExist.
func (f *Files) mkdirAll(folder string) error {
	if err := f.fs.MkdirAll(folder, 0o755); err != nil && !errors.Is(err, fs.ErrExist) {
		return &UnableCreateFolderError{Path: folder, Err: err}
	}
	return nil
}

// remember records the content of p before its first modification.
func (f *Files) remember(p FilePath) {
	if _, seen := f.origin[p]; seen {
		return
	}
	f.journal = append(f.journal, p)

	data, err := afero.ReadFile(f.fs, f.Resolve(p))
	if err != nil {
		f.origin[p] = nil
		return
	}
	content := string(data)
	f.origin[p] = &content
}

// NewOsFiles creates a gateway writing to the real file system.
func NewOsFiles(root string, resources fs.FS) *Files {
	return New(afero.NewOsFs(), root, resources)
}

// NewDryRunFiles creates a gateway reading the real project but keeping every
// write in memory.
func NewDryRunFiles(root string, resources fs.FS) *Files {
	base := afero.NewReadOnlyFs(afero.NewOsFs())
	return New(afero.NewCopyOnWriteFs(base, afero.NewMemMapFs()), root, resources)
}
