package templates

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/seedctl/seedctl/internal/errors"
	"github.com/seedctl/seedctl/internal/output"
	"github.com/seedctl/seedctl/internal/projectfiles"
)

// Defaults of generated projects.
const (
	DefaultGroup       = "com.example"
	DefaultVersion     = "0.0.1-SNAPSHOT"
	DefaultJavaVersion = 21
)

// Generator handles project generation from templates.
type Generator struct {
	opts GenerateOptions
	fsys afero.Fs
}

// NewGenerator creates a new generator writing to fsys.
func NewGenerator(opts GenerateOptions, fsys afero.Fs) *Generator {
	return &Generator{opts: opts, fsys: fsys}
}

// Generate creates a new project from a template.
func (g *Generator) Generate() (*GenerateResult, error) {
	name := g.opts.TemplateName
	if name == "" {
		name = DefaultTemplateName
	}
	tmpl, err := Get(name)
	if err != nil {
		return nil, err
	}

	projectName := g.opts.ProjectName
	if projectName == "" {
		projectName = filepath.Base(g.opts.TargetDir)
	}
	if err := ValidateProjectName(projectName); err != nil {
		return nil, err
	}

	group := g.opts.Group
	if group == "" {
		group = DefaultGroup
	}
	if err := ValidateGroup(group); err != nil {
		return nil, err
	}

	if err := g.checkTargetDir(); err != nil {
		return nil, err
	}

	data := TemplateData{
		ProjectName: projectName,
		Group:       group,
		Version:     DefaultVersion,
		JavaVersion: DefaultJavaVersion,
	}

	output.Debug("generating project",
		"template", tmpl.Name,
		"name", projectName,
		"group", group,
		"target", g.opts.TargetDir)

	files, err := NewRenderer(data).RenderTemplate(tmpl.Name)
	if err != nil {
		return nil, fmt.Errorf("rendering template: %w", err)
	}

	project := projectfiles.New(g.fsys, g.opts.TargetDir, Resources())
	createdFiles := make([]string, 0, len(files))
	for _, f := range files {
		target, err := projectfiles.NewFilePath(f.TargetPath)
		if err != nil {
			return nil, err
		}

		if !g.opts.Force {
			exists, err := project.Exists(target)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, oerrors.NewValidationError(
					fmt.Sprintf("file %s already exists", project.Resolve(target)), project.Resolve(target), "",
					"Use --force to overwrite existing files.")
			}
		}

		if err := project.WriteString(target, string(f.Content)); err != nil {
			return nil, err
		}

		output.Debug("created file", "path", f.TargetPath)
		createdFiles = append(createdFiles, f.TargetPath)
	}

	return &GenerateResult{
		Files:        createdFiles,
		TemplateName: tmpl.Name,
		TargetDir:    g.opts.TargetDir,
	}, nil
}

// checkTargetDir validates the target directory.
func (g *Generator) checkTargetDir() error {
	exists, err := afero.Exists(g.fsys, g.opts.TargetDir)
	if err != nil {
		return fmt.Errorf("checking target directory: %w", err)
	}
	if !exists {
		return nil
	}

	isDir, err := afero.IsDir(g.fsys, g.opts.TargetDir)
	if err != nil {
		return fmt.Errorf("checking target directory: %w", err)
	}
	if !isDir {
		return fmt.Errorf("%s is not a directory", g.opts.TargetDir)
	}

	empty, err := afero.IsEmpty(g.fsys, g.opts.TargetDir)
	if err != nil {
		return fmt.Errorf("reading target directory: %w", err)
	}
	if !empty && !g.opts.Force {
		return oerrors.NewValidationError(
			fmt.Sprintf("directory %s is not empty", g.opts.TargetDir), g.opts.TargetDir, "",
			"Use --force to overwrite existing files.")
	}

	return nil
}
