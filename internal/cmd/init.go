package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	oerrors "github.com/seedctl/seedctl/internal/errors"
	"github.com/seedctl/seedctl/internal/output"
	"github.com/seedctl/seedctl/internal/templates"
)

// initOptions holds the flags for the init command.
type initOptions struct {
	template string
	dir      string
	group    string
	force    bool
}

// NewInitCmd creates the init command.
func NewInitCmd(_ *GlobalConfig) *cobra.Command {
	opts := &initOptions{}

	c := &cobra.Command{
		Use:   "init <project-name>",
		Short: "Create a new project from template",
		Long: `Create a new Gradle project from a template.

The generated build script carries every needle comment, so commands applied
later with 'seedctl apply' find their insertion points.

Examples:
  # Create a project in ./shop
  seedctl init shop

  # Create a project with a custom group in a specific directory
  seedctl init shop --group com.acme --dir ./services/shop

  # Regenerate the template files of an existing project
  seedctl init shop --force`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runInit(c, args[0], opts, afero.NewOsFs())
		},
	}

	c.Flags().StringVarP(&opts.template, "template", "t", templates.DefaultTemplateName,
		fmt.Sprintf("Template to use (%s)", strings.Join(templates.Names(), ", ")))
	c.Flags().StringVarP(&opts.dir, "dir", "d", "",
		"Directory to create the project in (defaults to project name)")
	c.Flags().StringVarP(&opts.group, "group", "g", templates.DefaultGroup,
		"Group of the project")
	c.Flags().BoolVarP(&opts.force, "force", "f", false,
		"Overwrite files in a non-empty directory")

	return c
}

func runInit(c *cobra.Command, projectName string, opts *initOptions, fsys afero.Fs) error {
	if _, err := templates.Get(opts.template); err != nil {
		return &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err: &oerrors.DetailError{
				Type:    "validation failed",
				Message: fmt.Sprintf("unknown template: %s", opts.template),
				Field:   "template",
				Hint:    fmt.Sprintf("Valid templates: %s", strings.Join(templates.Names(), ", ")),
				Cause:   oerrors.ErrValidation,
			},
		}
	}

	targetDir := opts.dir
	if targetDir == "" {
		targetDir = projectName
	}

	result, err := templates.NewGenerator(templates.GenerateOptions{
		TargetDir:    targetDir,
		TemplateName: opts.template,
		ProjectName:  projectName,
		Group:        opts.group,
		Force:        opts.force,
	}, fsys).Generate()
	if err != nil {
		return exitError(err)
	}

	absDir, err := filepath.Abs(targetDir)
	if err != nil {
		absDir = targetDir
	}

	out := c.OutOrStdout()
	fmt.Fprintln(out, output.FormatCheckmark(fmt.Sprintf("Created project '%s' in %s", projectName, absDir)))
	fmt.Fprintln(out)

	entries := make([]output.FileEntry, 0, len(result.Files)+1)
	entries = append(entries, output.FileEntry{Path: targetDir + "/", Description: "Project directory"})
	for _, f := range result.Files {
		entries = append(entries, output.FileEntry{Path: "  " + f, Description: fileDescription(f)})
	}
	fmt.Fprint(out, output.RenderFileTree(entries, 40))

	return nil
}

// fileDescription returns a description for a generated file.
func fileDescription(name string) string {
	descriptions := map[string]string{
		"build.gradle.kts":          "Build script with needles",
		"settings.gradle.kts":       "Project settings",
		"gradle.properties":         "Gradle properties",
		"gradle/libs.versions.toml": "Versions catalog",
	}
	return descriptions[filepath.ToSlash(name)]
}
