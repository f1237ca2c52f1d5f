// Package cmdutil provides shared command utilities for project subcommands.
// It centralizes flag groups, project gateway creation and error output.
package cmdutil

import (
	"github.com/spf13/cobra"

	"github.com/seedctl/seedctl/internal/config"
	"github.com/seedctl/seedctl/internal/output"
	"github.com/seedctl/seedctl/internal/projectfiles"
	"github.com/seedctl/seedctl/internal/templates"
)

// ProjectFlags holds flags common to commands working on a generated project
// (apply, catalog list).
type ProjectFlags struct {
	Project string
}

// AddTo registers the project flags on the given cobra command.
func (f *ProjectFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Project, "project", "p", "",
		"Project folder (env: SEED_PROJECT, default: from config or current directory)")
}

// Resolve returns the project folder using flag > env > config > default.
func (f *ProjectFlags) Resolve(cfg *config.Config) string {
	resolved := config.ResolveProject(f.Project, cfg)
	config.LogResolvedValues([]config.ResolvedValue{resolved})
	return resolved.Value
}

// ApplyFlags holds flags of commands that patch project files.
type ApplyFlags struct {
	DryRun bool
}

// AddTo registers the apply flags on the given cobra command.
func (f *ApplyFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.DryRun, "dry-run", false,
		"Show the resulting diff without writing any file")
}

// OpenProject returns the file gateway of the project at root. In dry-run
// mode writes stay in memory.
func OpenProject(root string, dryRun bool) *projectfiles.Files {
	if dryRun {
		output.Debug("dry-run: writes are kept in memory", "project", root)
		return projectfiles.NewDryRunFiles(root, templates.Resources())
	}
	return projectfiles.NewOsFiles(root, templates.Resources())
}
