package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/seedctl/seedctl/internal/cmdutil"
	oerrors "github.com/seedctl/seedctl/internal/errors"
	"github.com/seedctl/seedctl/internal/gradle"
	"github.com/seedctl/seedctl/internal/javabuild"
	"github.com/seedctl/seedctl/internal/manifest"
	"github.com/seedctl/seedctl/internal/output"
)

// applyOptions holds the flags for the apply command.
type applyOptions struct {
	project cmdutil.ProjectFlags
	apply   cmdutil.ApplyFlags
	color   func() bool
}

// NewApplyCmd creates the apply command.
func NewApplyCmd(cfg *GlobalConfig) *cobra.Command {
	opts := &applyOptions{color: output.IsTTY}

	c := &cobra.Command{
		Use:   "apply <commands-file>",
		Short: "Apply build commands to a project",
		Long: `Apply the build commands of a manifest to a project, in order.

The manifest is a YAML or JSON document with a list of commands:

  commands:
    - setVersion: {slug: postgresql, version: 42.7.3}
    - addDirectDependency:
        groupId: org.postgresql
        artifactId: postgresql
        versionSlug: postgresql
        scope: runtime
    - addBuildProfile: {id: local}
    - patchFile:
        path: gradle.properties
        replacements:
          - {position: end-of-file, text: org.gradle.caching=true, once: true}

Each command prints one status line: patched, unchanged or ignored.
Application stops at the first failing command; files already patched keep
their changes.

Examples:
  # Apply commands to the project in the current directory
  seedctl apply commands.yaml

  # Preview the changes without writing
  seedctl apply commands.yaml --project ./shop --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runApply(c, cfg, args[0], opts)
		},
	}

	opts.project.AddTo(c)
	opts.apply.AddTo(c)

	return c
}

func runApply(c *cobra.Command, cfg *GlobalConfig, manifestPath string, opts *applyOptions) error {
	indentation, err := cfg.Indentation()
	if err != nil {
		return err
	}

	m, err := manifest.Load(afero.NewOsFs(), manifestPath)
	if err != nil {
		return exitError(err)
	}
	commands, err := m.ToCommands(manifestPath)
	if err != nil {
		return exitError(err)
	}

	root := opts.project.Resolve(cfg.Config)
	files := cmdutil.OpenProject(root, opts.apply.DryRun)

	tool, err := javabuild.DetectBuildTool(files)
	if err != nil {
		return exitError(err)
	}
	if tool != javabuild.Gradle {
		return exitError(oerrors.NewUnsupportedError("apply", string(tool),
			fmt.Sprintf("no command handler for %s projects", tool)))
	}

	output.Debug("applying manifest",
		"manifest", manifestPath,
		"project", root,
		"commands", len(commands),
		"dry-run", opts.apply.DryRun)

	out := c.OutOrStdout()
	handler := gradle.NewCommandHandler(indentation, files)
	results, err := javabuild.Apply(handler, commands, func(r javabuild.Result) {
		cmdutil.WriteResult(out, r)
	})
	if err != nil {
		cmdutil.WriteFailure(out, commands[len(results)])
		return printedExitError("apply failed", err)
	}

	if opts.apply.DryRun {
		fmt.Fprintln(out)
		if err := cmdutil.WriteChanges(out, files, opts.color()); err != nil {
			return exitError(err)
		}
		return nil
	}

	fmt.Fprintln(out, output.FormatCheckmark(fmt.Sprintf("Applied %d commands to %s", len(results), root)))
	return nil
}
