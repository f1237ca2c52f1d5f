package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/seedctl/seedctl/internal/config"
	oerrors "github.com/seedctl/seedctl/internal/errors"
	"github.com/seedctl/seedctl/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the seedctl configuration.

Writes the default configuration to the resolved config path
(--config flag > SEED_CONFIG env > ~/.seedctl/config.yaml).

Examples:
  # Initialize configuration
  seedctl config init

  # Overwrite existing configuration
  seedctl config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runConfigInit(c, cfg, afero.NewOsFs(), force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false,
		"Overwrite existing configuration")

	return c
}

func runConfigInit(c *cobra.Command, cfg *GlobalConfig, fsys afero.Fs, force bool) error {
	path, err := config.ExpandPath(cfg.ConfigPath)
	if err != nil {
		return exitError(oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory"))
	}

	exists, err := config.ConfigFileExists(fsys, path)
	if err != nil {
		return exitError(err)
	}
	if exists && !force {
		return exitError(&oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		})
	}

	data, err := config.DefaultConfig().Marshal()
	if err != nil {
		return exitError(err)
	}

	// 0700 directory, 0600 file.
	if err := fsys.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return exitError(fmt.Errorf("creating %s: %w: %w", filepath.Dir(path), oerrors.ErrFileSystem, err))
	}
	if err := afero.WriteFile(fsys, path, data, 0o600); err != nil {
		return exitError(fmt.Errorf("writing %s: %w: %w", path, oerrors.ErrFileSystem, err))
	}

	out := c.OutOrStdout()
	fmt.Fprintln(out, output.FormatCheckmark("Configuration initialized at "+path))
	fmt.Fprintln(out, "Validate with: seedctl config vet")
	return nil
}
