package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/seedctl/seedctl/internal/config"
	oerrors "github.com/seedctl/seedctl/internal/errors"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the seedctl configuration file.

Checks performed:
  1. Config file exists at resolved path
  2. Config file is valid YAML with known value types
  3. Values are in range (indentation 1-8, project not blank)

The config path is resolved using precedence:
  --config flag > SEED_CONFIG env > ~/.seedctl/config.yaml

Examples:
  # Validate default configuration
  seedctl config vet

  # Validate custom config path
  seedctl config vet --config /path/to/config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runConfigVet(c, cfg, afero.NewOsFs())
		},
	}
}

func runConfigVet(c *cobra.Command, cfg *GlobalConfig, fsys afero.Fs) error {
	path, err := config.ExpandPath(cfg.ConfigPath)
	if err != nil {
		return exitError(err)
	}

	exists, err := config.ConfigFileExists(fsys, path)
	if err != nil {
		return exitError(err)
	}
	if !exists {
		return exitError(oerrors.NewNotFoundError("configuration file not found", path,
			"Run 'seedctl config init' to create default configuration."))
	}

	if err := config.ValidateFile(fsys, path); err != nil {
		var validationErrs config.ValidationErrors
		if errors.As(err, &validationErrs) {
			fmt.Fprintln(c.ErrOrStderr(), "Error: config validation failed")
			fmt.Fprintf(c.ErrOrStderr(), "  File: %s\n\n", path)
			for _, e := range validationErrs {
				fmt.Fprintf(c.ErrOrStderr(), "  %s: %s\n", e.Field, e.Message)
			}
			return &oerrors.ExitError{Code: oerrors.ExitValidationError, Err: err, Printed: true}
		}
		return exitError(oerrors.NewValidationError(err.Error(), path, "", ""))
	}

	fmt.Fprintf(c.OutOrStdout(), "Config file is valid: %s\n", path)
	return nil
}
