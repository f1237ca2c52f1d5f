package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seedctl/seedctl/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show seedctl version information.

Displays:
  - seedctl version, commit and build date
  - Go version and the supported build tools`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			fmt.Fprintln(c.OutOrStdout(), version.Get().String())
			return nil
		},
	}
}
