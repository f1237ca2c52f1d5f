// Package cmd provides CLI command implementations.
package cmd

import (
	"strconv"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/seedctl/seedctl/internal/config"
	"github.com/seedctl/seedctl/internal/javabuild"
	"github.com/seedctl/seedctl/internal/output"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed into every sub-command constructor.
type GlobalConfig struct {
	// Config is the loaded configuration with defaults applied.
	Config *config.Config

	// ConfigPath is the resolved --config path.
	ConfigPath string

	// Indent is the resolved indentation width, validated on use.
	Indent config.ResolvedValue

	Verbose bool
}

// rootFlags are the persistent flags of the root command.
type rootFlags struct {
	config     string
	verbose    bool
	timestamps bool
	indent     int
}

// NewRootCmd creates the root command for seedctl.
func NewRootCmd() *cobra.Command {
	cfg := &GlobalConfig{Config: config.DefaultConfig()}
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "seedctl",
		Short: "Generate and patch Gradle projects",
		Long: `seedctl generates Gradle projects and patches their build files.

Build files carry needle comments marking where declarations are inserted.
Commands listed in a manifest add dependencies, plugins, versions and build
profiles to the build script and the versions catalog.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd, flags, cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: SEED_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")
	rootCmd.PersistentFlags().IntVar(&flags.indent, "indent", 0, "Indentation width of generated build code (env: SEED_INDENTATION)")

	rootCmd.AddCommand(NewInitCmd(cfg))
	rootCmd.AddCommand(NewApplyCmd(cfg))
	rootCmd.AddCommand(NewCatalogCmd(cfg))
	rootCmd.AddCommand(NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd(cfg))

	return rootCmd
}

// initializeGlobals loads .env and configuration, then sets up logging.
func initializeGlobals(cmd *cobra.Command, flags *rootFlags, cfg *GlobalConfig) error {
	fsys := afero.NewOsFs()

	if err := config.LoadDotEnv(fsys, config.DefaultDotEnvFile); err != nil {
		output.Warn("ignoring .env file", "error", err)
	}

	pathValue, err := config.ResolveConfigPath(flags.config)
	if err != nil {
		return err
	}
	cfg.ConfigPath = pathValue.Value

	loaded, err := config.NewLoader(fsys).LoadWithDefaults(cfg.ConfigPath)
	if err != nil {
		// Commands that don't need config still work.
		output.Debug("config load error", "error", err)
		loaded = config.DefaultConfig()
	}
	cfg.Config = loaded
	cfg.Verbose = flags.verbose

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: flags.verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	cfg.Indent = config.ResolveIndentation(flags.indent, loaded)

	config.LogResolvedValues([]config.ResolvedValue{pathValue, cfg.Indent})
	return nil
}

// Indentation returns the resolved indentation width.
func (g *GlobalConfig) Indentation() (javabuild.Indentation, error) {
	if g.Indent.Value == "" {
		return javabuild.DefaultIndentation, nil
	}
	indent, err := strconv.Atoi(g.Indent.Value)
	if err != nil || indent < 1 || indent > 8 {
		return 0, invalidIndentation(g.Indent)
	}
	return javabuild.Indentation(indent), nil
}
