package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedctl/seedctl/internal/config"
	oerrors "github.com/seedctl/seedctl/internal/errors"
	"github.com/seedctl/seedctl/internal/javabuild"
	"github.com/seedctl/seedctl/internal/testutil"
)

// isolate points HOME at a temp dir and clears SEED_ variables.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{config.EnvConfig, config.EnvIndentation, config.EnvProject, config.EnvLogTimestamps} {
		t.Setenv(key, "")
	}
	return home
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd()

	assert.Equal(t, "seedctl", root.Use)
	for _, name := range []string{"config", "verbose", "timestamps", "indent"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
	}

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"init", "apply", "catalog", "config", "version"})
}

func TestInitializeGlobals(t *testing.T) {
	tests := []struct {
		name       string
		flags      rootFlags
		env        string
		config     string
		wantIndent javabuild.Indentation
		wantCode   int
	}{
		{name: "default", wantIndent: 2},
		{name: "config file", config: "indentation: 4\n", wantIndent: 4},
		{name: "env over config", env: "3", config: "indentation: 4\n", wantIndent: 3},
		{name: "flag over env", flags: rootFlags{indent: 8}, env: "3", wantIndent: 8},
		{name: "flag out of range", flags: rootFlags{indent: 9}, wantCode: oerrors.ExitValidationError},
		{name: "env out of range", env: "0", wantCode: oerrors.ExitValidationError},
		{name: "config out of range", config: "indentation: 12\n", wantCode: oerrors.ExitValidationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := isolate(t)
			t.Setenv(config.EnvIndentation, tt.env)
			flags := tt.flags
			if tt.config != "" {
				flags.config = testutil.WriteFile(t, home, "config.yaml", tt.config)
			}

			cfg := &GlobalConfig{}
			require.NoError(t, initializeGlobals(NewRootCmd(), &flags, cfg))
			assert.NotNil(t, cfg.Config)

			indent, err := cfg.Indentation()
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, oerrors.ExitCodeFromError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIndent, indent)
		})
	}
}

func TestInitializeGlobals_DefaultConfigPath(t *testing.T) {
	home := isolate(t)

	cfg := &GlobalConfig{}
	require.NoError(t, initializeGlobals(NewRootCmd(), &rootFlags{}, cfg))

	assert.Equal(t, filepath.Join(home, ".seedctl", "config.yaml"), cfg.ConfigPath)
	assert.Equal(t, config.DefaultProject, cfg.Config.Project)
}

func TestGlobalConfig_IndentationDefault(t *testing.T) {
	indent, err := (&GlobalConfig{}).Indentation()

	require.NoError(t, err)
	assert.Equal(t, javabuild.DefaultIndentation, indent)
}
