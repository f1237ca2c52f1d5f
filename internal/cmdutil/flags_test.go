package cmdutil

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedctl/seedctl/internal/config"
)

func TestProjectFlags_AddTo(t *testing.T) {
	var flags ProjectFlags
	cmd := &cobra.Command{Use: "test"}
	flags.AddTo(cmd)

	f := cmd.Flags().Lookup("project")
	require.NotNil(t, f)
	assert.Equal(t, "p", f.Shorthand)

	require.NoError(t, cmd.Flags().Parse([]string{"-p", "/work/shop"}))
	assert.Equal(t, "/work/shop", flags.Project)
}

func TestApplyFlags_AddTo(t *testing.T) {
	var flags ApplyFlags
	cmd := &cobra.Command{Use: "test"}
	flags.AddTo(cmd)

	require.NoError(t, cmd.Flags().Parse([]string{"--dry-run"}))
	assert.True(t, flags.DryRun)
}

func TestProjectFlags_Resolve(t *testing.T) {
	tests := []struct {
		name string
		flag string
		env  string
		cfg  *config.Config
		want string
	}{
		{name: "flag", flag: "/flag", env: "/env", cfg: &config.Config{Project: "/config"}, want: "/flag"},
		{name: "env", env: "/env", cfg: &config.Config{Project: "/config"}, want: "/env"},
		{name: "config", cfg: &config.Config{Project: "/config"}, want: "/config"},
		{name: "default", want: "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(config.EnvProject, tt.env)
			flags := ProjectFlags{Project: tt.flag}
			assert.Equal(t, tt.want, flags.Resolve(tt.cfg))
		})
	}
}
