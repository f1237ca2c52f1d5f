package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name         string
		flag         string
		env          string
		config       string
		wantValue    string
		wantSource   ConfigSource
		wantShadowed map[ConfigSource]string
	}{
		{
			name:         "flag wins",
			flag:         "/flag",
			env:          "/env",
			config:       "/config",
			wantValue:    "/flag",
			wantSource:   SourceFlag,
			wantShadowed: map[ConfigSource]string{SourceEnv: "/env", SourceConfig: "/config", SourceDefault: "."},
		},
		{
			name:         "env over config",
			env:          "/env",
			config:       "/config",
			wantValue:    "/env",
			wantSource:   SourceEnv,
			wantShadowed: map[ConfigSource]string{SourceConfig: "/config", SourceDefault: "."},
		},
		{
			name:         "config over default",
			config:       "/config",
			wantValue:    "/config",
			wantSource:   SourceConfig,
			wantShadowed: map[ConfigSource]string{SourceDefault: "."},
		},
		{
			name:         "default",
			wantValue:    ".",
			wantSource:   SourceDefault,
			wantShadowed: map[ConfigSource]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvProject, tt.env)

			got := ResolveProject(tt.flag, &Config{Project: tt.config})

			assert.Equal(t, "project", got.Key)
			assert.Equal(t, tt.wantValue, got.Value)
			assert.Equal(t, tt.wantSource, got.Source)
			assert.Equal(t, tt.wantShadowed, got.Shadowed)
		})
	}
}

func TestResolveIndentation(t *testing.T) {
	t.Setenv(EnvIndentation, "")

	got := ResolveIndentation(0, &Config{Indentation: 4})
	assert.Equal(t, "4", got.Value)
	assert.Equal(t, SourceConfig, got.Source)

	got = ResolveIndentation(3, &Config{Indentation: 4})
	assert.Equal(t, "3", got.Value)
	assert.Equal(t, SourceFlag, got.Source)

	got = ResolveIndentation(0, nil)
	assert.Equal(t, "2", got.Value)
	assert.Equal(t, SourceDefault, got.Source)
}

func TestResolveConfigPath(t *testing.T) {
	t.Setenv("HOME", "/home/dev")
	t.Setenv(EnvConfig, "")

	got, err := ResolveConfigPath("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/dev", ".seedctl", "config.yaml"), got.Value)
	assert.Equal(t, SourceDefault, got.Source)

	t.Setenv(EnvConfig, "/etc/seedctl.yaml")
	got, err = ResolveConfigPath("")
	require.NoError(t, err)
	assert.Equal(t, "/etc/seedctl.yaml", got.Value)
	assert.Equal(t, SourceEnv, got.Source)

	got, err = ResolveConfigPath("/tmp/flag.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/flag.yaml", got.Value)
	assert.Equal(t, SourceFlag, got.Source)
}

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/dev")

	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: ""},
		{input: "/abs/path", want: "/abs/path"},
		{input: "~", want: "/home/dev"},
		{input: "~/.seedctl/config.yaml", want: "/home/dev/.seedctl/config.yaml"},
		{input: "~other/x", want: "~other/x"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ExpandPath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
