package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/seedctl/seedctl/internal/errors"
	"github.com/seedctl/seedctl/internal/testutil"
)

func TestNewInitCmd(t *testing.T) {
	c := NewInitCmd(&GlobalConfig{})

	assert.Equal(t, "init <project-name>", c.Use)
	assert.NotEmpty(t, c.Short)
	assert.NotEmpty(t, c.Long)
	for _, name := range []string{"template", "dir", "group", "force"} {
		assert.NotNil(t, c.Flags().Lookup(name), name)
	}
}

func TestInit_CreatesProject(t *testing.T) {
	isolate(t)
	dir := filepath.Join(t.TempDir(), "shop")

	stdout, _, err := execute(t, "init", "shop", "--dir", dir, "--group", "com.acme")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Created project 'shop'")
	assert.Contains(t, stdout, "Versions catalog")

	files := testutil.Snapshot(t, dir)
	assert.Contains(t, files, "build.gradle.kts")
	assert.Contains(t, files, "settings.gradle.kts")
	assert.Contains(t, files, "gradle/libs.versions.toml")
	assert.Contains(t, files["build.gradle.kts"], `group = "com.acme"`)
	assert.Contains(t, files["build.gradle.kts"], "// seed-needle-gradle-implementation-dependencies")
	assert.Contains(t, files["settings.gradle.kts"], "shop")
}

func TestInit_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		existing bool
		wantCode int
	}{
		{name: "unknown template", args: []string{"--template", "maven"}, wantCode: oerrors.ExitValidationError},
		{name: "invalid group", args: []string{"--group", "Com.Acme"}, wantCode: oerrors.ExitValidationError},
		{name: "non-empty directory", existing: true, wantCode: oerrors.ExitValidationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			dir := filepath.Join(t.TempDir(), "shop")
			if tt.existing {
				testutil.WriteFile(t, dir, "README.md", "keep me\n")
			}

			args := append([]string{"init", "shop", "--dir", dir}, tt.args...)
			_, _, err := execute(t, args...)

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, oerrors.ExitCodeFromError(err))
		})
	}
}

func TestInit_ForceOverwrites(t *testing.T) {
	isolate(t)
	dir := filepath.Join(t.TempDir(), "shop")
	testutil.WriteFile(t, dir, "build.gradle.kts", "stale\n")

	_, _, err := execute(t, "init", "shop", "--dir", dir, "--force")
	require.NoError(t, err)

	assert.Contains(t, testutil.ReadFile(t, dir, "build.gradle.kts"), "// seed-needle-gradle-plugins")
}
