package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/seedctl/seedctl/internal/errors"
	"github.com/seedctl/seedctl/internal/testutil"
)

func TestCatalogList(t *testing.T) {
	dir := newProject(t)
	testutil.WriteFile(t, dir, "gradle/libs.versions.toml", `[versions]
spring-boot = "3.3.4"

[libraries]
spring-boot-starter = { module = "org.springframework.boot:spring-boot-starter", version.ref = "spring-boot" }
jackson = { group = "com.fasterxml.jackson.core", name = "jackson-databind", version = "2.18.0" }

[plugins]
spring-boot = { id = "org.springframework.boot", version.ref = "spring-boot" }
`)

	stdout, _, err := execute(t, "catalog", "list", "--project", dir)
	require.NoError(t, err)

	assert.Contains(t, stdout, "SECTION")
	assert.Contains(t, stdout, "3.3.4")
	assert.Contains(t, stdout, "org.springframework.boot:spring-boot-starter")
	assert.Contains(t, stdout, "com.fasterxml.jackson.core:jackson-databind")
	assert.Contains(t, stdout, "2.18.0")
	assert.Contains(t, stdout, "ref:spring-boot")
}

func TestCatalogList_EmptyCatalog(t *testing.T) {
	dir := newProject(t)

	stdout, _, err := execute(t, "catalog", "list", "--project", dir)
	require.NoError(t, err)

	assert.Equal(t, "The versions catalog is empty.\n", stdout)
}

func TestCatalogList_InvalidCatalog(t *testing.T) {
	dir := newProject(t)
	testutil.WriteFile(t, dir, "gradle/libs.versions.toml", "[versions\n")

	_, _, err := execute(t, "catalog", "list", "--project", dir)

	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrCatalog)
}

func TestCatalogList_NotAProject(t *testing.T) {
	isolate(t)

	_, _, err := execute(t, "catalog", "list", "--project", t.TempDir())

	assert.Equal(t, oerrors.ExitNotFound, oerrors.ExitCodeFromError(err))
}
