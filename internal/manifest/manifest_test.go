package manifest

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/seedctl/seedctl/internal/errors"
	"github.com/seedctl/seedctl/internal/javabuild"
)

const postgresqlManifest = `commands:
  - setVersion:
      slug: postgresql
      version: "42.7.4"
  - addDirectDependency:
      groupId: org.postgresql
      artifactId: postgresql
      versionSlug: postgresql
      scope: runtime
  - addGradlePlugin:
      community:
        id: org.sonarqube
        pluginSlug: sonarqube
        versionSlug: sonarqube
      pluginVersion:
        slug: sonarqube
        version: "5.1.0.4882"
  - addGradlePlugin:
      core:
        id: jacoco
        configuration: |-
          jacoco {
            toolVersion = libs.versions.jacoco.get()
          }
  - addBuildProfile:
      id: local
  - addMavenPlugin:
      groupId: org.apache.maven.plugins
      artifactId: maven-enforcer-plugin
  - removeDirectDependency:
      groupId: org.postgresql
      artifactId: postgresql
`

func TestDecode_Commands(t *testing.T) {
	m, err := Decode([]byte(postgresqlManifest), "seed.yaml")
	require.NoError(t, err)

	commands, err := m.ToCommands("seed.yaml")
	require.NoError(t, err)

	postgresql := javabuild.DependencyID{GroupID: "org.postgresql", ArtifactID: "postgresql"}
	assert.Equal(t, []javabuild.Command{
		javabuild.SetVersion{Version: javabuild.Version{Slug: "postgresql", Value: "42.7.4"}},
		javabuild.AddDirectJavaDependency{Dependency: javabuild.JavaDependency{
			DependencyID: postgresql,
			VersionSlug:  "postgresql",
			Scope:        javabuild.ScopeRuntime,
		}},
		javabuild.AddGradlePlugin{
			Plugin:        javabuild.CommunityPlugin{ID: "org.sonarqube", PluginSlug: "sonarqube", VersionSlug: "sonarqube"},
			PluginVersion: &javabuild.Version{Slug: "sonarqube", Value: "5.1.0.4882"},
		},
		javabuild.AddGradlePlugin{
			Plugin: javabuild.CorePlugin{ID: "jacoco", Config: "jacoco {\n  toolVersion = libs.versions.jacoco.get()\n}"},
		},
		javabuild.AddJavaBuildProfile{ProfileID: "local"},
		javabuild.AddDirectMavenPlugin{Plugin: javabuild.MavenPlugin{
			DependencyID: javabuild.DependencyID{GroupID: "org.apache.maven.plugins", ArtifactID: "maven-enforcer-plugin"},
		}},
		javabuild.RemoveDirectJavaDependency{Dependency: postgresql},
	}, commands)
}

func TestDecode_JSON(t *testing.T) {
	m, err := Decode([]byte(`{"commands":[{"setBuildProperty":{"key":"java.version","value":"21"}}]}`), "seed.json")
	require.NoError(t, err)

	commands, err := m.ToCommands("seed.json")
	require.NoError(t, err)
	assert.Equal(t, []javabuild.Command{
		javabuild.SetBuildProperty{Property: javabuild.BuildProperty{Key: "java.version", Value: "21"}},
	}, commands)
}

func TestDecode_PatchFile(t *testing.T) {
	content := `commands:
  - patchFile:
      path: src/main/resources/config/application.properties
      optional: true
      replacements:
        - position: before
          needle: "# seed-needle-properties"
          text: server.port=8080
          required: true
          once: true
        - position: replace
          regex: "^spring\\.application\\.name=.*$"
          text: spring.application.name=shop
          all: true
        - position: end-of-file
          text: management.endpoints.web.exposure.include=health
`
	m, err := Decode([]byte(content), "seed.yaml")
	require.NoError(t, err)

	commands, err := m.ToCommands("seed.yaml")
	require.NoError(t, err)
	assert.Equal(t, []javabuild.Command{
		javabuild.PatchFile{
			Path:     "src/main/resources/config/application.properties",
			Optional: true,
			Patches: []javabuild.FilePatch{
				{Position: javabuild.PatchBefore, Needle: "# seed-needle-properties", Text: "server.port=8080", Required: true, Once: true},
				{Position: javabuild.PatchReplace, Pattern: `^spring\.application\.name=.*$`, Text: "spring.application.name=shop", All: true},
				{Position: javabuild.PatchEndOfFile, Text: "management.endpoints.web.exposure.include=health"},
			},
		},
	}, commands)
}

func TestDecode_InvalidPatchFile(t *testing.T) {
	tests := map[string]string{
		"no replacements":    "commands:\n  - patchFile:\n      path: a.properties\n",
		"unknown position":   "commands:\n  - patchFile:\n      path: a.properties\n      replacements:\n        - position: middle\n          text: x\n",
		"needle and regex":   "commands:\n  - patchFile:\n      path: a.properties\n      replacements:\n        - position: before\n          needle: a\n          regex: b\n          text: x\n",
		"needle at file end": "commands:\n  - patchFile:\n      path: a.properties\n      replacements:\n        - position: end-of-file\n          needle: a\n          text: x\n",
		"invalid regex":      "commands:\n  - patchFile:\n      path: a.properties\n      replacements:\n        - position: replace\n          regex: \"(\"\n          text: x\n",
		"missing path":       "commands:\n  - patchFile:\n      replacements:\n        - position: file-start\n          text: x\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			m, err := Decode([]byte(content), "seed.yaml")
			require.NoError(t, err)

			_, err = m.ToCommands("seed.yaml")
			assert.ErrorIs(t, err, oerrors.ErrValidation)
		})
	}
}

func TestDecode_UnknownField(t *testing.T) {
	_, err := Decode([]byte("commands:\n  - setVersoin:\n      slug: x\n"), "seed.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrValidation)
	assert.Contains(t, err.Error(), "seed.yaml")
}

func TestCommands_ReportsEveryProblem(t *testing.T) {
	content := `commands:
  - {}
  - setVersion:
      slug: postgresql
  - addDirectDependency:
      artifactId: postgresql
      scope: system
  - setVersion:
      slug: a
      version: "1"
    addBuildProfile:
      id: local
  - addGradlePlugin:
      toolVersion:
        slug: jacoco
        version: "0.8.12"
`
	m, err := Decode([]byte(content), "seed.yaml")
	require.NoError(t, err)

	_, err = m.ToCommands("seed.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrValidation)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))

	msg := err.Error()
	assert.Contains(t, msg, "commands[0]: no command")
	assert.Contains(t, msg, `commands[1]: version "postgresql" has no value`)
	assert.Contains(t, msg, "commands[2]: dependency groupId is required")
	assert.Contains(t, msg, "commands[3]: 2 commands in one entry")
	assert.Contains(t, msg, "commands[4]: gradle plugin needs core or community")
}

func TestCommands_Empty(t *testing.T) {
	m, err := Decode([]byte("commands: []\n"), "seed.yaml")
	require.NoError(t, err)

	_, err = m.ToCommands("seed.yaml")
	assert.ErrorIs(t, err, oerrors.ErrValidation)
}

func TestLoad(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/work/seed.yaml", []byte(postgresqlManifest), 0o644))

	m, err := Load(fsys, "/work/seed.yaml")
	require.NoError(t, err)
	assert.Len(t, m.Commands, 7)

	_, err = Load(fsys, "/work/missing.yaml")
	assert.ErrorIs(t, err, oerrors.ErrNotFound)
}
