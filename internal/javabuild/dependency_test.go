package javabuild

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/seedctl/seedctl/internal/errors"
)

func TestParseScope(t *testing.T) {
	tests := []struct {
		input   string
		want    DependencyScope
		wantErr bool
	}{
		{input: "", want: ScopeCompile},
		{input: "compile", want: ScopeCompile},
		{input: "IMPORT", want: ScopeImport},
		{input: " provided ", want: ScopeProvided},
		{input: "runtime", want: ScopeRuntime},
		{input: "test", want: ScopeTest},
		{input: "system", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseScope(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, oerrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJavaDependency_Alias(t *testing.T) {
	tests := []struct {
		name string
		dep  JavaDependency
		want string
	}{
		{
			name: "derived from artifactId",
			dep:  JavaDependency{DependencyID: DependencyID{GroupID: "org.postgresql", ArtifactID: "postgresql"}},
			want: "postgresql",
		},
		{
			name: "dots and underscores",
			dep:  JavaDependency{DependencyID: DependencyID{GroupID: "g", ArtifactID: "Jakarta.Annotation_API"}},
			want: "jakarta-annotation-api",
		},
		{
			name: "explicit slug wins",
			dep:  JavaDependency{DependencyID: DependencyID{GroupID: "g", ArtifactID: "a"}, Slug: "spring-boot-starter"},
			want: "spring-boot-starter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dep.Alias())
		})
	}
}

func TestCommunityPlugin_Alias(t *testing.T) {
	assert.Equal(t, "org-sonarqube", CommunityPlugin{ID: "org.sonarqube"}.Alias())
	assert.Equal(t, "sonarqube", CommunityPlugin{ID: "org.sonarqube", PluginSlug: "sonarqube"}.Alias())
}

func TestDependencyID_Validate(t *testing.T) {
	require.NoError(t, DependencyID{GroupID: "g", ArtifactID: "a"}.Validate())
	assert.ErrorIs(t, DependencyID{ArtifactID: "a"}.Validate(), oerrors.ErrValidation)
	assert.ErrorIs(t, DependencyID{GroupID: "g"}.Validate(), oerrors.ErrValidation)
}

func TestVersion_Validate(t *testing.T) {
	require.NoError(t, Version{Slug: "jacoco", Value: "0.8.12"}.Validate())
	assert.ErrorIs(t, Version{Value: "1"}.Validate(), oerrors.ErrValidation)
	assert.ErrorIs(t, Version{Slug: "jacoco"}.Validate(), oerrors.ErrValidation)
}

func TestIndentation_Times(t *testing.T) {
	assert.Equal(t, "", DefaultIndentation.Times(0))
	assert.Equal(t, "  ", DefaultIndentation.Times(1))
	assert.Equal(t, "    ", DefaultIndentation.Times(2))
	assert.Equal(t, "        ", Indentation(4).Times(2))
	assert.Equal(t, "", Indentation(0).Times(3))
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "org.postgresql:postgresql", Subject(AddDirectJavaDependency{
		Dependency: JavaDependency{DependencyID: DependencyID{GroupID: "org.postgresql", ArtifactID: "postgresql"}},
	}))
	assert.Equal(t, "jacoco", Subject(AddGradlePlugin{Plugin: CorePlugin{ID: "jacoco"}}))
	assert.Equal(t, "local", Subject(AddJavaBuildProfile{ProfileID: "local"}))
	assert.Equal(t, "", Subject(AddGradlePlugin{}))
}
