package projectfiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/seedctl/seedctl/internal/errors"
)

func TestNewFilePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    FilePath
		wantErr bool
	}{
		{name: "plain file", input: "build.gradle.kts", want: "build.gradle.kts"},
		{name: "nested file", input: "gradle/libs.versions.toml", want: "gradle/libs.versions.toml"},
		{name: "dot segments cleaned", input: "./buildSrc/../buildSrc/build.gradle.kts", want: "buildSrc/build.gradle.kts"},
		{name: "empty", input: "", wantErr: true},
		{name: "blank", input: "   ", wantErr: true},
		{name: "current folder", input: ".", wantErr: true},
		{name: "absolute", input: "/etc/passwd", wantErr: true},
		{name: "escapes root", input: "../outside.txt", wantErr: true},
		{name: "escapes root after cleaning", input: "a/../../outside.txt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewFilePath(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, oerrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMustFilePath_Panics(t *testing.T) {
	assert.Panics(t, func() { MustFilePath("../x") })
	assert.NotPanics(t, func() { MustFilePath("x") })
}

func TestFilePath_Dir(t *testing.T) {
	assert.Equal(t, ".", MustFilePath("build.gradle.kts").Dir())
	assert.Equal(t, "buildSrc/src/main/kotlin", MustFilePath("buildSrc/src/main/kotlin/profile-local.gradle.kts").Dir())
}
