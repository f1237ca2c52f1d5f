package javabuild

import (
	"testing"

	"github.com/stretchr/testify/assert"

	oerrors "github.com/seedctl/seedctl/internal/errors"
)

func TestFilePatch_Validate(t *testing.T) {
	tests := []struct {
		name    string
		patch   FilePatch
		wantErr bool
	}{
		{name: "text needle", patch: FilePatch{Position: PatchBefore, Needle: "# needle"}},
		{name: "regex needle", patch: FilePatch{Position: PatchAfter, Pattern: `^# needle$`}},
		{name: "replace", patch: FilePatch{Position: PatchReplace, Needle: "old", All: true}},
		{name: "end of file", patch: FilePatch{Position: PatchEndOfFile, Text: "x"}},
		{name: "file start", patch: FilePatch{Position: PatchFileStart, Text: "x"}},
		{name: "needle missing", patch: FilePatch{Position: PatchBefore}, wantErr: true},
		{name: "needle and regex", patch: FilePatch{Position: PatchAfter, Needle: "a", Pattern: "b"}, wantErr: true},
		{name: "invalid regex", patch: FilePatch{Position: PatchReplace, Pattern: "("}, wantErr: true},
		{name: "needle at file start", patch: FilePatch{Position: PatchFileStart, Needle: "a"}, wantErr: true},
		{name: "unknown position", patch: FilePatch{Position: "middle"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.patch.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, oerrors.ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPatchFile_Validate(t *testing.T) {
	valid := []FilePatch{{Position: PatchEndOfFile, Text: "x"}}

	assert.NoError(t, PatchFile{Path: "gradle.properties", Patches: valid}.Validate())
	assert.ErrorIs(t, PatchFile{Patches: valid}.Validate(), oerrors.ErrValidation)
	assert.ErrorIs(t, PatchFile{Path: "gradle.properties"}.Validate(), oerrors.ErrValidation)

	err := PatchFile{Path: "gradle.properties", Patches: append(valid, FilePatch{Position: "middle"})}.Validate()
	assert.ErrorIs(t, err, oerrors.ErrValidation)
	assert.Contains(t, err.Error(), "replacements[1]")
	assert.Equal(t, "gradle.properties", Subject(PatchFile{Path: "gradle.properties"}))
}
