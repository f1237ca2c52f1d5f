package javabuild

import (
	oerrors "github.com/seedctl/seedctl/internal/errors"
	"github.com/seedctl/seedctl/internal/projectfiles"
)

// BuildTool names a build tool.
type BuildTool string

const (
	Gradle BuildTool = "gradle"
	Maven  BuildTool = "maven"
)

// Build scripts used to recognize a build tool.
var (
	GradleBuildFile = projectfiles.MustFilePath("build.gradle.kts")
	MavenBuildFile  = projectfiles.MustFilePath("pom.xml")
)

// ProjectFiles is the part of the project file gateway used for detection.
type ProjectFiles interface {
	Exists(p projectfiles.FilePath) (bool, error)
}

// DetectBuildTool returns the build tool of the project. Gradle wins when
// both build scripts exist.
func DetectBuildTool(files ProjectFiles) (BuildTool, error) {
	for _, candidate := range []struct {
		tool BuildTool
		file projectfiles.FilePath
	}{
		{Gradle, GradleBuildFile},
		{Maven, MavenBuildFile},
	} {
		ok, err := files.Exists(candidate.file)
		if err != nil {
			return "", err
		}
		if ok {
			return candidate.tool, nil
		}
	}

	return "", oerrors.NewNotFoundError("no build script found in project", "",
		"Expected build.gradle.kts or pom.xml at the project root. Run 'seedctl init' to create a project.")
}
