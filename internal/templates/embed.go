package templates

import (
	"embed"
	"io/fs"
)

//go:embed all:project
var projectFS embed.FS

//go:embed resources
var resourcesFS embed.FS

// TemplateFS holds one directory of .tmpl files per project template.
var TemplateFS = mustSub(projectFS, "project")

// Resources returns the build resources copied into projects, rooted so that
// paths read like "buildtool/gradle/buildSrc/build.gradle.kts.template".
func Resources() fs.FS {
	return mustSub(resourcesFS, "resources")
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
