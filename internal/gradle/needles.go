// Package gradle applies build commands to Gradle Kotlin DSL projects. Build
// scripts are patched at needle comments, library and plugin coordinates live
// in the versions catalog.
package gradle

import (
	"regexp"

	"github.com/seedctl/seedctl/internal/projectfiles"
)

// Needle comments of build.gradle.kts. The text of each needle is part of the
// project template contract.
const (
	NeedlePlugins                    = "seed-needle-gradle-plugins"
	NeedlePluginsConfigurations      = "seed-needle-gradle-plugins-configurations"
	NeedleImplementationDependencies = "seed-needle-gradle-implementation-dependencies"
	NeedleCompileDependencies        = "seed-needle-gradle-compile-dependencies"
	NeedleRuntimeDependencies        = "seed-needle-gradle-runtime-dependencies"
	NeedleTestDependencies           = "seed-needle-gradle-test-dependencies"
	NeedleProfileActivation          = "seed-needle-profile-activation"
	NeedleProcessResources           = "seed-needle-gradle-process-resources"
	NeedleProfilesProperties         = "seed-needle-gradle-profiles-properties"
)

var (
	pluginsNeedle               = indentedNeedle(NeedlePlugins)
	pluginsConfigurationsNeedle = topLevelNeedle(NeedlePluginsConfigurations)
	profileActivationNeedle     = topLevelNeedle(NeedleProfileActivation)
	processResourcesNeedle      = indentedNeedle(NeedleProcessResources)

	dependencyNeedles = map[Scope]*regexp.Regexp{
		Implementation:     indentedNeedle(NeedleImplementationDependencies),
		CompileOnly:        indentedNeedle(NeedleCompileDependencies),
		RuntimeOnly:        indentedNeedle(NeedleRuntimeDependencies),
		TestImplementation: indentedNeedle(NeedleTestDependencies),
	}
)

// Project files written by the handler.
var (
	BuildFile    = projectfiles.MustFilePath("build.gradle.kts")
	CatalogFile  = projectfiles.MustFilePath("gradle/libs.versions.toml")
	BuildSrcFile = projectfiles.MustFilePath("buildSrc/build.gradle.kts")
)

const profileScriptDir = "buildSrc/src/main/kotlin"

// Template resources copied into projects.
const (
	BuildSrcTemplate      = "buildtool/gradle/buildSrc/build.gradle.kts.template"
	ProfileScriptTemplate = "buildtool/gradle/buildSrc/src/main/kotlin/profile.gradle.kts.template"
)

// indentedNeedle matches a needle comment line nested in a block. Lines may
// end with "\r\n".
func indentedNeedle(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^[ \t]+// ` + regexp.QuoteMeta(name) + `\r?$`)
}

// topLevelNeedle matches a needle comment line at column zero.
func topLevelNeedle(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^// ` + regexp.QuoteMeta(name) + `\r?$`)
}

// ProfileScriptFile returns the precompiled script plugin of a build profile.
func ProfileScriptFile(profileID string) (projectfiles.FilePath, error) {
	return projectfiles.NewFilePath(profileScriptDir + "/profile-" + profileID + ".gradle.kts")
}
