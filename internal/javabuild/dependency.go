// Package javabuild holds the build-tool neutral commands produced by
// scaffolding modules and the machinery applying them through a build-tool
// specific Handler.
package javabuild

import (
	"fmt"
	"strings"

	oerrors "github.com/seedctl/seedctl/internal/errors"
)

// DependencyScope is the build scope of a Java dependency.
type DependencyScope string

const (
	ScopeCompile  DependencyScope = "compile"
	ScopeImport   DependencyScope = "import"
	ScopeProvided DependencyScope = "provided"
	ScopeRuntime  DependencyScope = "runtime"
	ScopeTest     DependencyScope = "test"
)

// ParseScope parses a scope name. The empty string is the compile scope.
func ParseScope(s string) (DependencyScope, error) {
	switch scope := DependencyScope(strings.ToLower(strings.TrimSpace(s))); scope {
	case "":
		return ScopeCompile, nil
	case ScopeCompile, ScopeImport, ScopeProvided, ScopeRuntime, ScopeTest:
		return scope, nil
	default:
		return "", oerrors.NewValidationError(
			fmt.Sprintf("unknown dependency scope %q", s), "", "scope",
			"Use one of compile, import, provided, runtime, test.")
	}
}

// DependencyID identifies a dependency by its coordinates.
type DependencyID struct {
	GroupID    string `json:"groupId"`
	ArtifactID string `json:"artifactId"`
}

// String returns "group:artifact".
func (id DependencyID) String() string {
	return id.GroupID + ":" + id.ArtifactID
}

// Validate checks that both coordinates are set.
func (id DependencyID) Validate() error {
	if strings.TrimSpace(id.GroupID) == "" {
		return oerrors.NewValidationError("dependency groupId is required", "", "groupId", "")
	}
	if strings.TrimSpace(id.ArtifactID) == "" {
		return oerrors.NewValidationError("dependency artifactId is required", "", "artifactId", "")
	}
	return nil
}

// JavaDependency is a dependency to declare in a build script.
type JavaDependency struct {
	DependencyID

	// VersionSlug references a version declared with SetVersion.
	VersionSlug string

	// Slug overrides the alias derived from the artifactId.
	Slug string

	Scope      DependencyScope
	Exclusions []DependencyID
}

// Alias returns the catalog alias of the dependency: the explicit slug, or
// the artifactId lowercased with '.' and '_' turned into '-'.
func (d JavaDependency) Alias() string {
	if d.Slug != "" {
		return d.Slug
	}
	return Slugify(d.ArtifactID)
}

// Slugify turns an identifier into an alias.
func Slugify(s string) string {
	return strings.NewReplacer(".", "-", "_", "-").Replace(strings.ToLower(strings.TrimSpace(s)))
}

// Version is a named version shared by dependencies and plugins.
type Version struct {
	Slug  string `json:"slug"`
	Value string `json:"version"`
}

// Validate checks that both the slug and the value are set.
func (v Version) Validate() error {
	if strings.TrimSpace(v.Slug) == "" {
		return oerrors.NewValidationError("version slug is required", "", "slug", "")
	}
	if strings.TrimSpace(v.Value) == "" {
		return oerrors.NewValidationError(fmt.Sprintf("version %q has no value", v.Slug), "", "version", "")
	}
	return nil
}

// Indentation is the number of spaces of one indentation level.
type Indentation int

// DefaultIndentation is used when no indentation is configured.
const DefaultIndentation Indentation = 2

// Times returns n indentation levels.
func (i Indentation) Times(n int) string {
	if i <= 0 || n <= 0 {
		return ""
	}
	return strings.Repeat(" ", int(i)*n)
}
