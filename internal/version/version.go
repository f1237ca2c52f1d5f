// Package version provides version information for seedctl.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// catalogParser is the module reading and writing version catalogs.
const catalogParser = "github.com/pelletier/go-toml/v2"

// Info contains version information.
type Info struct {
	// Version is the CLI version (set via ldflags).
	Version string `json:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion"`

	// CatalogParser is the version of the TOML module linked into the binary,
	// empty when build info is unavailable.
	CatalogParser string `json:"catalogParser,omitempty"`
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:       Version,
		GitCommit:     GitCommit,
		BuildDate:     BuildDate,
		GoVersion:     runtime.Version(),
		CatalogParser: moduleVersion(catalogParser),
	}
}

func moduleVersion(path string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, dep := range info.Deps {
		if dep.Path == path {
			return dep.Version
		}
	}
	return ""
}

// String returns a human-readable version string.
func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "seedctl:\n  Version:  %s\n  Build ID: %s/%s\n  Go:       %s\n",
		i.Version, i.BuildDate, i.GitCommit, i.GoVersion)

	parser := i.CatalogParser
	if parser == "" {
		parser = "unknown"
	}
	fmt.Fprintf(&sb, "\nBuild tools:\n  gradle  patched (catalog %s)\n  maven   detected only", parser)
	return sb.String()
}
