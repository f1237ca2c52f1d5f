// Package manifest decodes command manifests: YAML or JSON documents listing
// the build commands to apply to a project, in order.
package manifest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"

	oerrors "github.com/seedctl/seedctl/internal/errors"
	"github.com/seedctl/seedctl/internal/javabuild"
)

// Manifest is a decoded command manifest.
type Manifest struct {
	Commands []Entry `json:"commands"`
}

// Entry holds exactly one command.
type Entry struct {
	SetVersion                 *javabuild.Version      `json:"setVersion,omitempty"`
	AddDirectDependency        *Dependency             `json:"addDirectDependency,omitempty"`
	RemoveDirectDependency     *javabuild.DependencyID `json:"removeDirectDependency,omitempty"`
	AddDependencyManagement    *Dependency             `json:"addDependencyManagement,omitempty"`
	RemoveDependencyManagement *javabuild.DependencyID `json:"removeDependencyManagement,omitempty"`
	AddGradlePlugin            *GradlePlugin           `json:"addGradlePlugin,omitempty"`
	AddMavenPlugin             *MavenPlugin            `json:"addMavenPlugin,omitempty"`
	AddMavenPluginManagement   *MavenPlugin            `json:"addMavenPluginManagement,omitempty"`
	AddMavenBuildExtension     *MavenPlugin            `json:"addMavenBuildExtension,omitempty"`
	SetBuildProperty           *BuildProperty          `json:"setBuildProperty,omitempty"`
	AddBuildProfile            *BuildProfile           `json:"addBuildProfile,omitempty"`
	PatchFile                  *PatchFile              `json:"patchFile,omitempty"`
}

// Dependency is a Java dependency entry.
type Dependency struct {
	GroupID     string                   `json:"groupId"`
	ArtifactID  string                   `json:"artifactId"`
	VersionSlug string                   `json:"versionSlug,omitempty"`
	Slug        string                   `json:"slug,omitempty"`
	Scope       string                   `json:"scope,omitempty"`
	Exclusions  []javabuild.DependencyID `json:"exclusions,omitempty"`
}

// GradlePlugin declares either a core or a community plugin.
type GradlePlugin struct {
	Core          *CorePlugin        `json:"core,omitempty"`
	Community     *CommunityPlugin   `json:"community,omitempty"`
	ToolVersion   *javabuild.Version `json:"toolVersion,omitempty"`
	PluginVersion *javabuild.Version `json:"pluginVersion,omitempty"`
}

// CorePlugin is a plugin bundled with Gradle.
type CorePlugin struct {
	ID            string `json:"id"`
	Configuration string `json:"configuration,omitempty"`
}

// CommunityPlugin is a plugin resolved through the versions catalog.
type CommunityPlugin struct {
	ID            string `json:"id"`
	PluginSlug    string `json:"pluginSlug,omitempty"`
	VersionSlug   string `json:"versionSlug,omitempty"`
	Configuration string `json:"configuration,omitempty"`
}

// MavenPlugin is a Maven plugin or build extension.
type MavenPlugin struct {
	GroupID     string `json:"groupId"`
	ArtifactID  string `json:"artifactId"`
	VersionSlug string `json:"versionSlug,omitempty"`
}

// BuildProperty is a build property entry.
type BuildProperty struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	Profile string `json:"profile,omitempty"`
}

// BuildProfile is a build profile entry.
type BuildProfile struct {
	ID string `json:"id"`
}

// PatchFile patches any project file with text replacements.
type PatchFile struct {
	Path         string        `json:"path"`
	Optional     bool          `json:"optional,omitempty"`
	Replacements []Replacement `json:"replacements"`
}

// Replacement is one text replacement of a PatchFile. Needle is literal text,
// Regex a multi-line regular expression.
type Replacement struct {
	Position string `json:"position"`
	Needle   string `json:"needle,omitempty"`
	Regex    string `json:"regex,omitempty"`
	Text     string `json:"text"`
	All      bool   `json:"all,omitempty"`
	Required bool   `json:"required,omitempty"`
	Once     bool   `json:"once,omitempty"`
}

// Load reads and decodes the manifest at path.
func Load(fsys afero.Fs, path string) (*Manifest, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, oerrors.NewNotFoundError(
			fmt.Sprintf("cannot read command manifest: %v", err), path,
			"Pass the path of a YAML or JSON command manifest.")
	}
	return Decode(data, path)
}

// Decode parses a YAML or JSON manifest. Unknown fields are rejected.
func Decode(data []byte, source string) (*Manifest, error) {
	var m Manifest
	if err := yaml.UnmarshalStrict(data, &m); err != nil {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("invalid command manifest: %v", err), source, "", "")
	}
	return &m, nil
}

// ToCommands validates every entry and converts the manifest to commands. All
// problems are reported together.
func (m *Manifest) ToCommands(source string) ([]javabuild.Command, error) {
	if len(m.Commands) == 0 {
		return nil, oerrors.NewValidationError("command manifest has no commands", source, "commands", "")
	}

	var result *multierror.Error
	commands := make([]javabuild.Command, 0, len(m.Commands))

	for i, entry := range m.Commands {
		cmd, err := entry.command()
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("commands[%d]: %w", i, err))
			continue
		}
		commands = append(commands, cmd)
	}

	if err := result.ErrorOrNil(); err != nil {
		result.ErrorFormat = listFormat
		return nil, &oerrors.DetailError{
			Type:     "validation failed",
			Message:  err.Error(),
			Location: source,
			Hint:     "Each entry of commands holds exactly one command.",
			Cause:    oerrors.ErrValidation,
		}
	}
	return commands, nil
}

func listFormat(errs []error) string {
	lines := make([]string, 0, len(errs))
	for _, err := range errs {
		lines = append(lines, "- "+err.Error())
	}
	return strings.Join(lines, "\n  ")
}

func (e Entry) command() (javabuild.Command, error) {
	var set []javabuild.Command
	var result *multierror.Error
	add := func(cmd javabuild.Command, err error) {
		if err != nil {
			result = multierror.Append(result, err)
			return
		}
		set = append(set, cmd)
	}

	if e.SetVersion != nil {
		add(javabuild.SetVersion{Version: *e.SetVersion}, e.SetVersion.Validate())
	}
	if e.AddDirectDependency != nil {
		dep, err := e.AddDirectDependency.toJava()
		add(javabuild.AddDirectJavaDependency{Dependency: dep}, err)
	}
	if e.RemoveDirectDependency != nil {
		add(javabuild.RemoveDirectJavaDependency{Dependency: *e.RemoveDirectDependency}, e.RemoveDirectDependency.Validate())
	}
	if e.AddDependencyManagement != nil {
		dep, err := e.AddDependencyManagement.toJava()
		add(javabuild.AddJavaDependencyManagement{Dependency: dep}, err)
	}
	if e.RemoveDependencyManagement != nil {
		add(javabuild.RemoveJavaDependencyManagement{Dependency: *e.RemoveDependencyManagement}, e.RemoveDependencyManagement.Validate())
	}
	if e.AddGradlePlugin != nil {
		add(e.AddGradlePlugin.toCommand())
	}
	if e.AddMavenPlugin != nil {
		plugin, err := e.AddMavenPlugin.toJava()
		add(javabuild.AddDirectMavenPlugin{Plugin: plugin}, err)
	}
	if e.AddMavenPluginManagement != nil {
		plugin, err := e.AddMavenPluginManagement.toJava()
		add(javabuild.AddMavenPluginManagement{Plugin: plugin}, err)
	}
	if e.AddMavenBuildExtension != nil {
		plugin, err := e.AddMavenBuildExtension.toJava()
		add(javabuild.AddMavenBuildExtension{Extension: javabuild.MavenBuildExtension(plugin)}, err)
	}
	if e.SetBuildProperty != nil {
		add(e.SetBuildProperty.toCommand())
	}
	if e.AddBuildProfile != nil {
		add(e.AddBuildProfile.toCommand())
	}
	if e.PatchFile != nil {
		add(e.PatchFile.toCommand())
	}

	if err := result.ErrorOrNil(); err != nil {
		result.ErrorFormat = inlineFormat
		return nil, err
	}
	switch len(set) {
	case 0:
		return nil, errors.New("no command")
	case 1:
		return set[0], nil
	default:
		return nil, fmt.Errorf("%d commands in one entry", len(set))
	}
}

func inlineFormat(errs []error) string {
	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		messages = append(messages, firstLine(err))
	}
	return strings.Join(messages, "; ")
}

// firstLine returns the message of an error without the framing of a
// DetailError.
func firstLine(err error) string {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		return detail.Message
	}
	return err.Error()
}

func (d Dependency) toJava() (javabuild.JavaDependency, error) {
	dep := javabuild.JavaDependency{
		DependencyID: javabuild.DependencyID{GroupID: d.GroupID, ArtifactID: d.ArtifactID},
		VersionSlug:  d.VersionSlug,
		Slug:         d.Slug,
		Exclusions:   d.Exclusions,
	}
	if err := dep.Validate(); err != nil {
		return dep, err
	}
	for _, exclusion := range d.Exclusions {
		if err := exclusion.Validate(); err != nil {
			return dep, err
		}
	}

	scope, err := javabuild.ParseScope(d.Scope)
	if err != nil {
		return dep, err
	}
	dep.Scope = scope
	return dep, nil
}

func (p GradlePlugin) toCommand() (javabuild.Command, error) {
	cmd := javabuild.AddGradlePlugin{ToolVersion: p.ToolVersion, PluginVersion: p.PluginVersion}

	switch {
	case p.Core != nil && p.Community != nil:
		return nil, errors.New("gradle plugin is both core and community")
	case p.Core != nil:
		cmd.Plugin = javabuild.CorePlugin{ID: p.Core.ID, Config: p.Core.Configuration}
	case p.Community != nil:
		cmd.Plugin = javabuild.CommunityPlugin{
			ID:          p.Community.ID,
			PluginSlug:  p.Community.PluginSlug,
			VersionSlug: p.Community.VersionSlug,
			Config:      p.Community.Configuration,
		}
	default:
		return nil, errors.New("gradle plugin needs core or community")
	}

	if strings.TrimSpace(cmd.Plugin.PluginID()) == "" {
		return nil, errors.New("gradle plugin id is required")
	}
	for _, version := range []*javabuild.Version{p.ToolVersion, p.PluginVersion} {
		if version == nil {
			continue
		}
		if err := version.Validate(); err != nil {
			return nil, err
		}
	}
	return cmd, nil
}

func (p MavenPlugin) toJava() (javabuild.MavenPlugin, error) {
	plugin := javabuild.MavenPlugin{
		DependencyID: javabuild.DependencyID{GroupID: p.GroupID, ArtifactID: p.ArtifactID},
		VersionSlug:  p.VersionSlug,
	}
	return plugin, plugin.Validate()
}

func (p BuildProperty) toCommand() (javabuild.Command, error) {
	if strings.TrimSpace(p.Key) == "" {
		return nil, errors.New("build property key is required")
	}
	return javabuild.SetBuildProperty{Property: javabuild.BuildProperty(p)}, nil
}

func (p BuildProfile) toCommand() (javabuild.Command, error) {
	if strings.TrimSpace(p.ID) == "" {
		return nil, errors.New("build profile id is required")
	}
	return javabuild.AddJavaBuildProfile{ProfileID: p.ID}, nil
}

func (p PatchFile) toCommand() (javabuild.Command, error) {
	cmd := javabuild.PatchFile{Path: p.Path, Optional: p.Optional}
	for _, r := range p.Replacements {
		cmd.Patches = append(cmd.Patches, javabuild.FilePatch{
			Position: javabuild.PatchPosition(r.Position),
			Needle:   r.Needle,
			Pattern:  r.Regex,
			Text:     r.Text,
			All:      r.All,
			Required: r.Required,
			Once:     r.Once,
		})
	}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return cmd, nil
}
