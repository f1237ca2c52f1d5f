package gradle

import (
	"fmt"
	"regexp"
	"strings"

	oerrors "github.com/seedctl/seedctl/internal/errors"
	"github.com/seedctl/seedctl/internal/javabuild"
	"github.com/seedctl/seedctl/internal/output"
	"github.com/seedctl/seedctl/internal/projectfiles"
	"github.com/seedctl/seedctl/internal/replacement"
)

// notYetImplemented is the reason given for commands Gradle can't express yet.
const notYetImplemented = "Not yet implemented"

var profileIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// Files is the part of the project file gateway used by the handler.
type Files interface {
	ReadString(p projectfiles.FilePath) (string, error)
	WriteString(p projectfiles.FilePath, content string) error
	CopyIfMissing(source string, destination projectfiles.FilePath) (bool, error)
}

// CommandHandler applies build commands to a Gradle Kotlin DSL project.
type CommandHandler struct {
	indentation javabuild.Indentation
	files       Files
	replacer    *replacement.FileContentReplacer
	catalog     *VersionsCatalog
}

// NewCommandHandler creates a handler for the project behind files.
func NewCommandHandler(indentation javabuild.Indentation, files Files) *CommandHandler {
	if indentation <= 0 {
		indentation = javabuild.DefaultIndentation
	}
	return &CommandHandler{
		indentation: indentation,
		files:       files,
		replacer:    replacement.NewFileContentReplacer(files),
		catalog:     NewVersionsCatalog(files),
	}
}

// BuildTool returns javabuild.Gradle.
func (h *CommandHandler) BuildTool() javabuild.BuildTool {
	return javabuild.Gradle
}

// Catalog returns the versions catalog of the project.
func (h *CommandHandler) Catalog() *VersionsCatalog {
	return h.catalog
}

// Handle applies one command.
func (h *CommandHandler) Handle(cmd javabuild.Command) (javabuild.Outcome, error) {
	var changes changeSet

	switch c := cmd.(type) {
	case javabuild.SetVersion:
		changes.add(h.setVersion(c.Version))
	case javabuild.AddDirectJavaDependency:
		changes.add(h.addDependency(c.Dependency))
	case javabuild.AddJavaDependencyManagement:
		changes.add(h.addDependency(c.Dependency))
	case javabuild.RemoveDirectJavaDependency:
		changes.add(h.removeDependency(c.Dependency))
	case javabuild.RemoveJavaDependencyManagement:
		changes.add(h.removeDependency(c.Dependency))
	case javabuild.AddGradlePlugin:
		changes.add(h.addPlugin(c))
	case javabuild.AddJavaBuildProfile:
		changes.add(h.addProfile(c.ProfileID))
	case javabuild.PatchFile:
		changes.add(h.patchFile(c))
	case javabuild.AddDirectMavenPlugin, javabuild.AddMavenPluginManagement, javabuild.AddMavenBuildExtension:
		output.Debug("maven command ignored by gradle", "kind", cmd.Kind())
		return javabuild.Ignored(), nil
	case javabuild.SetBuildProperty:
		return javabuild.Unsupported(notYetImplemented), nil
	default:
		return javabuild.Outcome{}, fmt.Errorf("unknown command %T: %w", cmd, oerrors.ErrValidation)
	}

	if changes.err != nil {
		return javabuild.Outcome{}, changes.err
	}
	return javabuild.Applied(changes.changed), nil
}

func (h *CommandHandler) setVersion(version javabuild.Version) (bool, error) {
	if err := version.Validate(); err != nil {
		return false, err
	}
	return h.catalog.SetVersion(version)
}

func (h *CommandHandler) addDependency(dep javabuild.JavaDependency) (bool, error) {
	if err := dep.Validate(); err != nil {
		return false, err
	}

	var changes changeSet
	changes.add(h.catalog.AddLibrary(dep))
	if changes.err != nil {
		return false, changes.err
	}

	changes.add(h.insertBefore(dependencyNeedles[ScopeOf(dep.Scope)], h.dependencyDeclaration(dep)))
	return changes.changed, changes.err
}

// dependencyDeclaration renders the dependencies block line of dep.
func (h *CommandHandler) dependencyDeclaration(dep javabuild.JavaDependency) string {
	var b strings.Builder

	b.WriteString(h.indentation.Times(1))
	b.WriteString(string(ScopeOf(dep.Scope)))
	b.WriteString("(")
	if dep.Scope == javabuild.ScopeImport {
		b.WriteString("platform(" + catalogReference(dep.Alias()) + ")")
	} else {
		b.WriteString(catalogReference(dep.Alias()))
	}
	b.WriteString(")")

	if len(dep.Exclusions) > 0 {
		b.WriteString(" {")
		for _, exclusion := range dep.Exclusions {
			b.WriteString("\n")
			b.WriteString(h.indentation.Times(2))
			fmt.Fprintf(&b, "exclude(group = %q, module = %q)", exclusion.GroupID, exclusion.ArtifactID)
		}
		b.WriteString("\n")
		b.WriteString(h.indentation.Times(1))
		b.WriteString("}")
	}

	return b.String()
}

func (h *CommandHandler) removeDependency(id javabuild.DependencyID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	slugs, err := h.catalog.DependencySlugs(id)
	if err != nil {
		return false, err
	}

	replacers := make([]replacement.FileReplacer, 0, len(slugs))
	for _, slug := range slugs {
		replacers = append(replacers, replacement.MandatoryFile(BuildFile, replacement.Optional(
			replacement.NewRegexReplacer(replacement.Always(), dependencyLinePattern(slug), replacement.All),
			"",
		)))
	}

	var changes changeSet
	changes.addWritten(h.replacer.Apply(replacers...))
	if changes.err != nil {
		return false, changes.err
	}
	changes.add(h.catalog.RemoveLibrary(id))
	return changes.changed, changes.err
}

// dependencyLinePattern matches a declaration of the library alias in any
// configuration, with its optional platform wrapper and exclusion block, and
// the line break ending it.
func dependencyLinePattern(alias string) *regexp.Regexp {
	scopes := make([]string, 0, len(Scopes))
	for _, scope := range Scopes {
		scopes = append(scopes, string(scope))
	}

	return regexp.MustCompile(fmt.Sprintf(
		`(?m)^[ \t]*(?:%s)\((?:platform\()?%s\)?\)(?:\s+\{(?:\s+exclude\([^)]*\))+\s+\})?[ \t]*\r?$\n?`,
		strings.Join(scopes, "|"),
		regexp.QuoteMeta(catalogReference(alias)),
	))
}

func (h *CommandHandler) addPlugin(cmd javabuild.AddGradlePlugin) (bool, error) {
	var changes changeSet

	switch plugin := cmd.Plugin.(type) {
	case javabuild.CorePlugin:
		if strings.TrimSpace(plugin.ID) == "" {
			return false, oerrors.NewValidationError("gradle plugin id is required", "", "id", "")
		}
		changes.add(h.declarePlugin(plugin.ID))
	case javabuild.CommunityPlugin:
		if strings.TrimSpace(plugin.ID) == "" {
			return false, oerrors.NewValidationError("gradle plugin id is required", "", "id", "")
		}
		changes.add(h.declarePlugin("alias(" + pluginCatalogReference(plugin.Alias()) + ")"))
		if changes.err == nil {
			changes.add(h.catalog.AddPlugin(plugin))
		}
	default:
		return false, oerrors.NewValidationError("gradle plugin is missing", "", "plugin",
			"Declare either a core or a community plugin.")
	}
	if changes.err != nil {
		return false, changes.err
	}

	if configuration := cmd.Plugin.Configuration(); configuration != "" {
		changes.add(h.insertBefore(pluginsConfigurationsNeedle, "\n"+configuration))
	}
	for _, version := range []*javabuild.Version{cmd.ToolVersion, cmd.PluginVersion} {
		if version != nil && changes.err == nil {
			changes.add(h.setVersion(*version))
		}
	}

	return changes.changed, changes.err
}

func (h *CommandHandler) declarePlugin(declaration string) (bool, error) {
	return h.insertBefore(pluginsNeedle, h.indentation.Times(1)+declaration)
}

func (h *CommandHandler) addProfile(profileID string) (bool, error) {
	if !profileIDPattern.MatchString(profileID) {
		return false, oerrors.NewValidationError(
			fmt.Sprintf("invalid build profile id %q", profileID), "", "id",
			"Use letters, digits, '-' and '_' only.")
	}

	var changes changeSet

	// Prerequisites shared by every profile.
	changes.addWritten(h.replacer.Apply(
		h.mandatoryInsertion(profileActivationNeedle, h.profilesProperty()),
		h.mandatoryInsertion(processResourcesNeedle, h.profilesFilter()),
	))
	if changes.err == nil {
		changes.add(h.files.CopyIfMissing(BuildSrcTemplate, BuildSrcFile))
	}
	if changes.err != nil {
		return false, changes.err
	}

	changes.add(h.insertBefore(profileActivationNeedle, h.profileActivation(profileID)))
	if changes.err != nil {
		return false, changes.err
	}

	script, err := ProfileScriptFile(profileID)
	if err != nil {
		return false, err
	}
	changes.add(h.files.CopyIfMissing(ProfileScriptTemplate, script))
	return changes.changed, changes.err
}

func (h *CommandHandler) profilesProperty() string {
	i := h.indentation
	return `val profiles = (project.findProperty("profiles") as String? ?: "")` + "\n" +
		i.Times(1) + `.split(",")` + "\n" +
		i.Times(1) + `.map { it.trim() }` + "\n" +
		i.Times(1) + `.filter { it.isNotEmpty() }`
}

func (h *CommandHandler) profilesFilter() string {
	i := h.indentation
	return i.Times(1) + `filesMatching("**/application.yml") {` + "\n" +
		i.Times(2) + "filter {\n" +
		i.Times(3) + "// " + NeedleProfilesProperties + "\n" +
		i.Times(2) + "}\n" +
		i.Times(1) + "}"
}

func (h *CommandHandler) profileActivation(profileID string) string {
	return fmt.Sprintf("if (profiles.contains(%q)) {\n%sapply(plugin = %q)\n}",
		profileID, h.indentation.Times(1), "profile-"+profileID)
}

func (h *CommandHandler) mandatoryInsertion(needle *regexp.Regexp, text string) replacement.FileReplacer {
	return replacement.MandatoryFile(BuildFile, replacement.Mandatory(
		replacement.NewRegexNeedleBefore(replacement.NotContainingLines(), needle),
		text,
	))
}

func (h *CommandHandler) insertBefore(needle *regexp.Regexp, text string) (bool, error) {
	written, err := h.replacer.Apply(h.mandatoryInsertion(needle, text))
	return len(written) > 0, err
}

// catalogReference returns the accessor of a library alias, "libs.spring.boot"
// for "spring-boot".
func catalogReference(alias string) string {
	return "libs." + strings.ReplaceAll(alias, "-", ".")
}

func pluginCatalogReference(alias string) string {
	return "libs.plugins." + strings.ReplaceAll(alias, "-", ".")
}

// changeSet accumulates the result of several file operations.
type changeSet struct {
	changed bool
	err     error
}

func (c *changeSet) add(changed bool, err error) {
	c.changed = c.changed || changed
	if c.err == nil {
		c.err = err
	}
}

func (c *changeSet) addWritten(written []projectfiles.FilePath, err error) {
	c.add(len(written) > 0, err)
}
