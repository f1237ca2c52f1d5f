package javabuild

// Command is a build change requested by a scaffolding module.
// Commands are immutable values; the set of commands is closed.
type Command interface {
	// Kind returns the command name used in reports and manifests.
	Kind() string

	isCommand()
}

// SetVersion declares or updates a named version.
type SetVersion struct {
	Version Version
}

// AddDirectJavaDependency declares a dependency used by the project.
type AddDirectJavaDependency struct {
	Dependency JavaDependency
}

// RemoveDirectJavaDependency removes a dependency declaration.
type RemoveDirectJavaDependency struct {
	Dependency DependencyID
}

// AddJavaDependencyManagement declares a managed dependency.
type AddJavaDependencyManagement struct {
	Dependency JavaDependency
}

// RemoveJavaDependencyManagement removes a managed dependency.
type RemoveJavaDependencyManagement struct {
	Dependency DependencyID
}

// AddGradlePlugin declares a Gradle plugin. ToolVersion and PluginVersion are
// declared as versions when set.
type AddGradlePlugin struct {
	Plugin        GradlePlugin
	ToolVersion   *Version
	PluginVersion *Version
}

// AddDirectMavenPlugin declares a Maven build plugin.
type AddDirectMavenPlugin struct {
	Plugin MavenPlugin
}

// AddMavenPluginManagement declares a managed Maven build plugin.
type AddMavenPluginManagement struct {
	Plugin MavenPlugin
}

// AddMavenBuildExtension declares a Maven build extension.
type AddMavenBuildExtension struct {
	Extension MavenBuildExtension
}

// SetBuildProperty sets a build property.
type SetBuildProperty struct {
	Property BuildProperty
}

// AddJavaBuildProfile declares a build profile.
type AddJavaBuildProfile struct {
	ProfileID string
}

func (SetVersion) Kind() string                     { return "SetVersion" }
func (AddDirectJavaDependency) Kind() string        { return "AddDirectJavaDependency" }
func (RemoveDirectJavaDependency) Kind() string     { return "RemoveDirectJavaDependency" }
func (AddJavaDependencyManagement) Kind() string    { return "AddJavaDependencyManagement" }
func (RemoveJavaDependencyManagement) Kind() string { return "RemoveJavaDependencyManagement" }
func (AddGradlePlugin) Kind() string                { return "AddGradlePlugin" }
func (AddDirectMavenPlugin) Kind() string           { return "AddDirectMavenPlugin" }
func (AddMavenPluginManagement) Kind() string       { return "AddMavenPluginManagement" }
func (AddMavenBuildExtension) Kind() string         { return "AddMavenBuildExtension" }
func (SetBuildProperty) Kind() string               { return "SetBuildProperty" }
func (AddJavaBuildProfile) Kind() string            { return "AddJavaBuildProfile" }

func (SetVersion) isCommand()                     {}
func (AddDirectJavaDependency) isCommand()        {}
func (RemoveDirectJavaDependency) isCommand()     {}
func (AddJavaDependencyManagement) isCommand()    {}
func (RemoveJavaDependencyManagement) isCommand() {}
func (AddGradlePlugin) isCommand()                {}
func (AddDirectMavenPlugin) isCommand()           {}
func (AddMavenPluginManagement) isCommand()       {}
func (AddMavenBuildExtension) isCommand()         {}
func (SetBuildProperty) isCommand()               {}
func (AddJavaBuildProfile) isCommand()            {}

// Subject returns a short description of what the command is about.
func Subject(cmd Command) string {
	switch c := cmd.(type) {
	case SetVersion:
		return c.Version.Slug
	case AddDirectJavaDependency:
		return c.Dependency.DependencyID.String()
	case RemoveDirectJavaDependency:
		return c.Dependency.String()
	case AddJavaDependencyManagement:
		return c.Dependency.DependencyID.String()
	case RemoveJavaDependencyManagement:
		return c.Dependency.String()
	case AddGradlePlugin:
		if c.Plugin == nil {
			return ""
		}
		return c.Plugin.PluginID()
	case AddDirectMavenPlugin:
		return c.Plugin.DependencyID.String()
	case AddMavenPluginManagement:
		return c.Plugin.DependencyID.String()
	case AddMavenBuildExtension:
		return c.Extension.DependencyID.String()
	case SetBuildProperty:
		return c.Property.Key
	case AddJavaBuildProfile:
		return c.ProfileID
	case PatchFile:
		return c.Path
	default:
		return ""
	}
}
