package javabuild

// GradlePlugin is either a CorePlugin or a CommunityPlugin.
type GradlePlugin interface {
	// PluginID returns the plugin id.
	PluginID() string

	// Configuration returns the project-level configuration block, if any.
	Configuration() string

	isGradlePlugin()
}

// CorePlugin is a plugin bundled with Gradle, declared by its id.
type CorePlugin struct {
	ID     string
	Config string
}

func (p CorePlugin) PluginID() string      { return p.ID }
func (p CorePlugin) Configuration() string { return p.Config }
func (CorePlugin) isGradlePlugin()         {}

// CommunityPlugin is a plugin resolved from the plugin portal through the
// versions catalog.
type CommunityPlugin struct {
	ID          string
	PluginSlug  string
	VersionSlug string
	Config      string
}

func (p CommunityPlugin) PluginID() string      { return p.ID }
func (p CommunityPlugin) Configuration() string { return p.Config }
func (CommunityPlugin) isGradlePlugin()         {}

// Alias returns the catalog alias of the plugin: the explicit slug, or the
// slugified id.
func (p CommunityPlugin) Alias() string {
	if p.PluginSlug != "" {
		return p.PluginSlug
	}
	return Slugify(p.ID)
}

// MavenPlugin is a Maven build plugin.
type MavenPlugin struct {
	DependencyID
	VersionSlug string
}

// MavenBuildExtension is a Maven build extension.
type MavenBuildExtension struct {
	DependencyID
	VersionSlug string
}

// BuildProperty is a build property, optionally scoped to a profile.
type BuildProperty struct {
	Key     string
	Value   string
	Profile string
}
