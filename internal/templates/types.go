// Package templates provides the embedded project templates rendered by
// seedctl init and the build resources copied into projects by commands.
package templates

// Template represents a project template with its metadata.
type Template struct {
	// Name is the template identifier.
	Name string

	// Description explains the template's purpose.
	Description string

	// Default indicates if this is the default template when --template is omitted.
	Default bool

	// BuildTool is the build tool of the generated project.
	BuildTool string
}

// TemplateData holds the data passed to template rendering.
type TemplateData struct {
	// ProjectName is the root project name.
	ProjectName string

	// Group is the Maven group of the project.
	Group string

	// Version is the initial project version.
	Version string

	// JavaVersion is the toolchain language version.
	JavaVersion int
}

// GenerateOptions configures project generation behavior.
type GenerateOptions struct {
	// TargetDir is the directory to generate the project in.
	TargetDir string

	// TemplateName is the template to use.
	TemplateName string

	// ProjectName overrides the directory name as root project name.
	ProjectName string

	// Group overrides the default project group.
	Group string

	// Force allows overwriting files in non-empty directories.
	Force bool
}

// GenerateResult contains the result of project generation.
type GenerateResult struct {
	// Files is the list of files created.
	Files []string

	// TemplateName is the template that was used.
	TemplateName string

	// TargetDir is the directory where files were created.
	TargetDir string
}
