package templates

import (
	"fmt"
	"strings"
)

// DefaultTemplateName is the template used when --template is not specified.
const DefaultTemplateName = "gradle"

// templates is the internal registry of available templates.
var templates = map[string]Template{
	"gradle": {
		Name:        "gradle",
		Description: "Gradle Kotlin DSL project with a versions catalog",
		Default:     true,
		BuildTool:   "gradle",
	},
}

// Get returns a template by name.
func Get(name string) (Template, error) {
	t, ok := templates[name]
	if !ok {
		return Template{}, fmt.Errorf("unknown template %q; valid templates: %s", name, strings.Join(Names(), ", "))
	}
	return t, nil
}

// List returns all available templates.
func List() []Template {
	list := make([]Template, 0, len(templates))
	for _, name := range Names() {
		list = append(list, templates[name])
	}
	return list
}

// GetDefault returns the default template.
func GetDefault() Template {
	return templates[DefaultTemplateName]
}

// Names returns all template names.
func Names() []string {
	return []string{"gradle"}
}
