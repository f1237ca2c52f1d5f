package gradle

import (
	"errors"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	oerrors "github.com/seedctl/seedctl/internal/errors"
	"github.com/seedctl/seedctl/internal/javabuild"
	"github.com/seedctl/seedctl/internal/output"
	"github.com/seedctl/seedctl/internal/projectfiles"
)

// Catalog sections.
const (
	sectionVersions  = "versions"
	sectionLibraries = "libraries"
	sectionPlugins   = "plugins"
	sectionBundles   = "bundles"
)

var sectionHeader = regexp.MustCompile(`^[ \t]*\[([^\[\]]+)\][ \t]*(?:#.*)?$`)

// Library is a library entry of the versions catalog.
type Library struct {
	Alias      string
	Group      string
	Name       string
	VersionRef string
	Version    string

	// Module is set for entries declared as module = "group:name".
	Module bool
}

// Coordinate returns "group:name".
func (l Library) Coordinate() string {
	return l.Group + ":" + l.Name
}

// Plugin is a plugin entry of the versions catalog.
type Plugin struct {
	Alias      string
	ID         string
	VersionRef string
	Version    string
}

// CatalogFiles is the part of the project file gateway used by the catalog.
type CatalogFiles interface {
	ReadString(p projectfiles.FilePath) (string, error)
	WriteString(p projectfiles.FilePath, content string) error
}

// VersionsCatalog edits gradle/libs.versions.toml. Every operation reads the
// file, applies its change and writes the file back only when an entry
// changed. Sections keep their order and untouched sections keep their text;
// a changed section is rendered again with entries sorted, losing its
// comments. New sections follow in a fixed order. A missing catalog is an
// empty one.
type VersionsCatalog struct {
	files CatalogFiles
	path  projectfiles.FilePath
}

// NewVersionsCatalog creates a catalog stored in the project of files.
func NewVersionsCatalog(files CatalogFiles) *VersionsCatalog {
	return &VersionsCatalog{files: files, path: CatalogFile}
}

// catalogDocument is the parsed catalog. Sections other than versions,
// libraries and plugins are carried through as decoded.
type catalogDocument struct {
	versions  map[string]string
	libraries map[string]Library
	plugins   map[string]Plugin
	others    map[string]any

	// Source text: what precedes the first table, the sections in file order
	// and the text of each section that has a single header.
	preamble string
	order    []string
	raw      map[string]string
}

// SetVersion declares or updates a version.
func (c *VersionsCatalog) SetVersion(version javabuild.Version) (bool, error) {
	return c.update(func(doc *catalogDocument) {
		doc.versions[version.Slug] = version.Value
	})
}

// AddLibrary registers the library alias of dep. Registering the same
// coordinates again rewrites the same entry.
func (c *VersionsCatalog) AddLibrary(dep javabuild.JavaDependency) (bool, error) {
	return c.update(func(doc *catalogDocument) {
		alias := dep.Alias()
		library := Library{
			Alias:      alias,
			Group:      dep.GroupID,
			Name:       dep.ArtifactID,
			VersionRef: dep.VersionSlug,
		}
		if existing, ok := doc.libraries[alias]; ok && existing.Coordinate() == library.Coordinate() {
			library.Module = existing.Module
		}
		doc.libraries[alias] = library
	})
}

// RemoveLibrary removes every library alias with the given coordinates, and
// the aliases from the bundles listing them. A bundle left empty is removed.
func (c *VersionsCatalog) RemoveLibrary(id javabuild.DependencyID) (bool, error) {
	return c.update(func(doc *catalogDocument) {
		removed := make(map[string]bool)
		for alias, library := range doc.libraries {
			if library.Group == id.GroupID && library.Name == id.ArtifactID {
				delete(doc.libraries, alias)
				removed[alias] = true
			}
		}
		doc.pruneBundles(removed)
	})
}

// AddPlugin registers the plugin alias of a community plugin.
func (c *VersionsCatalog) AddPlugin(plugin javabuild.CommunityPlugin) (bool, error) {
	return c.update(func(doc *catalogDocument) {
		alias := plugin.Alias()
		doc.plugins[alias] = Plugin{Alias: alias, ID: plugin.ID, VersionRef: plugin.VersionSlug}
	})
}

// DependencySlugs returns the sorted aliases of libraries with the given
// coordinates.
func (c *VersionsCatalog) DependencySlugs(id javabuild.DependencyID) ([]string, error) {
	doc, err := c.load()
	if err != nil {
		return nil, err
	}

	var slugs []string
	for alias, library := range doc.libraries {
		if library.Group == id.GroupID && library.Name == id.ArtifactID {
			slugs = append(slugs, alias)
		}
	}
	sort.Strings(slugs)
	return slugs, nil
}

// Versions returns the declared versions.
func (c *VersionsCatalog) Versions() (map[string]string, error) {
	doc, err := c.load()
	if err != nil {
		return nil, err
	}
	return doc.versions, nil
}

// Libraries returns the libraries sorted by alias.
func (c *VersionsCatalog) Libraries() ([]Library, error) {
	doc, err := c.load()
	if err != nil {
		return nil, err
	}

	libraries := make([]Library, 0, len(doc.libraries))
	for _, alias := range sortedKeys(doc.libraries) {
		libraries = append(libraries, doc.libraries[alias])
	}
	return libraries, nil
}

// Plugins returns the plugins sorted by alias.
func (c *VersionsCatalog) Plugins() ([]Plugin, error) {
	doc, err := c.load()
	if err != nil {
		return nil, err
	}

	plugins := make([]Plugin, 0, len(doc.plugins))
	for _, alias := range sortedKeys(doc.plugins) {
		plugins = append(plugins, doc.plugins[alias])
	}
	return plugins, nil
}

func (c *VersionsCatalog) update(change func(doc *catalogDocument)) (bool, error) {
	doc, err := c.load()
	if err != nil {
		return false, err
	}

	before, err := doc.renderSections()
	if err != nil {
		return false, fmt.Errorf("rendering %s: %w: %w", c.path, oerrors.ErrCatalog, err)
	}
	change(doc)
	after, err := doc.renderSections()
	if err != nil {
		return false, fmt.Errorf("rendering %s: %w: %w", c.path, oerrors.ErrCatalog, err)
	}
	if maps.Equal(before, after) {
		return false, nil
	}
	if err := c.files.WriteString(c.path, doc.write(before, after)); err != nil {
		return false, err
	}

	output.FileLogger(c.path.String()).Debug("catalog updated")
	return true, nil
}

func (c *VersionsCatalog) load() (*catalogDocument, error) {
	doc := &catalogDocument{
		versions:  make(map[string]string),
		libraries: make(map[string]Library),
		plugins:   make(map[string]Plugin),
		others:    make(map[string]any),
		raw:       make(map[string]string),
	}

	content, err := c.files.ReadString(c.path)
	if err != nil {
		if errors.Is(err, oerrors.ErrNotFound) {
			return doc, nil
		}
		return nil, err
	}
	var tree map[string]any
	if err := toml.Unmarshal([]byte(content), &tree); err != nil {
		return nil, c.parseError(err)
	}
	doc.preamble, doc.order, doc.raw = splitSections(content)

	for key, value := range tree {
		switch key {
		case sectionVersions:
			if err := decodeVersions(value, doc.versions); err != nil {
				return nil, c.parseError(err)
			}
		case sectionLibraries:
			if err := decodeEntries(value, func(alias string, entry map[string]any) error {
				library, err := decodeLibrary(alias, entry)
				doc.libraries[alias] = library
				return err
			}); err != nil {
				return nil, c.parseError(err)
			}
		case sectionPlugins:
			if err := decodeEntries(value, func(alias string, entry map[string]any) error {
				plugin, err := decodePlugin(alias, entry)
				doc.plugins[alias] = plugin
				return err
			}); err != nil {
				return nil, c.parseError(err)
			}
		default:
			doc.others[key] = value
		}
	}

	return doc, nil
}

func (c *VersionsCatalog) parseError(err error) error {
	return fmt.Errorf("parsing %s: %w: %w", c.path, oerrors.ErrCatalog, err)
}

func decodeVersions(value any, into map[string]string) error {
	table, ok := value.(map[string]any)
	if !ok {
		return fmt.Errorf("[%s] is not a table", sectionVersions)
	}
	for slug, v := range table {
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("version %q is not a string", slug)
		}
		into[slug] = s
	}
	return nil
}

func decodeEntries(value any, decode func(alias string, entry map[string]any) error) error {
	table, ok := value.(map[string]any)
	if !ok {
		return errors.New("section is not a table")
	}
	for alias, v := range table {
		entry, ok := v.(map[string]any)
		if !ok {
			return fmt.Errorf("entry %q is not a table", alias)
		}
		if err := decode(alias, entry); err != nil {
			return err
		}
	}
	return nil
}

func decodeLibrary(alias string, entry map[string]any) (Library, error) {
	library := Library{Alias: alias}
	library.Group, _ = entry["group"].(string)
	library.Name, _ = entry["name"].(string)

	if module, ok := entry["module"].(string); ok {
		group, name, found := strings.Cut(module, ":")
		if !found {
			return library, fmt.Errorf("library %q has an invalid module %q", alias, module)
		}
		library.Group, library.Name = group, name
		library.Module = true
	}
	if library.Group == "" || library.Name == "" {
		return library, fmt.Errorf("library %q has no coordinates", alias)
	}

	var err error
	library.Version, library.VersionRef, err = decodeVersion(entry["version"])
	if err != nil {
		return library, fmt.Errorf("library %q: %w", alias, err)
	}
	return library, nil
}

func decodePlugin(alias string, entry map[string]any) (Plugin, error) {
	plugin := Plugin{Alias: alias}
	plugin.ID, _ = entry["id"].(string)
	if plugin.ID == "" {
		return plugin, fmt.Errorf("plugin %q has no id", alias)
	}

	var err error
	plugin.Version, plugin.VersionRef, err = decodeVersion(entry["version"])
	if err != nil {
		return plugin, fmt.Errorf("plugin %q: %w", alias, err)
	}
	return plugin, nil
}

// decodeVersion reads either a literal version or a { ref = "..." } table.
func decodeVersion(value any) (version, ref string, err error) {
	switch v := value.(type) {
	case nil:
		return "", "", nil
	case string:
		return v, "", nil
	case map[string]any:
		ref, _ = v["ref"].(string)
		if ref == "" {
			return "", "", errors.New("version table without ref")
		}
		return "", ref, nil
	default:
		return "", "", fmt.Errorf("unsupported version %v", value)
	}
}

// renderSections renders every non-empty section, header included, entries
// sorted by alias.
func (d *catalogDocument) renderSections() (map[string]string, error) {
	versions := make(map[string]any, len(d.versions))
	for slug, value := range d.versions {
		versions[slug] = value
	}
	libraries := make(map[string]any, len(d.libraries))
	for alias, library := range d.libraries {
		entry := map[string]any{"group": library.Group, "name": library.Name}
		if library.Module {
			entry = map[string]any{"module": library.Coordinate()}
		}
		addVersion(entry, library.Version, library.VersionRef)
		libraries[alias] = entry
	}
	plugins := make(map[string]any, len(d.plugins))
	for alias, plugin := range d.plugins {
		entry := map[string]any{"id": plugin.ID}
		addVersion(entry, plugin.Version, plugin.VersionRef)
		plugins[alias] = entry
	}

	sections := map[string]map[string]any{
		sectionVersions:  versions,
		sectionLibraries: libraries,
		sectionPlugins:   plugins,
	}
	for name, value := range d.others {
		entries, ok := value.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("unsupported top-level key %q", name)
		}
		sections[name] = entries
	}

	rendered := make(map[string]string, len(sections))
	for name, entries := range sections {
		if len(entries) == 0 {
			continue
		}
		var b strings.Builder
		b.WriteString("[" + name + "]\n")
		enc := toml.NewEncoder(&b)
		enc.SetTablesInline(true)
		if err := enc.Encode(entries); err != nil {
			return nil, err
		}
		rendered[name] = b.String()
	}
	return rendered, nil
}

// write assembles the catalog file. A section rendering the same before and
// after a change keeps its source text.
func (d *catalogDocument) write(before, after map[string]string) string {
	var b strings.Builder
	b.WriteString(d.preamble)
	if d.preamble != "" && !strings.HasSuffix(d.preamble, "\n") {
		b.WriteString("\n")
	}

	written := false
	for _, name := range d.sectionOrder(after) {
		text := after[name]
		if raw, ok := d.raw[name]; ok && before[name] == text {
			text = strings.TrimRight(raw, " \t\r\n") + "\n"
		}
		if text == "" {
			continue
		}
		if written {
			b.WriteString("\n")
		}
		b.WriteString(text)
		written = true
	}
	return b.String()
}

// sectionOrder lists the sections of the file first, then new sections:
// versions, libraries, plugins and the others sorted by name.
func (d *catalogDocument) sectionOrder(rendered map[string]string) []string {
	order := append([]string(nil), d.order...)
	seen := make(map[string]bool, len(order))
	for _, name := range order {
		seen[name] = true
	}
	for _, name := range append([]string{sectionVersions, sectionLibraries, sectionPlugins}, sortedKeys(rendered)...) {
		if !seen[name] {
			order = append(order, name)
			seen[name] = true
		}
	}
	return order
}

// pruneBundles drops removed library aliases from the bundles section.
func (d *catalogDocument) pruneBundles(removed map[string]bool) {
	bundles, ok := d.others[sectionBundles].(map[string]any)
	if !ok || len(removed) == 0 {
		return
	}
	for name, value := range bundles {
		members, ok := value.([]any)
		if !ok {
			continue
		}
		kept := make([]any, 0, len(members))
		for _, member := range members {
			if alias, ok := member.(string); ok && removed[alias] {
				continue
			}
			kept = append(kept, member)
		}
		if len(kept) == 0 {
			delete(bundles, name)
		} else {
			bundles[name] = kept
		}
	}
	if len(bundles) == 0 {
		delete(d.others, sectionBundles)
	}
}

// splitSections cuts content at table headers. It returns the text before the
// first header, the top-level sections in file order and the text of each
// section declared under a single header, header included.
func splitSections(content string) (preamble string, order []string, raw map[string]string) {
	raw = make(map[string]string)
	scattered := make(map[string]bool)

	var current string
	var b strings.Builder
	flush := func() {
		switch {
		case current == "":
			preamble = b.String()
		case slices.Contains(order, current):
			scattered[current] = true
		default:
			order = append(order, current)
			raw[current] = b.String()
		}
		b.Reset()
	}

	for _, line := range strings.SplitAfter(content, "\n") {
		if m := sectionHeader.FindStringSubmatch(strings.TrimRight(line, "\r\n")); m != nil {
			flush()
			name := strings.TrimSpace(m[1])
			current, _, _ = strings.Cut(name, ".")
			current = strings.TrimSpace(current)
			if current != name {
				scattered[current] = true
			}
		}
		b.WriteString(line)
	}
	flush()

	for name := range scattered {
		delete(raw, name)
	}
	return preamble, order, raw
}

func addVersion(entry map[string]any, version, ref string) {
	switch {
	case ref != "":
		entry["version"] = map[string]any{"ref": ref}
	case version != "":
		entry["version"] = version
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
