package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/seedctl/seedctl/internal/cmdutil"
	"github.com/seedctl/seedctl/internal/gradle"
	"github.com/seedctl/seedctl/internal/javabuild"
	"github.com/seedctl/seedctl/internal/output"
)

// NewCatalogCmd creates the catalog command group.
func NewCatalogCmd(cfg *GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "catalog",
		Short: "Versions catalog queries",
		Long:  `Query the versions catalog (gradle/libs.versions.toml) of a project.`,
	}

	c.AddCommand(NewCatalogListCmd(cfg))

	return c
}

// NewCatalogListCmd creates the catalog list command.
func NewCatalogListCmd(cfg *GlobalConfig) *cobra.Command {
	var flags cmdutil.ProjectFlags

	c := &cobra.Command{
		Use:   "list",
		Short: "List catalog versions, libraries and plugins",
		Long: `List the versions, libraries and plugins declared in the versions catalog.

Examples:
  # List the catalog of the project in the current directory
  seedctl catalog list

  # List the catalog of another project
  seedctl catalog list --project ./shop`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runCatalogList(c, cfg, &flags)
		},
	}

	flags.AddTo(c)

	return c
}

func runCatalogList(c *cobra.Command, cfg *GlobalConfig, flags *cmdutil.ProjectFlags) error {
	root := flags.Resolve(cfg.Config)
	files := cmdutil.OpenProject(root, false)

	if _, err := javabuild.DetectBuildTool(files); err != nil {
		return exitError(err)
	}

	rows, err := catalogRows(gradle.NewVersionsCatalog(files))
	if err != nil {
		return exitError(err)
	}

	out := c.OutOrStdout()
	if len(rows) == 0 {
		fmt.Fprintln(out, "The versions catalog is empty.")
		return nil
	}
	fmt.Fprintln(out, output.RenderCatalogTable(rows))
	return nil
}

// catalogRows lists versions, then libraries, then plugins.
func catalogRows(catalog *gradle.VersionsCatalog) ([]output.CatalogRow, error) {
	versions, err := catalog.Versions()
	if err != nil {
		return nil, err
	}
	libraries, err := catalog.Libraries()
	if err != nil {
		return nil, err
	}
	plugins, err := catalog.Plugins()
	if err != nil {
		return nil, err
	}

	rows := make([]output.CatalogRow, 0, len(versions)+len(libraries)+len(plugins))

	slugs := make([]string, 0, len(versions))
	for slug := range versions {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	for _, slug := range slugs {
		rows = append(rows, output.CatalogRow{Section: "versions", Alias: slug, Version: versions[slug]})
	}

	for _, l := range libraries {
		rows = append(rows, output.CatalogRow{
			Section:    "libraries",
			Alias:      l.Alias,
			Coordinate: l.Coordinate(),
			Version:    versionColumn(l.Version, l.VersionRef),
		})
	}

	for _, p := range plugins {
		rows = append(rows, output.CatalogRow{
			Section:    "plugins",
			Alias:      p.Alias,
			Coordinate: p.ID,
			Version:    versionColumn(p.Version, p.VersionRef),
		})
	}

	return rows, nil
}

func versionColumn(version, ref string) string {
	if ref != "" {
		return "ref:" + ref
	}
	return version
}
