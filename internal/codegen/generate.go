package codegen

import (
	"strings"

	"github.com/minions-dev/create-minions-bundle/internal/bundle"
	"github.com/minions-dev/create-minions-bundle/internal/structured"
)

// LatestVersion is the constraint written for every external module.
const LatestVersion = "latest"

// Dependency is an npm dependency required by referenced types.
type Dependency struct {
	Module  string
	Version string
}

// Output holds every generated block of a bundle.
type Output struct {
	TypesCode     string
	RelationsCode string
	ViewsCode     string
	SkillsCode    string
	Dependencies  []Dependency
}

// Generate runs all generators over cfg. Any failure aborts the run and no
// partial output is returned.
func Generate(cfg *bundle.Config) (*Output, error) {
	types, err := GenerateTypes(cfg.Types, cfg.Project.Slug)
	if err != nil {
		return nil, err
	}
	views, err := GenerateViews(cfg.Views)
	if err != nil {
		return nil, err
	}

	out := &Output{
		TypesCode:     types.Code,
		RelationsCode: GenerateRelations(cfg.Relations),
		ViewsCode:     views,
		SkillsCode:    GenerateSkills(cfg.Skills, cfg.Types),
	}
	for _, imp := range types.Imports {
		out.Dependencies = append(out.Dependencies, Dependency{Module: imp.Source, Version: LatestVersion})
	}
	return out, nil
}

// DependenciesJSON renders the dependencies as package.json members, each
// preceded by ",\n    " so they can follow an existing entry. It is empty
// when there are no dependencies.
func (o *Output) DependenciesJSON() (string, error) {
	if len(o.Dependencies) == 0 {
		return "", nil
	}
	entries := make([]string, 0, len(o.Dependencies))
	for _, d := range o.Dependencies {
		module, err := structured.JSON(d.Module)
		if err != nil {
			return "", err
		}
		version, err := structured.JSON(d.Version)
		if err != nil {
			return "", err
		}
		entries = append(entries, module+": "+version)
	}
	return ",\n    " + strings.Join(entries, ",\n    "), nil
}
