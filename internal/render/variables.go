package render

import (
	"strings"

	"github.com/minions-dev/create-minions-bundle/internal/branding"
	"github.com/minions-dev/create-minions-bundle/internal/bundle"
	"github.com/minions-dev/create-minions-bundle/internal/codegen"
	"github.com/minions-dev/create-minions-bundle/internal/structured"
)

// BuildVariables generates every code block for cfg and flattens it, with
// the project metadata, into one mapping. It fails without a partial result
// if any generator fails.
func BuildVariables(cfg *bundle.Config) (Variables, error) {
	out, err := codegen.Generate(cfg)
	if err != nil {
		return nil, err
	}
	deps, err := out.DependenciesJSON()
	if err != nil {
		return nil, err
	}

	p := cfg.Project
	keywords := p.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	keywordsJSON, err := structured.JSON(keywords)
	if err != nil {
		return nil, err
	}

	return Variables{
		"projectName":        p.Name,
		"projectSlug":        p.Slug,
		"projectCapitalized": p.Capitalized,
		"projectDescription": p.Description,
		"projectVersion":     p.Version,
		"authorName":         p.AuthorName,
		"authorEmail":        p.AuthorEmail,
		"authorUrl":          p.AuthorURL,
		"githubOrg":          p.GitHubOrg,
		"githubRepo":         p.GitHubRepo,
		"license":            p.License,
		"keywords":           strings.Join(keywords, ", "),
		"keywordsJson":       keywordsJSON,
		"year":               p.Year,
		"bundleTypesCode":    out.TypesCode,
		"relationsCode":      out.RelationsCode,
		"viewsCode":          out.ViewsCode,
		"skillsCode":         out.SkillsCode,
		"dependenciesJson":   deps,
		"accentColor":        p.AccentColor,
		"accentHoverColor":   p.AccentHoverColor,
		"sdkModule":          branding.SDKModule(),
		"sdkVersion":         branding.SDKVersion(),
	}, nil
}
