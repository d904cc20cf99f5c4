package codegen

import (
	"fmt"
	"strings"

	"github.com/minions-dev/create-minions-bundle/internal/bundle"
)

// NoSkills is the document generated when a bundle has no skills section.
const NoSkills = "No skills defined."

// GenerateSkills renders the skills document: context, the list of type
// slugs, hard rules, then one section per skill with numbered steps.
func GenerateSkills(skills *bundle.SkillSet, types []bundle.TypeEntry) string {
	if skills == nil {
		return NoSkills
	}

	var b strings.Builder
	if skills.Context != "" {
		fmt.Fprintf(&b, "## Your Context\n\n%s\n\n", skills.Context)
	}

	if len(types) > 0 {
		slugs := make([]string, len(types))
		for i, t := range types {
			slugs[i] = t.Slug
		}
		fmt.Fprintf(&b, "Your MinionTypes are: %s.\n\n", strings.Join(slugs, ", "))
	}

	if len(skills.Rules) > 0 {
		b.WriteString("## Hard Rules\n\n")
		for _, rule := range skills.Rules {
			fmt.Fprintf(&b, "- %s\n", rule)
		}
		b.WriteString("\n")
	}

	for _, skill := range skills.Items {
		fmt.Fprintf(&b, "## Skill: %s\n", skill.Name)
		for i, step := range skill.Steps {
			fmt.Fprintf(&b, "%d. %s\n", i+1, step)
		}
		b.WriteString("\n")
	}

	return strings.TrimSpace(b.String())
}
