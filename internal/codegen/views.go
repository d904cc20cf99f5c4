package codegen

import (
	"fmt"
	"strings"

	"github.com/minions-dev/create-minions-bundle/internal/bundle"
	"github.com/minions-dev/create-minions-bundle/internal/structured"
)

// GenerateViews emits the bundleViews record keyed by view name. Only the
// fields a view sets are written; filter and aggregate are written as
// pretty-printed literals of their structure.
func GenerateViews(views []bundle.View) (string, error) {
	if len(views) == 0 {
		return "export const bundleViews = {};\n", nil
	}

	var b strings.Builder
	b.WriteString("export const bundleViews = {\n")
	for _, v := range views {
		fmt.Fprintf(&b, "  %s: {\n", propertyKey(v.Name))
		if v.Description != "" {
			fmt.Fprintf(&b, "    description: %s,\n", quote(v.Description))
		}
		if v.Type != "" {
			fmt.Fprintf(&b, "    type: %s,\n", quote(v.Type))
		}
		for _, expr := range []struct {
			key   string
			value any
		}{
			{"filter", v.Filter},
			{"aggregate", v.Aggregate},
		} {
			if expr.value == nil {
				continue
			}
			lit, err := structured.Literal(expr.value, "    ", "  ")
			if err != nil {
				return "", &bundle.DefinitionError{Entity: "view", Name: v.Name, Reason: fmt.Sprintf("encoding %s: %v", expr.key, err)}
			}
			fmt.Fprintf(&b, "    %s: %s,\n", expr.key, lit)
		}
		b.WriteString("  },\n")
	}
	b.WriteString("};\n")
	return b.String(), nil
}
