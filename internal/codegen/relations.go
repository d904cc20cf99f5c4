package codegen

import (
	"fmt"
	"strings"

	"github.com/minions-dev/create-minions-bundle/internal/bundle"
)

// GenerateRelations emits the bundleRelations array, one record per
// relation in input order.
func GenerateRelations(relations []bundle.Relation) string {
	if len(relations) == 0 {
		return "export const bundleRelations = [];\n"
	}

	var b strings.Builder
	b.WriteString("export const bundleRelations = [\n")
	for _, rel := range relations {
		fmt.Fprintf(&b, "  { from: %s, relation: %s, to: %s },\n",
			quote(rel.From), quote(rel.Relation), quote(rel.To))
	}
	b.WriteString("];\n")
	return b.String()
}
