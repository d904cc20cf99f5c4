package codegen

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/minions-dev/create-minions-bundle/internal/branding"
	"github.com/minions-dev/create-minions-bundle/internal/bundle"
)

// DefaultIcon is used for inline types that do not set one.
const DefaultIcon = "📦"

var separatorReplacer = strings.NewReplacer("-", " ", "_", " ")

// Import lists the symbols imported from one external module, in order of
// first use.
type Import struct {
	Source  string
	Symbols []string
}

// TypesResult is the output of GenerateTypes.
type TypesResult struct {
	Code    string
	Imports []Import
}

// DisplayName derives a human-readable name from a type slug: the first
// character is upper-cased and every '-' or '_' after it becomes a space.
func DisplayName(slug string) string {
	if slug == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(slug)
	return string(unicode.ToUpper(r)) + separatorReplacer.Replace(slug[size:])
}

// Identifier derives the exported binding name of an inline type.
func Identifier(slug string) string {
	return strings.NewReplacer("-", "", "_", "").Replace(slug) + "Type"
}

// GenerateTypes emits the types module: one import per external module, one
// MinionType declaration per inline type, and the bundleTypes array listing
// every type in definition order.
func GenerateTypes(types []bundle.TypeEntry, projectSlug string) (*TypesResult, error) {
	result := &TypesResult{}
	if len(types) == 0 {
		result.Code = "export const bundleTypes: import('" + branding.SDKModule() + "').MinionType[] = [];\n"
		return result, nil
	}

	importIndex := make(map[string]int)
	var inline []string
	var exported []string

	for _, entry := range types {
		switch def := entry.Def.(type) {
		case *bundle.ReferencedType:
			if def.Source == "" || def.Import == "" {
				return nil, &bundle.DefinitionError{Entity: "type", Name: entry.Slug, Reason: "referenced type needs both source and import"}
			}
			idx, ok := importIndex[def.Source]
			if !ok {
				idx = len(result.Imports)
				importIndex[def.Source] = idx
				result.Imports = append(result.Imports, Import{Source: def.Source})
			}
			imp := &result.Imports[idx]
			if !contains(imp.Symbols, def.Import) {
				imp.Symbols = append(imp.Symbols, def.Import)
			}
			exported = append(exported, def.Import)
		case *bundle.InlineType:
			if def == nil {
				return nil, &bundle.DefinitionError{Entity: "type", Name: entry.Slug, Reason: "empty definition"}
			}
			inline = append(inline, inlineTypeCode(entry.Slug, def, projectSlug))
			exported = append(exported, Identifier(entry.Slug))
		default:
			return nil, &bundle.DefinitionError{Entity: "type", Name: entry.Slug, Reason: fmt.Sprintf("unsupported definition %T", entry.Def)}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "import type { MinionType } from '%s';\n\n", branding.SDKModule())
	for _, imp := range result.Imports {
		fmt.Fprintf(&b, "import { %s } from %s;\n", strings.Join(imp.Symbols, ", "), quote(imp.Source))
	}

	b.WriteString("\n// --- Inline Bundle Types ---\n\n")
	b.WriteString(strings.Join(inline, "\n"))

	b.WriteString("\n// --- Bundle Export ---\n\n")
	b.WriteString("export const bundleTypes: MinionType[] = [\n")
	for _, name := range exported {
		fmt.Fprintf(&b, "  %s,\n", name)
	}
	b.WriteString("];\n")

	result.Code = b.String()
	return result, nil
}

func inlineTypeCode(slug string, def *bundle.InlineType, projectSlug string) string {
	name := DisplayName(slug)
	description := def.Description
	if description == "" {
		description = "Bundle type for " + name
	}
	icon := def.Icon
	if icon == "" {
		icon = DefaultIcon
	}

	var b strings.Builder
	fmt.Fprintf(&b, "export const %s: MinionType = {\n", Identifier(slug))
	fmt.Fprintf(&b, "  id: %s,\n", quote("bundle-"+projectSlug+"-"+slug))
	fmt.Fprintf(&b, "  name: %s,\n", quote(name))
	fmt.Fprintf(&b, "  slug: %s,\n", quote(slug))
	fmt.Fprintf(&b, "  description: %s,\n", quote(description))
	fmt.Fprintf(&b, "  icon: %s,\n", quote(icon))
	if def.Extends != "" {
		// MinionType has no inheritance; the parent is recorded for readers only.
		fmt.Fprintf(&b, "  // extends: %s,\n", quote(def.Extends))
	}
	b.WriteString("  schema: [\n")
	for _, f := range def.Fields {
		fmt.Fprintf(&b, "    { name: %s, type: '%s', label: %s },\n",
			quote(f.Name), bundle.NormalizeFieldKind(f.Kind), quote(f.Name))
	}
	b.WriteString("  ],\n};\n")
	return b.String()
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
