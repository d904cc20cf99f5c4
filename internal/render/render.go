package render

import (
	"regexp"
)

// Variables maps placeholder names to substitution text.
type Variables map[string]string

var placeholderPattern = regexp.MustCompile(`\{\{\s*(\w+)\s*\}\}`)

// Render replaces every {{name}} in content with vars[name]. Placeholders
// with no entry in vars are kept verbatim. Substituted text is not scanned
// again.
func Render(content string, vars Variables) string {
	return placeholderPattern.ReplaceAllStringFunc(content, func(match string) string {
		key := placeholderPattern.FindStringSubmatch(match)[1]
		if val, ok := vars[key]; ok {
			return val
		}
		return match
	})
}

// Unresolved returns the distinct placeholder names in content that vars
// has no entry for, in order of first appearance.
func Unresolved(content string, vars Variables) []string {
	var names []string
	seen := make(map[string]bool)
	for _, m := range placeholderPattern.FindAllStringSubmatch(content, -1) {
		key := m[1]
		if _, ok := vars[key]; ok || seen[key] {
			continue
		}
		seen[key] = true
		names = append(names, key)
	}
	return names
}
