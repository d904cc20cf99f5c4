package codegen

import (
	"regexp"
	"strings"
)

var (
	singleQuoteEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	identPattern       = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
)

// quote renders s as a single-quoted TypeScript string literal.
func quote(s string) string {
	return "'" + singleQuoteEscaper.Replace(s) + "'"
}

// propertyKey renders s as an object literal key, quoting it only when it
// is not a plain identifier.
func propertyKey(s string) string {
	if identPattern.MatchString(s) {
		return s
	}
	return quote(s)
}
