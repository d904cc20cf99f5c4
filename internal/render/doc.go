// Package render substitutes {{placeholder}} tokens in template text and
// assembles the variable mapping a bundle's templates are rendered with.
package render
