// Package codegen turns bundle definitions into TypeScript source and the
// Markdown skills document. Every generator is a pure function of its input:
// the same definitions always produce byte-identical text, in input order.
package codegen
