// Package bundlefile loads bundle configuration files. TOML, YAML and JSON
// files are decoded into an ordered structured document, checked against the
// embedded JSON Schema, and split into project metadata and bundle
// definitions.
package bundlefile
