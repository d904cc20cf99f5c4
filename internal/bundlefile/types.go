package bundlefile

import "github.com/minions-dev/create-minions-bundle/internal/bundle"

// Supported file formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// File is a loaded bundle file.
type File struct {
	Path        string
	Format      string
	Meta        Metadata
	Definitions bundle.Definitions
}

// Metadata holds the project-level keys of a bundle file. Empty fields were
// not set in the file.
type Metadata struct {
	Name        string
	Description string
	Org         string
	Version     string
	License     string
	Keywords    []string
	Author      Author
	Colors      Colors
}

// Author identifies the bundle author.
type Author struct {
	Name  string
	Email string
	URL   string
}

// Colors holds the theme colors used by the generated README and docs.
type Colors struct {
	Accent      string
	AccentHover string
}

// Complete reports whether the file carries enough metadata to generate
// without prompting.
func (m Metadata) Complete() bool {
	return m.Name != "" && m.Description != ""
}
