package bundlefile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/minions-dev/create-minions-bundle/internal/bundle"
	"github.com/minions-dev/create-minions-bundle/internal/structured"
)

// Load reads, validates and decodes the bundle file at path.
func Load(path string) (*File, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	f.Path = path
	return f, nil
}

// Parse decodes bundle file contents in the given format.
func Parse(data []byte, format string) (*File, error) {
	doc, err := decodeDocument(data, format)
	if err != nil {
		return nil, err
	}

	result, err := ValidateDocument(doc)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, &ValidationError{Issues: result.Issues}
	}

	defs, err := bundle.Decode(doc)
	if err != nil {
		return nil, err
	}

	return &File{
		Format:      format,
		Meta:        decodeMetadata(doc),
		Definitions: defs,
	}, nil
}

// DetectFormat maps a file extension onto a supported format.
func DetectFormat(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported bundle file %s: expected .toml, .yaml, .yml or .json", path)
	}
}

func decodeDocument(data []byte, format string) (*structured.Map, error) {
	switch format {
	case FormatTOML:
		return structured.FromTOML(data)
	case FormatYAML, FormatJSON:
		// JSON is a subset of YAML; the YAML decoder keeps key order.
		return structured.FromYAML(data)
	default:
		return nil, fmt.Errorf("unknown bundle file format %q", format)
	}
}

// decodeMetadata reads project keys. Shapes were checked by the schema.
func decodeMetadata(doc *structured.Map) Metadata {
	var m Metadata
	m.Name, _ = doc.String("name")
	m.Description, _ = doc.String("description")
	m.Org, _ = doc.String("org")
	m.Version, _ = doc.String("version")
	m.License, _ = doc.String("license")

	if v, ok := doc.Get("keywords"); ok {
		if list, ok := v.([]any); ok {
			for _, item := range list {
				if s, ok := item.(string); ok {
					m.Keywords = append(m.Keywords, s)
				}
			}
		}
	}
	if author, ok := doc.Map("author"); ok {
		m.Author.Name, _ = author.String("name")
		m.Author.Email, _ = author.String("email")
		m.Author.URL, _ = author.String("url")
	}
	if colors, ok := doc.Map("colors"); ok {
		m.Colors.Accent, _ = colors.String("accent")
		m.Colors.AccentHover, _ = colors.String("accent-hover")
	}
	return m
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
