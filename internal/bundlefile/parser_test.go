package bundlefile

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minions-dev/create-minions-bundle/internal/bundle"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestLoad_TOML(t *testing.T) {
	f, err := Load(testPath("crm.toml"))
	require.NoError(t, err)

	assert.Equal(t, FormatTOML, f.Format)
	assert.Equal(t, testPath("crm.toml"), f.Path)
	assert.True(t, f.Meta.Complete())
	assert.Equal(t, Metadata{
		Name:        "minions-bundles-crm",
		Description: "Customer relationship management for Minions",
		Org:         "acme",
		Version:     "0.2.0",
		Keywords:    []string{"crm", "sales"},
		Author:      Author{Name: "Ada Lovelace", Email: "ada@example.com", URL: "https://example.com"},
		Colors:      Colors{Accent: "#10B981", AccentHover: "#059669"},
	}, f.Meta)

	defs := f.Definitions
	require.Len(t, defs.Types, 3)
	assert.Equal(t, "lead", defs.Types[0].Slug)
	assert.Equal(t, "task", defs.Types[1].Slug)
	assert.Equal(t, "deal", defs.Types[2].Slug)
	assert.IsType(t, &bundle.ReferencedType{}, defs.Types[1].Def)

	lead := defs.Types[0].Def.(*bundle.InlineType)
	assert.Equal(t, []bundle.Field{
		{Name: "name", Kind: "string"},
		{Name: "score", Kind: "number"},
		{Name: "qualified", Kind: "boolean"},
	}, lead.Fields)

	deal := defs.Types[2].Def.(*bundle.InlineType)
	assert.Equal(t, "lead", deal.Extends)
	assert.Len(t, deal.Fields, 2)

	require.Len(t, defs.Relations, 2)
	assert.Equal(t, bundle.Relation{From: "deal", Relation: "originates_from", To: "lead"}, defs.Relations[1])

	require.Len(t, defs.Views, 2)
	assert.Equal(t, "hot-leads", defs.Views[0].Name)
	assert.Equal(t, "pipeline", defs.Views[1].Name)

	require.NotNil(t, defs.Skills)
	assert.Len(t, defs.Skills.Rules, 2)
	require.Len(t, defs.Skills.Items, 1)
	assert.Len(t, defs.Skills.Items[0].Steps, 3)
}

func TestLoad_YAML(t *testing.T) {
	f, err := Load(testPath("crm.yaml"))
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f.Format)
	require.Len(t, f.Definitions.Types, 2)
	assert.Len(t, f.Definitions.Relations, 1)
	assert.Nil(t, f.Definitions.Skills)
	assert.Empty(t, f.Meta.Org)
}

func TestLoad_JSONKeepsOrder(t *testing.T) {
	f, err := Load(testPath("crm.json"))
	require.NoError(t, err)
	assert.False(t, f.Meta.Complete())
	require.Len(t, f.Definitions.Types, 2)
	assert.Equal(t, "zeta", f.Definitions.Types[0].Slug)
	fields := f.Definitions.Types[0].Def.(*bundle.InlineType).Fields
	assert.Equal(t, "b", fields[0].Name)
	assert.Equal(t, "a", fields[1].Name)
}

func TestLoad_SchemaViolation(t *testing.T) {
	_, err := Load(testPath("invalid-name.toml"))
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "expected *ValidationError, got %T", err)

	paths := map[string]bool{}
	for _, issue := range ve.Issues {
		paths[issue.Path] = true
	}
	assert.True(t, paths["/name"], "issues: %v", ve.Issues)
	assert.True(t, paths["/keywords"], "issues: %v", ve.Issues)
}

func TestLoad_MalformedType(t *testing.T) {
	_, err := Load(testPath("malformed-type.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, bundle.ErrMalformedTypeDefinition)
	assert.Contains(t, err.Error(), `type "lead"`)
}

func TestLoad_Errors(t *testing.T) {
	for _, name := range []string{"invalid-toml.toml", "bundle.txt", "nonexistent.toml"} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(testPath(name))
			assert.Error(t, err)
		})
	}
}

func TestDetectFormat(t *testing.T) {
	tests := map[string]string{
		"a.toml": FormatTOML,
		"a.TOML": FormatTOML,
		"a.yaml": FormatYAML,
		"a.yml":  FormatYAML,
		"a.json": FormatJSON,
	}
	for path, want := range tests {
		got, err := DetectFormat(path)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := DetectFormat("bundle")
	assert.Error(t, err)
}

func TestValidateFile(t *testing.T) {
	res, err := ValidateFile(testPath("crm.toml"))
	require.NoError(t, err)
	assert.True(t, res.Valid)

	res, err = ValidateFile(testPath("invalid-name.toml"))
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.NotEmpty(t, res.Issues)
}

func TestParse_RelationMissingKey(t *testing.T) {
	_, err := Parse([]byte(`relations = [{ from = "a", to = "b" }]`), FormatTOML)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Error(), "/relations")
}
