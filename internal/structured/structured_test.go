package structured

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromTOML_PreservesTableOrder(t *testing.T) {
	doc, err := FromTOML([]byte(`
name = "minions-bundles-crm"

[types.lead]
description = "A sales lead"
fields = { name = "string", score = "number", active = "boolean" }

[types.contact]
source = "@acme/sdk"
import = "ContactType"

[types.account.fields]
zeta = "string"
alpha = "date"
`))
	require.NoError(t, err)

	types, ok := doc.Map("types")
	require.True(t, ok)
	assert.Equal(t, []string{"lead", "contact", "account"}, types.Keys())

	lead, _ := types.Map("lead")
	fields, _ := lead.Map("fields")
	assert.Equal(t, []string{"name", "score", "active"}, fields.Keys())

	account, _ := types.Map("account")
	accountFields, _ := account.Map("fields")
	assert.Equal(t, []string{"zeta", "alpha"}, accountFields.Keys())
}

func TestFromTOML_ArrayTables(t *testing.T) {
	doc, err := FromTOML([]byte(`
[[relations.items]]
from = "lead"
relation = "belongs_to"
to = "account"

[[relations.items]]
to = "lead"
from = "note"
relation = "about"
`))
	require.NoError(t, err)

	rel, ok := doc.Map("relations")
	require.True(t, ok)
	items, ok := rel.Get("items")
	require.True(t, ok)
	list, ok := items.([]any)
	require.True(t, ok)
	require.Len(t, list, 2)

	second := list[1].(*Map)
	v, _ := second.String("from")
	assert.Equal(t, "note", v)
}

func TestFromTOML_InlineTablesInArrayKeepOwnOrder(t *testing.T) {
	doc, err := FromTOML([]byte(`filter = { or = [ { a = 1, b = 2 }, { b = 3, a = 4 } ] }`))
	require.NoError(t, err)

	filter, ok := doc.Get("filter")
	require.True(t, ok)
	out, err := JSON(filter)
	require.NoError(t, err)
	assert.Equal(t, `{"or":[{"a":1,"b":2},{"b":3,"a":4}]}`, out)
}

func TestFromTOML_ArrayTablesKeepOwnOrder(t *testing.T) {
	doc, err := FromTOML([]byte(`
[[views.board.columns]]
title = "Open"
status = "open"

[[views.board.columns]]
status = "won"
title = "Won"

[views.board.columns.meta]
color = "green"
label = "done"
`))
	require.NoError(t, err)

	views, _ := doc.Map("views")
	board, _ := views.Map("board")
	columns, ok := board.Get("columns")
	require.True(t, ok)
	list := columns.([]any)
	require.Len(t, list, 2)

	assert.Equal(t, []string{"title", "status"}, list[0].(*Map).Keys())
	second := list[1].(*Map)
	assert.Equal(t, []string{"status", "title", "meta"}, second.Keys())
	meta, ok := second.Map("meta")
	require.True(t, ok)
	assert.Equal(t, []string{"color", "label"}, meta.Keys())
}

func TestFromTOML_Invalid(t *testing.T) {
	_, err := FromTOML([]byte("name = "))
	assert.Error(t, err)
}

func TestFromYAML_PreservesOrder(t *testing.T) {
	doc, err := FromYAML([]byte(`
views:
  zeta:
    type: list
  alpha:
    type: board
    filter:
      status: open
      score: { gt: 10 }
`))
	require.NoError(t, err)

	views, ok := doc.Map("views")
	require.True(t, ok)
	assert.Equal(t, []string{"zeta", "alpha"}, views.Keys())

	alpha, _ := views.Map("alpha")
	filter, _ := alpha.Map("filter")
	assert.Equal(t, []string{"status", "score"}, filter.Keys())
}

func TestFromYAML_AcceptsJSON(t *testing.T) {
	doc, err := FromYAML([]byte(`{"b": 1, "a": [true, "x"]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, doc.Keys())
}

func TestFromYAML_RootMustBeMapping(t *testing.T) {
	_, err := FromYAML([]byte("- a\n- b\n"))
	assert.Error(t, err)
}

func TestFromYAML_Empty(t *testing.T) {
	doc, err := FromYAML(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Len())
}

func TestLiteral(t *testing.T) {
	m := NewMap()
	m.Set("status", "open")
	inner := NewMap()
	inner.Set("gt", 10)
	m.Set("score", inner)

	out, err := Literal(m, "    ", "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n      \"status\": \"open\",\n      \"score\": {\n        \"gt\": 10\n      }\n    }", out)
}

func TestLiteral_NoHTMLEscape(t *testing.T) {
	out, err := Literal("a<b&c", "", "  ")
	require.NoError(t, err)
	assert.Equal(t, `"a<b&c"`, out)
}

func TestMapSetKeepsPosition(t *testing.T) {
	m := NewMap()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 3)
	assert.Equal(t, []string{"a", "b"}, m.Keys())
	v, _ := m.Get("a")
	assert.Equal(t, 3, v)
}
