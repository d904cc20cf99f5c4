package bundle

import (
	"fmt"

	"github.com/minions-dev/create-minions-bundle/internal/structured"
)

// Decode reads the types, relations, views and skills sections of a bundle
// document. Absent sections decode to their zero value; a section or entry
// with an unreadable shape fails the whole decode with a *DefinitionError.
func Decode(doc *structured.Map) (Definitions, error) {
	var defs Definitions
	var err error

	if defs.Types, err = decodeTypes(doc); err != nil {
		return Definitions{}, err
	}
	if defs.Relations, err = decodeRelations(doc); err != nil {
		return Definitions{}, err
	}
	if defs.Views, err = decodeViews(doc); err != nil {
		return Definitions{}, err
	}
	if defs.Skills, err = decodeSkills(doc); err != nil {
		return Definitions{}, err
	}
	return defs, nil
}

func decodeTypes(doc *structured.Map) ([]TypeEntry, error) {
	raw, ok := doc.Get("types")
	if !ok || raw == nil {
		return nil, nil
	}
	section, ok := raw.(*structured.Map)
	if !ok {
		return nil, entityError("section", "types", "expected a table, got %s", describe(raw))
	}

	entries := make([]TypeEntry, 0, section.Len())
	for _, slug := range section.Keys() {
		v, _ := section.Get(slug)
		def, err := decodeTypeDef(slug, v)
		if err != nil {
			return nil, err
		}
		entries = append(entries, TypeEntry{Slug: slug, Def: def})
	}
	return entries, nil
}

// decodeTypeDef resolves a types entry. It is a ReferencedType only when both
// source and import are non-empty strings.
func decodeTypeDef(slug string, v any) (TypeDef, error) {
	m, ok := v.(*structured.Map)
	if !ok {
		return nil, typeError(slug, "expected a table, got %s", describe(v))
	}

	source, err := optionalString(m, "source")
	if err != nil {
		return nil, typeError(slug, "%v", err)
	}
	imp, err := optionalString(m, "import")
	if err != nil {
		return nil, typeError(slug, "%v", err)
	}
	if source != "" && imp != "" {
		return &ReferencedType{Source: source, Import: imp}, nil
	}

	def := &InlineType{}
	for _, f := range []struct {
		key string
		dst *string
	}{
		{"description", &def.Description},
		{"icon", &def.Icon},
		{"extends", &def.Extends},
	} {
		if *f.dst, err = optionalString(m, f.key); err != nil {
			return nil, typeError(slug, "%v", err)
		}
	}

	rawFields, ok := m.Get("fields")
	if !ok || rawFields == nil {
		return def, nil
	}
	fields, ok := rawFields.(*structured.Map)
	if !ok {
		return nil, typeError(slug, "fields: expected a table, got %s", describe(rawFields))
	}
	for _, name := range fields.Keys() {
		kind, ok := fields.String(name)
		if !ok {
			fv, _ := fields.Get(name)
			return nil, typeError(slug, "field %q: kind must be a string, got %s", name, describe(fv))
		}
		def.Fields = append(def.Fields, Field{Name: name, Kind: kind})
	}
	return def, nil
}

func decodeRelations(doc *structured.Map) ([]Relation, error) {
	raw, ok := doc.Get("relations")
	if !ok || raw == nil {
		return nil, nil
	}

	// Either a bare list or a table holding an items list.
	if m, isMap := raw.(*structured.Map); isMap {
		raw, ok = m.Get("items")
		if !ok || raw == nil {
			return nil, nil
		}
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, entityError("section", "relations", "expected a list, got %s", describe(raw))
	}

	relations := make([]Relation, 0, len(list))
	for i, item := range list {
		name := fmt.Sprintf("#%d", i+1)
		m, ok := item.(*structured.Map)
		if !ok {
			return nil, entityError("relation", name, "expected a table, got %s", describe(item))
		}
		var rel Relation
		for _, f := range []struct {
			key string
			dst *string
		}{
			{"from", &rel.From},
			{"relation", &rel.Relation},
			{"to", &rel.To},
		} {
			s, ok := m.String(f.key)
			if !ok || s == "" {
				return nil, entityError("relation", name, "missing %q", f.key)
			}
			*f.dst = s
		}
		relations = append(relations, rel)
	}
	return relations, nil
}

func decodeViews(doc *structured.Map) ([]View, error) {
	raw, ok := doc.Get("views")
	if !ok || raw == nil {
		return nil, nil
	}
	section, ok := raw.(*structured.Map)
	if !ok {
		return nil, entityError("section", "views", "expected a table, got %s", describe(raw))
	}

	views := make([]View, 0, section.Len())
	for _, name := range section.Keys() {
		v, _ := section.Get(name)
		m, ok := v.(*structured.Map)
		if !ok {
			return nil, entityError("view", name, "expected a table, got %s", describe(v))
		}
		view := View{Name: name}
		var err error
		if view.Description, err = optionalString(m, "description"); err != nil {
			return nil, entityError("view", name, "%v", err)
		}
		if view.Type, err = optionalString(m, "type"); err != nil {
			return nil, entityError("view", name, "%v", err)
		}
		view.Filter, _ = m.Get("filter")
		view.Aggregate, _ = m.Get("aggregate")
		views = append(views, view)
	}
	return views, nil
}

func decodeSkills(doc *structured.Map) (*SkillSet, error) {
	raw, ok := doc.Get("skills")
	if !ok || raw == nil {
		return nil, nil
	}
	m, ok := raw.(*structured.Map)
	if !ok {
		return nil, entityError("section", "skills", "expected a table, got %s", describe(raw))
	}

	set := &SkillSet{}
	var err error
	if set.Context, err = optionalString(m, "context"); err != nil {
		return nil, entityError("section", "skills", "%v", err)
	}
	if set.Rules, err = stringList(m, "rules"); err != nil {
		return nil, entityError("section", "skills", "%v", err)
	}

	rawItems, ok := m.Get("items")
	if !ok || rawItems == nil {
		return set, nil
	}
	items, ok := rawItems.([]any)
	if !ok {
		return nil, entityError("section", "skills", "items: expected a list, got %s", describe(rawItems))
	}
	for i, item := range items {
		im, ok := item.(*structured.Map)
		if !ok {
			return nil, entityError("skill", fmt.Sprintf("#%d", i+1), "expected a table, got %s", describe(item))
		}
		name, ok := im.String("name")
		if !ok || name == "" {
			return nil, entityError("skill", fmt.Sprintf("#%d", i+1), "missing %q", "name")
		}
		steps, err := stringList(im, "steps")
		if err != nil {
			return nil, entityError("skill", name, "%v", err)
		}
		set.Items = append(set.Items, Skill{Name: name, Steps: steps})
	}
	return set, nil
}

// optionalString returns the string under key, or "" when absent.
func optionalString(m *structured.Map, key string) (string, error) {
	v, ok := m.Get(key)
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s: expected a string, got %s", key, describe(v))
	}
	return s, nil
}

func stringList(m *structured.Map, key string) ([]string, error) {
	v, ok := m.Get(key)
	if !ok || v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected a list, got %s", key, describe(v))
	}
	out := make([]string, 0, len(list))
	for i, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%s[%d]: expected a string, got %s", key, i, describe(item))
		}
		out = append(out, s)
	}
	return out, nil
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "nothing"
	case *structured.Map:
		return "a table"
	case []any:
		return "a list"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
