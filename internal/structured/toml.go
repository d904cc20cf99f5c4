package structured

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"
)

// keyOrder records, for every table path, the order its child keys first
// appear in the source document.
type keyOrder map[string][]string

const pathSep = "\x00"

// element is the path segment for the i-th item of an array.
func element(i int) string {
	return pathSep + strconv.Itoa(i)
}

func (o keyOrder) record(path []string) {
	for i := range path {
		parent := strings.Join(path[:i], pathSep)
		child := path[i]
		seen := false
		for _, k := range o[parent] {
			if k == child {
				seen = true
				break
			}
		}
		if !seen {
			o[parent] = append(o[parent], child)
		}
	}
}

// FromTOML decodes a TOML document. go-toml decodes tables into Go maps, so
// key order is recovered separately with the unstable parser and reapplied.
func FromTOML(data []byte) (*Map, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshaling TOML: %w", err)
	}

	order, err := tomlKeyOrder(data)
	if err != nil {
		return nil, fmt.Errorf("scanning TOML keys: %w", err)
	}

	return orderedMap(raw, nil, order), nil
}

func tomlKeyOrder(data []byte) (keyOrder, error) {
	order := keyOrder{}
	p := &unstable.Parser{}
	p.Reset(data)

	tables := arrayTables{count: map[string]int{}, current: map[string]int{}}
	var table []string
	for p.NextExpression() {
		expr := p.Expression()
		switch expr.Kind {
		case unstable.Table, unstable.ArrayTable:
			table = tables.resolve(keyPath(expr.Key()), expr.Kind == unstable.ArrayTable)
			order.record(table)
		case unstable.KeyValue:
			recordKeyValue(order, table, expr)
		}
	}
	if err := p.Error(); err != nil {
		return nil, err
	}
	return order, nil
}

// arrayTables tracks [[header]] occurrences so each element of an array of
// tables gets its own path, and headers nested under one resolve to its
// latest element.
type arrayTables struct {
	count   map[string]int
	current map[string]int
}

func (a arrayTables) resolve(key []string, array bool) []string {
	var out []string
	for i, k := range key {
		out = append(out, k)
		resolved := strings.Join(out, pathSep)
		if array && i == len(key)-1 {
			idx := a.count[resolved]
			a.count[resolved] = idx + 1
			a.current[resolved] = idx
			out = append(out, element(idx))
			continue
		}
		if idx, ok := a.current[resolved]; ok {
			out = append(out, element(idx))
		}
	}
	return out
}

func recordKeyValue(order keyOrder, base []string, kv *unstable.Node) {
	path := append(append([]string{}, base...), keyPath(kv.Key())...)
	order.record(path)
	recordValue(order, path, kv.Value())
}

// recordValue walks inline tables, including those nested in arrays.
func recordValue(order keyOrder, path []string, v *unstable.Node) {
	if v == nil {
		return
	}
	switch v.Kind {
	case unstable.InlineTable:
		it := v.Children()
		for it.Next() {
			recordKeyValue(order, path, it.Node())
		}
	case unstable.Array:
		it := v.Children()
		for i := 0; it.Next(); i++ {
			recordValue(order, append(append([]string{}, path...), element(i)), it.Node())
		}
	}
}

func keyPath(it unstable.Iterator) []string {
	var parts []string
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}
	return parts
}

func orderedMap(raw map[string]any, path []string, order keyOrder) *Map {
	m := NewMap()
	for _, k := range sortKeys(raw, order[strings.Join(path, pathSep)]) {
		m.Set(k, orderedValue(raw[k], append(append([]string{}, path...), k), order))
	}
	return m
}

func orderedValue(v any, path []string, order keyOrder) any {
	switch val := v.(type) {
	case map[string]any:
		return orderedMap(val, path, order)
	case []map[string]any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = orderedMap(item, append(append([]string{}, path...), element(i)), order)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = orderedValue(item, append(append([]string{}, path...), element(i)), order)
		}
		return out
	default:
		return val
	}
}

// sortKeys returns the keys of raw, recorded ones first in document order,
// any others after them in lexical order.
func sortKeys(raw map[string]any, recorded []string) []string {
	keys := make([]string, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, k := range recorded {
		if _, ok := raw[k]; ok && !seen[k] {
			keys = append(keys, k)
			seen[k] = true
		}
	}
	var rest []string
	for k := range raw {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}
