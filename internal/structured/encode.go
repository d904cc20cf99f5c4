package structured

import (
	"bytes"
	"encoding/json"
	"strings"
)

// marshalCompact encodes v as single-line JSON without HTML escaping.
func marshalCompact(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Literal renders v as a pretty-printed JSON literal. Every line after the
// first is prefixed with prefix, so the result can be spliced into source
// text at the current indentation level.
func Literal(v any, prefix, indent string) (string, error) {
	compact, err := marshalCompact(v)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, prefix, indent); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

// JSON renders v as compact JSON in key order.
func JSON(v any) (string, error) {
	b, err := marshalCompact(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
