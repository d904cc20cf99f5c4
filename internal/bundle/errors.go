package bundle

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedTypeDefinition marks a types entry that is neither a
	// usable referenced type nor a usable inline type.
	ErrMalformedTypeDefinition = errors.New("malformed type definition")

	// ErrMalformedDefinition marks a relation, view or skill entry whose
	// shape cannot be read.
	ErrMalformedDefinition = errors.New("malformed definition")
)

// DefinitionError reports which bundle entity failed to decode.
type DefinitionError struct {
	Entity string // "type", "relation", "view" or "skill"
	Name   string // slug, view name, skill name, or list index
	Reason string
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Entity, e.Name, e.Reason)
}

// Unwrap returns the sentinel matching the entity kind.
func (e *DefinitionError) Unwrap() error {
	if e.Entity == "type" {
		return ErrMalformedTypeDefinition
	}
	return ErrMalformedDefinition
}

func typeError(slug, format string, args ...any) error {
	return &DefinitionError{Entity: "type", Name: slug, Reason: fmt.Sprintf(format, args...)}
}

func entityError(entity, name, format string, args ...any) error {
	return &DefinitionError{Entity: entity, Name: name, Reason: fmt.Sprintf(format, args...)}
}
