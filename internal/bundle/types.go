package bundle

// Config is the complete, read-only input to a generation run.
type Config struct {
	Project Project
	Definitions
}

// Definitions holds the schema sections of a bundle file.
type Definitions struct {
	Types     []TypeEntry
	Relations []Relation
	Views     []View
	// Skills is nil when the bundle file has no skills section at all.
	Skills *SkillSet
}

// Project holds scalar metadata substituted into the generated files.
type Project struct {
	Name             string // e.g., "minions-bundles-crm"
	Slug             string // e.g., "crm"
	Capitalized      string // e.g., "Minions Bundle: Crm"
	Description      string
	Version          string
	AuthorName       string
	AuthorEmail      string
	AuthorURL        string
	GitHubOrg        string
	GitHubRepo       string // "<org>/<name>"
	License          string
	Keywords         []string
	Year             string
	AccentColor      string
	AccentHoverColor string
}

// TypeEntry pairs a type slug with its definition, in bundle file order.
type TypeEntry struct {
	Slug string
	Def  TypeDef
}

// TypeDef is either a *ReferencedType or an *InlineType.
type TypeDef interface {
	typeDef()
}

// ReferencedType is a type imported from an external npm module.
type ReferencedType struct {
	Source string // module, e.g., "@minions-tasks/sdk"
	Import string // exported symbol, e.g., "taskType"
}

// InlineType is a type declared by the bundle itself.
type InlineType struct {
	Description string
	Icon        string
	Extends     string
	Fields      []Field
}

func (*ReferencedType) typeDef() {}
func (*InlineType) typeDef()     {}

// Field is one entry of an inline type's schema. Kind is the raw kind as
// written in the bundle file; see NormalizeFieldKind.
type Field struct {
	Name string
	Kind string
}

// FieldKind is a normalized MinionType field type.
type FieldKind string

const (
	FieldString  FieldKind = "string"
	FieldNumber  FieldKind = "number"
	FieldBoolean FieldKind = "boolean"
	FieldSelect  FieldKind = "select"
	FieldDate    FieldKind = "date"
)

// NormalizeFieldKind maps a raw field kind onto the closed set of kinds the
// SDK understands. "datetime" becomes date; anything unknown becomes string.
func NormalizeFieldKind(raw string) FieldKind {
	switch raw {
	case "boolean":
		return FieldBoolean
	case "number":
		return FieldNumber
	case "select":
		return FieldSelect
	case "date", "datetime":
		return FieldDate
	default:
		return FieldString
	}
}

// Relation is a directed, labeled edge between two type slugs. Slugs are not
// checked against the declared types.
type Relation struct {
	From     string
	Relation string
	To       string
}

// View is a named projection over bundle data. Filter and Aggregate are
// opaque structured values (see package structured); nil means absent.
type View struct {
	Name        string
	Description string
	Type        string
	Filter      any
	Aggregate   any
}

// SkillSet is the instructional material rendered into the skills document.
type SkillSet struct {
	Context string
	Rules   []string
	Items   []Skill
}

// Skill is a named, ordered list of steps.
type Skill struct {
	Name  string
	Steps []string
}
