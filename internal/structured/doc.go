// Package structured holds the untyped document tree bundle files decode
// into: keyed records that remember key order (*Map), lists ([]any) and
// scalars. The tree is what the bundle loader reads types, views and skills
// from, and what view filters and aggregates are carried as until they are
// written back out as literals.
package structured
