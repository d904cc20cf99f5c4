// Package bundle defines the configuration a bundle is generated from:
// project metadata plus the types, relations, views and skills the bundle
// ships. Decode turns an untyped structured document into these types and
// resolves each type definition into exactly one variant, so generators
// never re-inspect field presence.
package bundle
