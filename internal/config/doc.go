// Package config manages user-level defaults stored at
// ~/.minions-bundle/config.yaml. The scaffold command reads the author,
// GitHub organization and license from here before falling back to the
// built-in branding defaults. Every key can be overridden from the
// environment, e.g. MINIONS_BUNDLE_AUTHOR_EMAIL.
package config
