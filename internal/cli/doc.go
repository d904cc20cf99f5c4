// Package cli defines the Cobra command tree for create-minions-bundle. The
// root command scaffolds a bundle; preview, validate, config and version are
// registered from their own files. Commands only parse flags, format output
// and talk to the user. Loading, generation and writing live in the
// bundlefile, render, scaffold and hosting packages.
package cli
