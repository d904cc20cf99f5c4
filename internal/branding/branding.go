// Package branding provides compile-time identity values for the CLI and the
// bundles it generates.
//
// Values live in the embedded branding.yaml. Forks that publish bundles for a
// different ecosystem edit that file; Go's //go:embed bakes it into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName          string `yaml:"cli_name"`
	DisplayName      string `yaml:"display_name"`
	Description      string `yaml:"description"`
	HomeDir          string `yaml:"home_dir"`
	EnvPrefix        string `yaml:"env_prefix"`
	GoModule         string `yaml:"go_module"`
	NamePrefix       string `yaml:"name_prefix"`
	SDKModule        string `yaml:"sdk_module"`
	SDKVersion       string `yaml:"sdk_version"`
	DefaultOrg       string `yaml:"default_org"`
	DefaultAuthor    string `yaml:"default_author"`
	DefaultLicense   string `yaml:"default_license"`
	AccentColor      string `yaml:"accent_color"`
	AccentHoverColor string `yaml:"accent_hover_color"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:          "create-minions-bundle",
			DisplayName:      "Minions Bundle",
			Description:      "Scaffold a new Minions ecosystem bundle project",
			HomeDir:          ".minions-bundle",
			EnvPrefix:        "MINIONS_BUNDLE",
			GoModule:         "github.com/minions-dev/create-minions-bundle",
			NamePrefix:       "minions-bundles-",
			SDKModule:        "minions-sdk",
			SDKVersion:       "^0.2.0",
			DefaultOrg:       "minions-dev",
			DefaultAuthor:    "Minions Contributors",
			DefaultLicense:   "MIT",
			AccentColor:      "#8B5CF6",
			AccentHoverColor: "#7C3AED",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "create-minions-bundle").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".minions-bundle").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "MINIONS_BUNDLE").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// NamePrefix returns the prefix every bundle project name carries
// (e.g., "minions-bundles-"). The project slug is the name without it.
func NamePrefix() string { load(); return defaults.NamePrefix }

// SDKModule returns the npm module generated code imports MinionType from.
func SDKModule() string { load(); return defaults.SDKModule }

// SDKVersion returns the version constraint written for SDKModule.
func SDKVersion() string { load(); return defaults.SDKVersion }

// DefaultOrg returns the GitHub org used when neither flags nor user config set one.
func DefaultOrg() string { load(); return defaults.DefaultOrg }

// DefaultAuthor returns the fallback author name.
func DefaultAuthor() string { load(); return defaults.DefaultAuthor }

// DefaultLicense returns the fallback license identifier.
func DefaultLicense() string { load(); return defaults.DefaultLicense }

// AccentColor returns the default theme accent color.
func AccentColor() string { load(); return defaults.AccentColor }

// AccentHoverColor returns the default theme hover color.
func AccentHoverColor() string { load(); return defaults.AccentHoverColor }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "MINIONS_BUNDLE_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
