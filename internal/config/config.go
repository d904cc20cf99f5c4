package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/minions-dev/create-minions-bundle/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized keys.
const (
	KeyAuthorName  = "author.name"
	KeyAuthorEmail = "author.email"
	KeyAuthorURL   = "author.url"
	KeyGitHubOrg   = "github.org"
	KeyLicense     = "license"
)

var knownKeys = map[string]string{
	KeyAuthorName:  "default author name",
	KeyAuthorEmail: "default author email",
	KeyAuthorURL:   "default author homepage",
	KeyGitHubOrg:   "GitHub organization or user that owns new bundles",
	KeyLicense:     "default SPDX license identifier",
}

// Defaults is the set of user defaults applied to a new bundle.
type Defaults struct {
	AuthorName  string
	AuthorEmail string
	AuthorURL   string
	Org         string
	License     string
}

// Dir returns the path to the config directory (~/.minions-bundle/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyGitHubOrg, branding.DefaultOrg())
	viper.SetDefault(KeyAuthorName, branding.DefaultAuthor())
	viper.SetDefault(KeyLicense, branding.DefaultLicense())

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Keys returns the recognized keys in lexical order.
func Keys() []string {
	keys := make([]string, 0, len(knownKeys))
	for k := range knownKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Describe returns a one-line description of key, or "" if it is unknown.
func Describe(key string) string {
	return knownKeys[key]
}

// IsKnown reports whether key is a recognized config key.
func IsKnown(key string) bool {
	_, ok := knownKeys[key]
	return ok
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Current returns the defaults from the config file and environment.
func Current() Defaults {
	return Defaults{
		AuthorName:  Get(KeyAuthorName),
		AuthorEmail: Get(KeyAuthorEmail),
		AuthorURL:   Get(KeyAuthorURL),
		Org:         Get(KeyGitHubOrg),
		License:     Get(KeyLicense),
	}
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnown(key) {
		return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(Keys(), ", "))
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
