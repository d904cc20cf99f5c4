package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withHome points the user home at a temp dir and resets viper around the test.
func withHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return home
}

func TestPaths(t *testing.T) {
	home := withHome(t)
	assert.Equal(t, filepath.Join(home, ".minions-bundle"), Dir())
	assert.Equal(t, filepath.Join(home, ".minions-bundle", "config.yaml"), FilePath())
}

func TestLoadDefaults(t *testing.T) {
	withHome(t)
	Load()

	d := Current()
	assert.Equal(t, "minions-dev", d.Org)
	assert.Equal(t, "Minions Contributors", d.AuthorName)
	assert.Equal(t, "MIT", d.License)
	assert.Empty(t, d.AuthorEmail)
}

func TestSetPersists(t *testing.T) {
	withHome(t)
	Load()

	require.NoError(t, Set(KeyAuthorEmail, "ada@example.com"))
	require.NoError(t, Set(KeyGitHubOrg, "acme"))

	data, err := os.ReadFile(FilePath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "ada@example.com")

	viper.Reset()
	Load()
	assert.Equal(t, "ada@example.com", Get(KeyAuthorEmail))
	assert.Equal(t, "acme", Current().Org)
}

func TestSetUnknownKey(t *testing.T) {
	withHome(t)
	Load()

	err := Set("colour", "red")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")
	assert.NoFileExists(t, FilePath())
}

func TestEnvOverride(t *testing.T) {
	withHome(t)
	t.Setenv("MINIONS_BUNDLE_AUTHOR_NAME", "Grace")
	Load()

	assert.Equal(t, "Grace", Current().AuthorName)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, []string{"author.email", "author.name", "author.url", "github.org", "license"}, Keys())
	assert.True(t, IsKnown(KeyLicense))
	assert.False(t, IsKnown("nope"))
	assert.NotEmpty(t, Describe(KeyAuthorURL))
}
