package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minions-dev/create-minions-bundle/internal/bundlefile"
	"github.com/minions-dev/create-minions-bundle/internal/config"
)

const crmFile = "../bundlefile/testdata/crm.toml"

// defaultAsker accepts every prompt default unless an answer is given.
type defaultAsker struct {
	answers map[string]interface{}
}

func (a defaultAsker) AskOne(p survey.Prompt, response interface{}, _ ...survey.AskOpt) error {
	var message string
	var def interface{}
	switch q := p.(type) {
	case *survey.Input:
		message, def = q.Message, q.Default
	case *survey.Select:
		message, def = q.Message, q.Default
	case *survey.Confirm:
		message, def = q.Message, q.Default
	default:
		return fmt.Errorf("unexpected prompt %T", p)
	}
	if v, ok := a.answers[message]; ok {
		def = v
	}
	switch dst := response.(type) {
	case *string:
		*dst = def.(string)
	case *bool:
		*dst = def.(bool)
	}
	return nil
}

type recordingRunner struct {
	calls []string
	err   error
}

func (r *recordingRunner) Run(_ context.Context, _ string, name string, args ...string) ([]byte, error) {
	r.calls = append(r.calls, name+" "+strings.Join(args, " "))
	return nil, r.err
}

// execute runs the root command with fresh flag state and a temp home.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeIn(t, t.TempDir(), args...)
}

func executeIn(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()

	color.NoColor = true
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	viper.Reset()
	t.Cleanup(viper.Reset)

	flags = createFlags{}
	previewSection = "all"
	versionShort, versionJSON = false, false
	resetChanged(rootCmd)

	now = func() time.Time { return time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = time.Now })

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func resetChanged(c *cobra.Command) {
	reset := func(f *pflag.Flag) { f.Changed = false }
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetChanged(sub)
	}
}

func withCollaborators(t *testing.T, a defaultAsker, r *recordingRunner) {
	t.Helper()
	prevAsker, prevRunner := asker, runner
	asker, runner = a, r
	t.Cleanup(func() { asker, runner = prevAsker, prevRunner })
}

func TestProjectOptions(t *testing.T) {
	meta := bundlefile.Metadata{
		Name:   "minions-bundles-crm",
		Org:    "file-org",
		Author: bundlefile.Author{Email: "file@example.com"},
		Colors: bundlefile.Colors{Accent: "#000000"},
	}
	f := createFlags{org: "flag-org", author: "Flag Author", email: "flag@example.com"}
	d := config.Defaults{AuthorName: "Config Author", Org: "config-org", License: "Apache-2.0", AuthorURL: "https://config"}

	got := projectOptions(meta, f, d)

	tests := []struct {
		field string
		got   string
		want  string
	}{
		{"Name", got.Name, "minions-bundles-crm"},
		{"Org", got.Org, "file-org"},
		{"AuthorName", got.AuthorName, "Flag Author"},
		{"AuthorEmail", got.AuthorEmail, "file@example.com"},
		{"AuthorURL", got.AuthorURL, "https://config"},
		{"License", got.License, "Apache-2.0"},
		{"AccentColor", got.AccentColor, "#000000"},
		{"AccentHoverColor", got.AccentHoverColor, ""},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.field, tt.got, tt.want)
		}
	}
}

func TestCreateFromFile(t *testing.T) {
	r := &recordingRunner{}
	withCollaborators(t, defaultAsker{}, r)
	outDir := filepath.Join(t.TempDir(), "crm")

	out, err := execute(t, crmFile, "--output-dir", outDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Bundle generated at "+outDir)
	assert.Contains(t, out, "Next steps")
	assert.Empty(t, r.calls)

	pkg, err := os.ReadFile(filepath.Join(outDir, "package.json"))
	require.NoError(t, err)
	assert.Contains(t, string(pkg), `"version": "0.2.0"`)
	assert.Contains(t, string(pkg), `"@minions-tasks/sdk": "latest"`)
	assert.Contains(t, string(pkg), `"author": "Ada Lovelace <ada@example.com> (https://example.com)"`)

	readme, err := os.ReadFile(filepath.Join(outDir, "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(readme), "# Minions Bundle: Crm")
	assert.Contains(t, string(readme), "#10B981")

	license, err := os.ReadFile(filepath.Join(outDir, "LICENSE"))
	require.NoError(t, err)
	assert.Contains(t, string(license), "Copyright (c) 2026 Ada Lovelace")
}

func TestCreateDryRun(t *testing.T) {
	withCollaborators(t, defaultAsker{}, &recordingRunner{})
	outDir := filepath.Join(t.TempDir(), "crm")

	out, err := execute(t, crmFile, "--output-dir", outDir, "--dry-run", "--github")
	require.NoError(t, err)
	assert.Contains(t, out, "Dry run: would create")
	assert.Contains(t, out, "src/types.ts")
	assert.NoDirExists(t, outDir)
}

func TestCreateGitHubFailureIsWarning(t *testing.T) {
	r := &recordingRunner{err: errors.New("gh: not found")}
	withCollaborators(t, defaultAsker{}, r)
	outDir := filepath.Join(t.TempDir(), "crm")

	out, err := execute(t, crmFile, "--output-dir", outDir, "--github")
	require.NoError(t, err)
	assert.Contains(t, out, "GitHub setup failed")
	assert.Contains(t, out, "See MANUAL.md")
	require.Len(t, r.calls, 1)
	assert.Equal(t, "git init -b main", r.calls[0])
	assert.FileExists(t, filepath.Join(outDir, "MANUAL.md"))
}

func TestCreateGitHubSetup(t *testing.T) {
	r := &recordingRunner{}
	withCollaborators(t, defaultAsker{}, r)
	outDir := filepath.Join(t.TempDir(), "crm")

	out, err := execute(t, crmFile, "--output-dir", outDir, "--github")
	require.NoError(t, err)
	assert.Contains(t, out, "GitHub repository configured")
	require.Len(t, r.calls, 4)
	assert.True(t, strings.HasPrefix(r.calls[3], "gh repo create acme/minions-bundles-crm"), r.calls[3])
}

func TestCreateMalformedTypeWritesNothing(t *testing.T) {
	withCollaborators(t, defaultAsker{}, &recordingRunner{})
	outDir := filepath.Join(t.TempDir(), "bad")

	_, err := execute(t, "../bundlefile/testdata/malformed-type.toml", "--output-dir", outDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `type "lead"`)
	assert.NoDirExists(t, outDir)
}

func TestCreateInteractive(t *testing.T) {
	withCollaborators(t, defaultAsker{answers: map[string]interface{}{
		"Project name:": "minions-bundles-notes",
		"Author email:": "me@example.com",
	}}, &recordingRunner{})
	outDir := filepath.Join(t.TempDir(), "notes")

	out, err := execute(t, "--output-dir", outDir, "--org", "me", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Bundle Configuration")
	assert.Contains(t, out, "github.com/me/minions-bundles-notes")

	types, err := os.ReadFile(filepath.Join(outDir, "src", "types.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(types), "MinionType[] = [];")
}

func TestCreateInteractiveAborted(t *testing.T) {
	withCollaborators(t, defaultAsker{answers: map[string]interface{}{
		"Proceed with these settings?": false,
	}}, &recordingRunner{})
	outDir := filepath.Join(t.TempDir(), "aborted")

	out, err := execute(t, "--output-dir", outDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted.")
	assert.NoDirExists(t, outDir)
}

func TestPreview(t *testing.T) {
	out, err := execute(t, "preview", crmFile, "--section", "relations")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "export const bundleRelations = ["), out)
	assert.Contains(t, out, "relation: 'originates_from'")

	out, err = execute(t, "preview", crmFile, "--section", "types")
	require.NoError(t, err)
	assert.Contains(t, out, "id: 'bundle-crm-lead',")

	out, err = execute(t, "preview", crmFile)
	require.NoError(t, err)
	for _, header := range []string{"src/types.ts", "src/relations.ts", "src/views.ts", "skills/SKILL.md", "package.json dependencies"} {
		assert.Contains(t, out, "// ── "+header+" ──")
	}
	assert.Contains(t, out, "@minions-tasks/sdk@latest")
}

func TestPreviewBadSection(t *testing.T) {
	_, err := execute(t, "preview", crmFile, "--section", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--section")
}

func TestValidate(t *testing.T) {
	out, err := execute(t, "validate", crmFile)
	require.NoError(t, err)
	assert.Contains(t, out, "[ OK ] minions-bundles-crm: 3 types, 2 relations, 2 views, 1 skills")

	out, err = execute(t, "validate", "../bundlefile/testdata/invalid-name.toml")
	require.Error(t, err)
	assert.Contains(t, out, "[FAIL]")
	assert.Contains(t, out, "/name")

	out, err = execute(t, "validate", "../bundlefile/testdata/malformed-type.toml")
	require.Error(t, err)
	assert.Contains(t, out, `type "lead"`)
}

func TestVersion(t *testing.T) {
	buildVersion, buildCommit, buildDate = "1.2.3", "abc123", "2026-05-04"

	out, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)

	out, err = execute(t, "version", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"1.2.3","commit":"abc123","date":"2026-05-04"}`, out)

	out, err = execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "create-minions-bundle version 1.2.3 (commit: abc123, built: 2026-05-04)\n", out)
}

func TestConfigSetGet(t *testing.T) {
	home := t.TempDir()

	out, err := executeIn(t, home, "config", "set", "github.org", "acme")
	require.NoError(t, err)
	assert.Contains(t, out, "Set github.org = acme")
	assert.FileExists(t, filepath.Join(home, ".minions-bundle", "config.yaml"))

	out, err = executeIn(t, home, "config", "get", "github.org")
	require.NoError(t, err)
	assert.Equal(t, "acme\n", out)

	out, err = executeIn(t, home, "config", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "github.org")
	assert.Contains(t, out, "acme")

	_, err = executeIn(t, home, "config", "set", "bogus", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")

	_, err = executeIn(t, home, "config", "get", "bogus")
	require.Error(t, err)
}

func TestCreateUsesConfigDefaults(t *testing.T) {
	withCollaborators(t, defaultAsker{}, &recordingRunner{})
	home := t.TempDir()
	_, err := executeIn(t, home, "config", "set", "author.email", "saved@example.com")
	require.NoError(t, err)

	outDir := filepath.Join(t.TempDir(), "notes")
	_, err = executeIn(t, home, "--output-dir", outDir, "--yes")
	require.NoError(t, err)

	pkg, err := os.ReadFile(filepath.Join(outDir, "package.json"))
	require.NoError(t, err)
	assert.Contains(t, string(pkg), "<saved@example.com>")
}
