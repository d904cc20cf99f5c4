package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/minions-dev/create-minions-bundle/internal/branding"
	"github.com/minions-dev/create-minions-bundle/internal/hosting"
	"github.com/minions-dev/create-minions-bundle/internal/prompts"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Collaborators swapped out by tests.
var (
	asker  prompts.Asker  = prompts.Survey{}
	runner hosting.Runner = hosting.ExecRunner{}
	now                   = time.Now
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [bundle-file]",
	Short: branding.Description(),
	Long: branding.CLIName() + ` scaffolds a new Minions bundle package: MinionType definitions,
relations, views and agent skill docs generated from a TOML, YAML or JSON
bundle file, plus package.json, CI workflows and release tooling.

Without a bundle file, or when the file lacks a name or description, the
missing values are asked for interactively.

Examples:
  ` + branding.CLIName() + ` bundle.toml
  ` + branding.CLIName() + ` bundle.toml --dry-run
  ` + branding.CLIName() + ` --org acme --github`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCreate,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
