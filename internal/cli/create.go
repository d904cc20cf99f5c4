package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/minions-dev/create-minions-bundle/internal/bundle"
	"github.com/minions-dev/create-minions-bundle/internal/bundlefile"
	"github.com/minions-dev/create-minions-bundle/internal/config"
	"github.com/minions-dev/create-minions-bundle/internal/hosting"
	"github.com/minions-dev/create-minions-bundle/internal/logging"
	"github.com/minions-dev/create-minions-bundle/internal/prompts"
	"github.com/minions-dev/create-minions-bundle/internal/render"
	"github.com/minions-dev/create-minions-bundle/internal/scaffold"
)

// createFlags holds the root command's scaffold flags.
type createFlags struct {
	org       string
	author    string
	email     string
	license   string
	outputDir string
	github    bool
	dryRun    bool
	yes       bool
	verbose   bool
}

var flags createFlags

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&flags.org, "org", "o", "", "GitHub org or user (default from config, then minions-dev)")
	f.StringVarP(&flags.author, "author", "a", "", "Author name")
	f.StringVarP(&flags.email, "email", "e", "", "Author email")
	f.StringVar(&flags.license, "license", "", "License identifier (MIT, Apache-2.0, AGPL-3.0)")
	f.StringVar(&flags.outputDir, "output-dir", "", "Output directory (default: ./<name>)")
	f.BoolVar(&flags.github, "github", false, "Create and push the GitHub repository (requires gh CLI)")
	f.BoolVar(&flags.dryRun, "dry-run", false, "Render everything and list the files without writing")
	f.BoolVarP(&flags.yes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log each step to stderr")
}

func runCreate(cmd *cobra.Command, args []string) error {
	log := logging.NewWriter(cmd.ErrOrStderr(), flags.verbose)
	defer func() { _ = log.Sync() }()
	out := cmd.OutOrStdout()

	config.Load()
	defaults := config.Current()

	var file *bundlefile.File
	if len(args) == 1 {
		var err error
		file, err = bundlefile.Load(args[0])
		if err != nil {
			return err
		}
		log.Debug("loaded bundle file",
			zap.String("path", file.Path),
			zap.String("format", file.Format),
			zap.Int("types", len(file.Definitions.Types)))
	}

	var meta bundlefile.Metadata
	var defs bundle.Definitions
	if file != nil {
		meta = file.Meta
		defs = file.Definitions
	}

	opts := projectOptions(meta, flags, defaults)
	setupGitHub := flags.github

	if !meta.Complete() {
		req := prompts.Request{
			Options:     opts,
			SkipConfirm: flags.yes,
			Out:         out,
		}
		if cmd.Flags().Changed("github") {
			req.GitHub = &flags.github
		}
		answers, err := prompts.Run(asker, req)
		if errors.Is(err, prompts.ErrAborted) {
			color.New(color.FgYellow).Fprintln(out, "\n  Aborted.")
			return nil
		}
		if err != nil {
			return err
		}
		opts = answers.Options
		setupGitHub = answers.SetupGitHub
	}

	project, err := bundle.NewProject(opts, now())
	if err != nil {
		return err
	}
	cfg := &bundle.Config{Project: project, Definitions: defs}

	vars, err := render.BuildVariables(cfg)
	if err != nil {
		return fmt.Errorf("generating bundle code: %w", err)
	}
	log.Debug("built variables", zap.Int("count", len(vars)))

	outDir := resolveOutputDir(project.Name)
	result, err := scaffold.Generate(vars, outDir, scaffold.Options{DryRun: flags.dryRun, Logger: log})
	if err != nil {
		return err
	}
	printResult(out, result)

	if result.DryRun {
		return nil
	}

	if setupGitHub {
		repo := hosting.Repo{Org: project.GitHubOrg, Name: project.Name, Description: project.Description}
		info := color.New(color.FgCyan)
		info.Fprintf(out, "\n  Setting up GitHub repository %s...\n", repo.FullName())
		if err := hosting.Setup(cmd.Context(), runner, outDir, repo, log); err != nil {
			printWarning(out, fmt.Sprintf("GitHub setup failed: %v", err))
			printWarning(out, "You can set up the repo manually. See MANUAL.md")
		} else {
			color.New(color.FgGreen).Fprintln(out, "  ✓ GitHub repository configured")
		}
	}

	printNextSteps(out, project.Name)
	return nil
}

// projectOptions merges bundle file metadata, flags and user defaults.
// File values win over flags, and flags win over user defaults. Whatever
// is still empty is derived in bundle.NewProject.
func projectOptions(meta bundlefile.Metadata, f createFlags, d config.Defaults) bundle.ProjectOptions {
	return bundle.ProjectOptions{
		Name:             meta.Name,
		Description:      meta.Description,
		Version:          meta.Version,
		AuthorName:       firstNonEmpty(meta.Author.Name, f.author, d.AuthorName),
		AuthorEmail:      firstNonEmpty(meta.Author.Email, f.email, d.AuthorEmail),
		AuthorURL:        firstNonEmpty(meta.Author.URL, d.AuthorURL),
		Org:              firstNonEmpty(meta.Org, f.org, d.Org),
		License:          firstNonEmpty(meta.License, f.license, d.License),
		Keywords:         meta.Keywords,
		AccentColor:      meta.Colors.Accent,
		AccentHoverColor: meta.Colors.AccentHover,
	}
}

func resolveOutputDir(name string) string {
	if flags.outputDir != "" {
		return flags.outputDir
	}
	return filepath.Join(".", name)
}

func printResult(w io.Writer, result *scaffold.Result) {
	success := color.New(color.FgGreen, color.Bold)
	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	if result.DryRun {
		color.New(color.FgYellow).Fprintf(w, "Dry run: would create %s/\n", result.OutputDir)
		for _, f := range result.Files {
			fmt.Fprintf(w, "  %s\n", f)
		}
	} else {
		success.Fprintf(w, "✓ Bundle generated at %s\n", bold.Sprint(result.OutputDir))
	}

	fmt.Fprintln(w)
	dim.Fprintln(w, "  ─────────────────────────────────────")
	fmt.Fprintf(w, "  📁 %s files\n", bold.Sprint(len(result.Files)))
	fmt.Fprintf(w, "  📂 %s directories\n", bold.Sprint(len(result.Dirs)))

	if len(result.Warnings) > 0 {
		fmt.Fprintln(w)
		for _, warning := range result.Warnings {
			printWarning(w, warning)
		}
	}
}

func printWarning(w io.Writer, msg string) {
	color.New(color.FgYellow).Fprintf(w, "  ! %s\n", msg)
}

func printNextSteps(w io.Writer, name string) {
	cyan := color.New(color.FgCyan)
	color.New(color.Bold).Fprintln(w, "\n  📋 Next steps:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s %s\n", cyan.Sprint("cd"), name)
	fmt.Fprintf(w, "  %s\n", cyan.Sprint("pnpm install"))
	fmt.Fprintf(w, "  %s\n", cyan.Sprint("pnpm run build"))
	fmt.Fprintf(w, "  %s\n", cyan.Sprint("pnpm run test"))
	fmt.Fprintln(w)
	color.New(color.FgYellow).Fprintln(w, "  📖 Read MANUAL.md for manual setup steps")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
