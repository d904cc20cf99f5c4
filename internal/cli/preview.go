package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/minions-dev/create-minions-bundle/internal/bundle"
	"github.com/minions-dev/create-minions-bundle/internal/bundlefile"
	"github.com/minions-dev/create-minions-bundle/internal/codegen"
)

var previewSections = []string{"types", "relations", "views", "skills", "dependencies"}

var previewSection string

func init() {
	previewCmd.Flags().StringVar(&previewSection, "section", "all",
		"Section to print: "+strings.Join(previewSections, ", ")+" or all")
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview <bundle-file>",
	Short: "Print the generated code for a bundle file",
	Long: `Generate the TypeScript and Markdown blocks for a bundle file and print
them without writing anything.

Examples:
  create-minions-bundle preview bundle.toml
  create-minions-bundle preview bundle.yaml --section types`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if previewSection != "all" && !contains(previewSections, previewSection) {
			return fmt.Errorf("--section must be one of %s or all, got %q", strings.Join(previewSections, ", "), previewSection)
		}

		file, err := bundlefile.Load(args[0])
		if err != nil {
			return err
		}
		out, err := codegen.Generate(previewConfig(file))
		if err != nil {
			return err
		}
		return printPreview(cmd.OutOrStdout(), out, previewSection)
	},
}

// previewConfig builds a configuration from the file alone. The name feeds
// the slug in inline type ids (bundle-<slug>-<type>).
func previewConfig(file *bundlefile.File) *bundle.Config {
	name := file.Meta.Name
	if name == "" {
		name = "bundle"
	}
	return &bundle.Config{
		Project:     bundle.Project{Name: name, Slug: bundle.Slug(name)},
		Definitions: file.Definitions,
	}
}

func printPreview(w io.Writer, out *codegen.Output, section string) error {
	header := color.New(color.FgCyan, color.Bold)
	blocks := map[string]string{
		"types":        out.TypesCode,
		"relations":    out.RelationsCode,
		"views":        out.ViewsCode,
		"skills":       out.SkillsCode,
		"dependencies": dependencyList(out.Dependencies),
	}
	files := map[string]string{
		"types":        "src/types.ts",
		"relations":    "src/relations.ts",
		"views":        "src/views.ts",
		"skills":       "skills/SKILL.md",
		"dependencies": "package.json dependencies",
	}

	for _, name := range previewSections {
		if section != "all" && section != name {
			continue
		}
		if section == "all" {
			header.Fprintf(w, "// ── %s ──\n", files[name])
		}
		if _, err := fmt.Fprint(w, blocks[name]); err != nil {
			return err
		}
		if section == "all" {
			fmt.Fprintln(w)
		}
	}
	return nil
}

func dependencyList(deps []codegen.Dependency) string {
	if len(deps) == 0 {
		return "(none)\n"
	}
	var b strings.Builder
	for _, d := range deps {
		fmt.Fprintf(&b, "%s@%s\n", d.Module, d.Version)
	}
	return b.String()
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
