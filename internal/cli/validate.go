package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minions-dev/create-minions-bundle/internal/bundlefile"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <bundle-file>",
	Short: "Check a bundle file against the schema and decode its definitions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd, args[0])
	},
}

func runValidate(cmd *cobra.Command, path string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Bundle validation: %s\n", path)

	result, err := bundlefile.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return fmt.Errorf("bundle validation failed: %w", err)
	}

	if !result.Valid {
		fmt.Fprintf(out, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(out, "    - %s\n", issue)
		}
		return fmt.Errorf("bundle file %s has %d validation issue(s)", path, len(result.Issues))
	}

	// Schema only checks shapes; decoding catches malformed definitions.
	file, err := bundlefile.Load(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return fmt.Errorf("bundle validation failed: %w", err)
	}

	d := file.Definitions
	name := file.Meta.Name
	if name == "" {
		name = "(unnamed)"
	}
	skills := 0
	if d.Skills != nil {
		skills = len(d.Skills.Items)
	}
	fmt.Fprintf(out, "  [ OK ] %s: %d types, %d relations, %d views, %d skills\n",
		name, len(d.Types), len(d.Relations), len(d.Views), skills)
	return nil
}
