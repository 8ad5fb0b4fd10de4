package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var untrackCmd = &cobra.Command{
	Use:   "untrack <project>",
	Short: "Remove a project from the registry",
	Long: `Remove a project from the tracked-projects registry.

The environment and the project's files (including .venv and activate.sh)
are left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		if err := eng.Untrack(args[0]); err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(map[string]any{"untracked": args[0]})
		}

		PrintSuccess(fmt.Sprintf("Untracked project %s", args[0]))
		return nil
	},
}
