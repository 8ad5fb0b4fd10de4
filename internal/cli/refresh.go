package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Re-link every tracked project",
	Long: `Re-establish the .venv link and rewrite the activation script for every
tracked project that has both a directory and an associated environment.

Projects that cannot be refreshed are reported with a reason and do not stop
the rest.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Refresh()
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSection("Refresh Projects")
		if len(result.Updated) == 0 {
			PrintInfo("Nothing to refresh.")
		} else {
			PrintSuccess(fmt.Sprintf("Refreshed %s", PrintCount(len(result.Updated), "project", "projects")))
			PrintList(result.Updated, 1)
		}

		if len(result.Skipped) > 0 {
			fmt.Println()
			names := make([]string, 0, len(result.Skipped))
			for name := range result.Skipped {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				PrintWarning(fmt.Sprintf("%s: %s", name, result.Skipped[name]))
			}
		}
		return nil
	},
}
