package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Seed the registry from existing store environments",
	Long: `Scan the store and register a project for every environment whose name
follows the <project>-py<major.minor> scheme.

Already-tracked projects and environments with other names are skipped.
Project directories are unknown at this point; 'venvman track' or
'venvman create' fills them in later.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Bootstrap()
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSection("Bootstrap Registry")
		if len(result.Added) == 0 {
			PrintInfo("Nothing to add.")
		} else {
			PrintSuccess(fmt.Sprintf("Added %s", PrintCount(len(result.Added), "project", "projects")))
			PrintList(result.Added, 1)
		}
		if len(result.Skipped) > 0 {
			fmt.Println()
			PrintInfo(fmt.Sprintf("Skipped %s", PrintCount(len(result.Skipped), "environment", "environments")))
			PrintList(result.Skipped, 1)
		}
		return nil
	},
}
