package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all environments in the store",
	Long: `Print every environment name in the central store, sorted, one per line.

A missing or empty store prints nothing and exits 0.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		envs, err := eng.List()
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(envs)
		}

		for _, env := range envs {
			fmt.Println(env.Name)
		}
		return nil
	},
}
