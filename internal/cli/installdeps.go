package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var installDepsProject string

var installDepsCmd = &cobra.Command{
	Use:   "install-deps",
	Short: "Install a tracked project's dependencies",
	Long: `Install dependencies for a tracked project into its associated environment
using the environment's own pip.

requirements.txt is installed with 'pip install -r'; a pyproject.toml is
installed editable with 'pip install -e'. Unlike the optional install during
create, a pip failure here fails the command.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		installed, err := eng.InstallDeps(context.Background(), installDepsProject)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(map[string]any{"project": installDepsProject, "installed": installed})
		}

		if len(installed) == 0 {
			PrintInfo("No dependency manifests found.")
			return nil
		}

		PrintSuccess(fmt.Sprintf("Installed %s", PrintCount(len(installed), "manifest", "manifests")))
		PrintList(installed, 1)
		return nil
	},
}

func init() {
	installDepsCmd.Flags().StringVarP(&installDepsProject, "project", "p", "", "Tracked project to install for (required)")
	_ = installDepsCmd.MarkFlagRequired("project")
}
