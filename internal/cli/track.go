package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cshenry/venvman/internal/engine"
)

var (
	trackProject string
	trackEnv     string
)

var trackCmd = &cobra.Command{
	Use:   "track [dir]",
	Short: "Register a project directory in the registry",
	Long: `Register a project directory so refresh and install-deps can find it.

The project name defaults to the directory's basename. Without --venv, the
single store environment matching the project name is associated
automatically; with several candidates the command fails and asks for --venv.
When an environment is associated, the .venv link and activation script are
set up as well.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		dir := ""
		if len(args) > 0 {
			dir = args[0]
		} else {
			dir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get current directory: %w", err)
			}
		}

		result, err := eng.Track(&engine.TrackRequest{
			Dir:     dir,
			Project: trackProject,
			Env:     trackEnv,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSuccess(fmt.Sprintf("Tracking project %s", result.Project))
		PrintLabelValue("Path", result.Path)
		if result.Env != "" {
			PrintLabelValue("Environment", result.Env)
		} else {
			PrintInfo("No environment associated yet; 'venvman create' will fill it in.")
		}
		return nil
	},
}

func init() {
	trackCmd.Flags().StringVarP(&trackProject, "project", "p", "", "Project name (default: directory basename)")
	trackCmd.Flags().StringVarP(&trackEnv, "venv", "e", "", "Environment name to associate")
}
