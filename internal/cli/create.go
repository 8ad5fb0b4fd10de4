package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cshenry/venvman/internal/engine"
)

var (
	createProject     string
	createPython      string
	createDir         string
	createForce       bool
	createInstallDeps bool
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an environment and link it into the project",
	Long: `Create a virtual environment in the central store and link it into the
project directory as .venv.

The environment is named <project>-py<major.minor> after the version the
resolved interpreter actually reports, not after the requested version. If
the environment already exists it is reused untouched; the .venv link and
activation script are reconciled either way.

An existing .venv that is a real directory (not a symlink) stops the command
unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, settings, err := newEngine()
		if err != nil {
			return err
		}

		ctx := context.Background()

		dir := createDir
		if dir == "" {
			dir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get current directory: %w", err)
			}
		}

		requested := createPython
		if requested == "" {
			requested = settings.DefaultPython
		}

		req := &engine.CreateRequest{
			Project:     createProject,
			Python:      requested,
			Dir:         dir,
			Force:       createForce,
			InstallDeps: createInstallDeps,
		}

		result, err := eng.Create(ctx, req)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSection("Create Environment")
		if result.Created {
			PrintSuccess(fmt.Sprintf("Created environment %s", result.Env.Name))
		} else {
			PrintInfo(fmt.Sprintf("Environment %s already exists, reusing it", result.Env.Name))
		}
		PrintLabelValue("Path", result.Env.Path)
		PrintLabelValue("Interpreter", result.Interpreter)
		PrintLabelValue("Python", result.Version.String())
		PrintLabelValue("Link", result.LinkPath)
		PrintLabelValue("Script", result.ScriptPath)

		if len(result.DepsInstalled) > 0 {
			fmt.Println()
			PrintInfo(fmt.Sprintf("Installed %s", PrintCount(len(result.DepsInstalled), "manifest", "manifests")))
			PrintList(result.DepsInstalled, 1)
		}
		if result.DepsWarning != "" {
			fmt.Println()
			PrintWarning(result.DepsWarning)
		}

		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&createProject, "project", "p", "", "Project name (required)")
	createCmd.Flags().StringVar(&createPython, "python", "", "Requested Python version, e.g. 3.12")
	createCmd.Flags().StringVarP(&createDir, "dir", "d", "", "Project directory (default: current directory)")
	createCmd.Flags().BoolVarP(&createForce, "force", "f", false, "Replace a non-symlink .venv")
	createCmd.Flags().BoolVar(&createInstallDeps, "install-deps", false, "Install from requirements.txt / pyproject.toml after setup")
	_ = createCmd.MarkFlagRequired("project")
}
