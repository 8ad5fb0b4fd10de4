package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	infoProject string
	infoEnv     string
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show details for one environment",
	Long: `Show path, Python version, interpreter, size, and creation time for one
environment.

Exactly one of --project or --env must be given. With --project, the single
environment matching the project name is shown; with --env, the exact
environment name is used.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if (infoProject == "") == (infoEnv == "") {
			return fmt.Errorf("exactly one of --project or --env is required")
		}

		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		ref := infoProject
		exact := false
		if infoEnv != "" {
			ref = infoEnv
			exact = true
		}

		result, err := eng.Info(ref, exact)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(map[string]any{
				"name":        result.Env.Name,
				"path":        result.Env.Path,
				"project":     result.Env.Project,
				"sizeBytes":   result.Meta.SizeBytes,
				"createdAt":   result.Meta.CreatedAt,
				"interpreter": result.Meta.Interpreter,
			})
		}

		pythonVersion := result.Env.Version.String()
		if result.Env.Project == "" {
			pythonVersion = "unknown"
		}
		interpreter := result.Meta.Interpreter
		if interpreter == "" {
			interpreter = "unknown"
		}
		created := "unknown"
		if !result.Meta.CreatedAt.IsZero() {
			created = result.Meta.CreatedAt.Format("2006-01-02 15:04:05")
		}

		PrintSection("Environment Info")
		PrintLabelValue("Name", result.Env.Name)
		PrintLabelValue("Path", result.Env.Path)
		PrintLabelValue("Python", pythonVersion)
		PrintLabelValue("Interpreter", interpreter)
		PrintLabelValue("Size", FormatSize(result.Meta.SizeBytes))
		PrintLabelValue("Created", created)
		return nil
	},
}

func init() {
	infoCmd.Flags().StringVarP(&infoProject, "project", "p", "", "Project whose single environment should be shown")
	infoCmd.Flags().StringVarP(&infoEnv, "env", "e", "", "Exact environment name to show")
}
