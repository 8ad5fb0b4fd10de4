package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cshenry/venvman/internal/store"
)

var (
	deleteProject string
	deleteEnv     string
	deleteYes     bool
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete an environment from the store",
	Long: `Delete an environment permanently from the central store.

Exactly one of --project or --env must be given. With --project, the single
environment matching the project name is deleted; when several versions exist
the command lists them and asks for --env instead. With --env, the exact
environment name is used.

Repository .venv links are never touched: a link that pointed at the deleted
environment is left dangling until the next create or refresh.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if (deleteProject == "") == (deleteEnv == "") {
			return fmt.Errorf("exactly one of --project or --env is required")
		}
		// JSON mode cannot prompt, so the confirmation must be explicit.
		if jsonOutput && !deleteYes {
			return fmt.Errorf("--json requires --yes for delete")
		}

		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		ref := deleteProject
		exact := false
		if deleteEnv != "" {
			ref = deleteEnv
			exact = true
		}

		env, err := eng.ResolveEnvironment(ref, exact)
		if err != nil {
			var ambiguous *store.AmbiguousError
			if !jsonOutput && errors.As(err, &ambiguous) {
				PrintError(fmt.Sprintf("Project %q has multiple environments:", ambiguous.Project))
				PrintList(ambiguous.Candidates, 1)
				PrintInfo("Re-run with --env to pick one.")
			}
			return err
		}

		if !deleteYes {
			PrintSection("Delete Environment")
			PrintLabelValue("Name", env.Name)
			PrintLabelValue("Path", env.Path)
			fmt.Println()
			if !promptConfirm("Delete permanently?") {
				PrintInfo("Aborted.")
				return nil
			}
		}

		if err := eng.DeleteEnvironment(env.Name); err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(map[string]any{"deleted": env.Name})
		}

		PrintSuccess(fmt.Sprintf("Deleted environment %s", env.Name))
		return nil
	},
}

func init() {
	deleteCmd.Flags().StringVarP(&deleteProject, "project", "p", "", "Project whose single environment should be deleted")
	deleteCmd.Flags().StringVarP(&deleteEnv, "env", "e", "", "Exact environment name to delete")
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}

// promptConfirm prompts the user for a yes/no confirmation.
func promptConfirm(prompt string) bool {
	fmt.Printf("%s (y/N): ", prompt)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
