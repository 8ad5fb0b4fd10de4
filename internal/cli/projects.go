package cli

import (
	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List tracked projects",
	Long: `Display every tracked project with its directory, associated environment,
and whether both still exist on disk.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		statuses, err := eng.Projects()
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(statuses)
		}

		if len(statuses) == 0 {
			PrintSection("Tracked Projects")
			PrintEmptyState("No tracked projects")
			return nil
		}

		PrintSection("Tracked Projects")
		rows := make([][]string, 0, len(statuses))
		for _, s := range statuses {
			path := s.Path
			if path == "" {
				path = "-"
			} else if !s.PathExists {
				path += " (missing)"
			}
			env := s.Env
			if env == "" {
				env = "-"
			} else if !s.EnvExists {
				env += " (missing)"
			}
			deps := "-"
			if s.LastDepsInstall != nil {
				deps = s.LastDepsInstall.Format("2006-01-02 15:04")
			}
			rows = append(rows, []string{s.Name, env, path, deps})
		}
		PrintTable([]string{"Project", "Environment", "Path", "Deps Installed"}, rows)
		return nil
	},
}
