package cli

import (
	"github.com/alexanderramin/teamload/internal/cli/formatter"
	"github.com/alexanderramin/teamload/internal/contract"
	"github.com/spf13/cobra"
)

func newProjectsCmd(a *App) *cobra.Command {
	var today string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Show project progress, schedule status and remaining periods",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := contract.ParseToday(today, a.now())
			if err != nil {
				return err
			}
			resp, err := a.Projects.Overview(cmd.Context(), contract.ProjectOverviewRequest{Today: day})
			if err != nil {
				return err
			}
			return render(cmd, asJSON, resp, func() string { return formatter.FormatProjectOverview(resp) })
		},
	}
	cmd.Flags().StringVar(&today, "today", "", "Reference date (YYYY-MM-DD, default: today)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}

func newTasksCmd(a *App) *cobra.Command {
	var today string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tasks PROJECT_ID",
		Short: "Show a project's tasks with their deadline status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := contract.ParseToday(today, a.now())
			if err != nil {
				return err
			}
			resp, err := a.Projects.Tasks(cmd.Context(), contract.TaskListRequest{ProjectID: args[0], Today: day})
			if err != nil {
				return err
			}
			return render(cmd, asJSON, resp, func() string { return formatter.FormatTasks(resp) })
		},
	}
	cmd.Flags().StringVar(&today, "today", "", "Reference date (YYYY-MM-DD, default: today)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}
