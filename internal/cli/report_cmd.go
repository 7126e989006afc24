package cli

import (
	"github.com/alexanderramin/teamload/internal/cli/formatter"
	"github.com/alexanderramin/teamload/internal/contract"
	"github.com/spf13/cobra"
)

func newUtilizationCmd(a *App) *cobra.Command {
	var f utilizationFlags

	cmd := &cobra.Command{
		Use:   "utilization",
		Short: "Show per-team and per-user utilization for a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := f.request(a)
			if err != nil {
				return err
			}
			resp, err := a.Utilization.Report(cmd.Context(), req)
			if err != nil {
				return err
			}
			return render(cmd, f.asJSON, resp, func() string { return formatter.FormatUtilization(resp) })
		},
	}
	f.register(cmd)
	return cmd
}

func newWeeklyCmd(a *App) *cobra.Command {
	var f utilizationFlags

	cmd := &cobra.Command{
		Use:   "weekly",
		Short: "Show utilization per ISO week with week-over-week trend",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := f.request(a)
			if err != nil {
				return err
			}
			resp, err := a.Utilization.Weekly(cmd.Context(), req)
			if err != nil {
				return err
			}
			return render(cmd, f.asJSON, resp, func() string { return formatter.FormatWeekly(resp) })
		},
	}
	f.register(cmd)
	return cmd
}

func newRankingCmd(a *App) *cobra.Command {
	var f utilizationFlags

	cmd := &cobra.Command{
		Use:   "ranking",
		Short: "Show the highest and lowest utilization members",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := f.request(a)
			if err != nil {
				return err
			}
			resp, err := a.Utilization.Ranking(cmd.Context(), req)
			if err != nil {
				return err
			}
			return render(cmd, f.asJSON, resp, func() string { return formatter.FormatRanking(resp) })
		},
	}
	f.register(cmd)
	return cmd
}

func newHoursCmd(a *App) *cobra.Command {
	var f rangeFlags
	var group string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "hours",
		Short: "Compare logged hours against the previous period of equal length",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := f.resolve(a)
			if err != nil {
				return err
			}
			resp, err := a.Utilization.HoursComparison(cmd.Context(), contract.HoursRequest{
				Range:   r,
				GroupBy: contract.HoursGroup(group),
			})
			if err != nil {
				return err
			}
			return render(cmd, asJSON, resp, func() string { return formatter.FormatHoursComparison(resp) })
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&group, "group", string(contract.HoursByProject), "Group by project or team")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}
