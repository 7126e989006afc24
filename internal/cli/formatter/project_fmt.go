package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/teamload/internal/contract"
	"github.com/alexanderramin/teamload/internal/domain"
	"github.com/alexanderramin/teamload/internal/progress"
)

const projectProgressBarWidth = 10

// FormatProjectOverview renders the project table and the schedule, period
// and status distributions.
func FormatProjectOverview(resp *contract.ProjectOverviewResponse) string {
	var b strings.Builder
	b.WriteString(Dim("as of "+FormatDate(&resp.Today)) + "\n\n")

	if len(resp.Projects) == 0 {
		b.WriteString(Dim("No projects.") + "\n")
		return RenderBox("Projects", b.String())
	}

	rows := make([][]string, 0, len(resp.Projects))
	for _, p := range resp.Projects {
		rows = append(rows, []string{
			Bold(p.Name),
			StatusPill(p.Status),
			RenderProgress(float64(p.Progress), projectProgressBarWidth),
			ScheduleIndicator(p.ScheduleStatus),
			FormatDate(p.PlanEndDate),
			RemainingDays(p.RemainingDays),
			fmt.Sprintf("%d/%d", p.TaskCompleted, p.TaskTotal),
		})
	}
	b.WriteString(RenderTable([]string{"NAME", "STATUS", "PROGRESS", "SCHEDULE", "PLAN END", "LEFT", "TASKS"}, rows, 5, 6))

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %.1f%%\n", Bold("Average progress"), resp.AverageProgress))
	b.WriteString(fmt.Sprintf("%s %s, %s, %s\n",
		Bold("Schedule"),
		StyleRed.Render(fmt.Sprintf("%d Delayed", resp.Schedule[domain.ScheduleDelayed])),
		StyleYellow.Render(fmt.Sprintf("%d Imminent", resp.Schedule[domain.ScheduleImminent])),
		StyleGreen.Render(fmt.Sprintf("%d Normal", resp.Schedule[domain.ScheduleNormal])),
	))

	periods := make([]string, 0, len(progress.OrderedBuckets()))
	for _, bucket := range progress.OrderedBuckets() {
		if n := resp.Periods[bucket]; n > 0 {
			periods = append(periods, fmt.Sprintf("%s %d", PeriodLabel(bucket), n))
		}
	}
	if len(periods) > 0 {
		b.WriteString(Bold("Remaining") + " " + strings.Join(periods, Dim(" · ")) + "\n")
	}
	return RenderBox("Projects", b.String())
}

// FormatTasks renders one project's summary line and its task table.
func FormatTasks(resp *contract.TaskListResponse) string {
	var b strings.Builder
	p := resp.Project
	b.WriteString(fmt.Sprintf("%s  %s  %s\n\n",
		StatusPill(p.Status),
		RenderProgress(float64(p.Progress), projectProgressBarWidth),
		ScheduleIndicator(p.ScheduleStatus),
	))

	rows := make([][]string, 0, len(resp.Tasks))
	for _, t := range resp.Tasks {
		weight := FormatHours(t.Weight)
		if !t.IsProgressEligible {
			weight = Dim("excluded")
		}
		rows = append(rows, []string{
			t.Name,
			fmt.Sprintf("%d%%", t.Progress),
			weight,
			FormatDate(t.PlanEndDate),
			ScheduleIndicator(t.ScheduleStatus),
		})
	}
	b.WriteString(RenderTable([]string{"TASK", "PROGRESS", "WEIGHT", "PLAN END", "SCHEDULE"}, rows, 1, 2))
	return RenderBox(p.Name, b.String())
}

// FormatImportResult renders the row counts written by an import.
func FormatImportResult(res *contract.ImportResult) string {
	mode := "Appended"
	if res.Replaced {
		mode = "Replaced"
	}
	return fmt.Sprintf("%s %s: %d teams, %d users, %d memberships, %d projects, %d tasks, %d work logs\n",
		StyleGreen.Render("✔"), mode,
		res.Teams, res.Users, res.Memberships, res.Projects, res.Tasks, res.WorkLogs)
}
