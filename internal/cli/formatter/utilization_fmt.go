package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/teamload/internal/contract"
	"github.com/alexanderramin/teamload/internal/utilization"
)

const utilizationBarWidth = 10

// FormatUtilization renders the team table, each team's member table and
// the global summary.
func FormatUtilization(resp *contract.UtilizationResponse) string {
	var b strings.Builder
	b.WriteString(Dim(fmt.Sprintf("%s  (%d working days)", FormatRange(resp.RangeStart, resp.RangeEnd), resp.WorkingDays)))
	b.WriteString("\n\n")

	if len(resp.Teams) == 0 {
		b.WriteString(Dim("No teams in range.") + "\n")
		return RenderBox("Utilization", b.String())
	}

	rows := make([][]string, 0, len(resp.Teams))
	for _, t := range resp.Teams {
		rows = append(rows, []string{
			Bold(t.TeamName),
			fmt.Sprintf("%d", len(t.Members)),
			FormatHours(t.BaseHours),
			FormatHours(t.WorkHours),
			RenderUtilizationBar(t.Utilization, utilizationBarWidth),
		})
	}
	b.WriteString(RenderTable([]string{"TEAM", "USERS", "BASE", "WORK", "UTILIZATION"}, rows, 1, 2, 3))

	for _, t := range resp.Teams {
		if len(t.Members) == 0 {
			continue
		}
		b.WriteString("\n" + Header(t.TeamName) + "\n")
		b.WriteString(memberTable(t.Members))
	}

	b.WriteString("\n" + summaryLine(resp.Summary) + "\n")
	if resp.UnattributedHours > 0 {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("  WARNING: %s logged without a team", FormatHours(resp.UnattributedHours))) + "\n")
	}
	return RenderBox("Utilization", b.String())
}

// FormatWeekly renders one row per ISO week with the change against the
// previous week.
func FormatWeekly(resp *contract.WeeklyResponse) string {
	var b strings.Builder
	b.WriteString(Dim(FormatRange(resp.RangeStart, resp.RangeEnd)) + "\n\n")

	rows := make([][]string, 0, len(resp.Weeks))
	for _, w := range resp.Weeks {
		rows = append(rows, []string{
			w.Label,
			fmt.Sprintf("%d", w.WorkingDays),
			FormatHours(w.Summary.TotalBaseHours),
			FormatHours(w.Summary.TotalWorkHours),
			RenderUtilizationBar(w.Summary.TotalUtilization, utilizationBarWidth),
			FormatChange(w.ChangeFromPrevious),
			TrendIndicator(w.Trend),
		})
	}
	b.WriteString(RenderTable([]string{"WEEK", "DAYS", "BASE", "WORK", "UTILIZATION", "CHANGE", "TREND"}, rows, 1, 2, 3, 5))
	b.WriteString("\n" + summaryLine(resp.Summary) + "\n")
	return RenderBox("Weekly Utilization", b.String())
}

// FormatRanking renders the top and bottom member lists.
func FormatRanking(resp *contract.RankingResponse) string {
	var b strings.Builder
	b.WriteString(Dim(FormatRange(resp.RangeStart, resp.RangeEnd)) + "\n\n")

	b.WriteString(Header("Top") + "\n")
	b.WriteString(rankTable(resp.Ranking.Top))
	b.WriteString("\n" + Header("Needs attention") + "\n")
	if len(resp.Ranking.Bottom) == 0 {
		b.WriteString(Dim("Everyone is at or above 70%.") + "\n")
	} else {
		b.WriteString(rankTable(resp.Ranking.Bottom))
	}
	return RenderBox("Ranking", b.String())
}

// FormatHoursComparison renders current against previous period hours per entity.
func FormatHoursComparison(resp *contract.HoursResponse) string {
	var b strings.Builder
	b.WriteString(Dim(fmt.Sprintf("current %s  vs  previous %s",
		FormatRange(resp.CurrentStart, resp.CurrentEnd),
		FormatRange(resp.PreviousStart, resp.PreviousEnd))))
	b.WriteString("\n\n")

	if len(resp.Rows) == 0 {
		b.WriteString(Dim("No hours logged in either period.") + "\n")
		return RenderBox("Hours by "+string(resp.GroupBy), b.String())
	}

	rows := make([][]string, 0, len(resp.Rows))
	for _, r := range resp.Rows {
		rows = append(rows, []string{
			Bold(r.Name),
			FormatHours(r.CurrentHours),
			FormatHours(r.PreviousHours),
			fmt.Sprintf("%+.1f%%", r.ChangeRate),
			TrendIndicator(r.Trend),
		})
	}
	b.WriteString(RenderTable([]string{strings.ToUpper(string(resp.GroupBy)), "CURRENT", "PREVIOUS", "CHANGE", "TREND"}, rows, 1, 2, 3))
	return RenderBox("Hours by "+string(resp.GroupBy), b.String())
}

func memberTable(members []utilization.UserUtilization) string {
	rows := make([][]string, 0, len(members))
	for _, m := range members {
		rows = append(rows, []string{
			m.Username,
			fmt.Sprintf("%d", m.MembershipDays),
			FormatHours(m.BaseHours),
			FormatHours(m.WorkHours),
			FormatPercent(m.Utilization),
			UtilizationIndicator(m.Status),
		})
	}
	return RenderTable([]string{"USER", "DAYS", "BASE", "WORK", "UTIL", "STATUS"}, rows, 1, 2, 3, 4)
}

func rankTable(members []utilization.UserUtilization) string {
	rows := make([][]string, 0, len(members))
	for i, m := range members {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			m.Username,
			m.TeamName,
			FormatPercent(m.Utilization),
			UtilizationIndicator(m.Status),
		})
	}
	return RenderTable([]string{"#", "USER", "TEAM", "UTIL", "STATUS"}, rows, 0, 3)
}

func summaryLine(s utilization.Summary) string {
	return fmt.Sprintf("%s %s across %d users (%s of %s)",
		Bold("Total"),
		FormatPercent(s.TotalUtilization),
		s.TotalUsers,
		FormatHours(s.TotalWorkHours),
		FormatHours(s.TotalBaseHours),
	)
}
