package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/teamload/internal/contract"
	"github.com/alexanderramin/teamload/internal/domain"
	"github.com/alexanderramin/teamload/internal/progress"
	"github.com/alexanderramin/teamload/internal/utilization"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func date(m time.Month, d int) time.Time {
	return time.Date(2025, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"NAME", "HOURS"},
		[][]string{{"kim", "8h"}, {"lee-long", "16h"}},
		1,
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "NAME      HOURS", lines[0])
	assert.Equal(t, "kim          8h", lines[2])
	assert.Equal(t, "lee-long    16h", lines[3])
	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderProgress_Clamps(t *testing.T) {
	assert.Equal(t, "[░░░░]   0%", stripANSI(RenderProgress(-5, 4)))
	assert.Equal(t, "[██░░]  50%", stripANSI(RenderProgress(50, 4)))
	assert.Equal(t, "[████] 100%", stripANSI(RenderProgress(140, 4)))
	assert.Equal(t, "[█░]  50%", stripANSI(RenderProgress(50, 1)), "width clamps to 2")
}

func TestRenderUtilizationBar_ShowsRawValue(t *testing.T) {
	assert.Equal(t, "[████] 120.0%", stripANSI(RenderUtilizationBar(120, 4)))
	assert.Equal(t, "[█░░░]  33.3%", stripANSI(RenderUtilizationBar(33.3, 4)))
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "8h", FormatHours(8))
	assert.Equal(t, "7.5h", FormatHours(7.5))
	assert.Equal(t, "66.7%", FormatPercent(66.666))
	assert.Equal(t, "--", FormatDate(nil))
	d := date(time.March, 14)
	assert.Equal(t, "2025-03-14", FormatDate(&d))

	change := -2.5
	assert.Equal(t, "-2.5p", FormatChange(&change))
	assert.Equal(t, "--", stripANSI(FormatChange(nil)))

	days := func(n int) *int { return &n }
	assert.Equal(t, "D+3", stripANSI(RemainingDays(days(-3))))
	assert.Equal(t, "D-Day", stripANSI(RemainingDays(days(0))))
	assert.Equal(t, "D-12", stripANSI(RemainingDays(days(12))))
	assert.Equal(t, "--", stripANSI(RemainingDays(nil)))
}

func TestIndicators(t *testing.T) {
	assert.Equal(t, "● LOW", stripANSI(UtilizationIndicator(domain.UtilizationLow)))
	assert.Equal(t, "● MISSING", stripANSI(UtilizationIndicator(domain.UtilizationMissingWork)))
	assert.Equal(t, "--", stripANSI(ScheduleIndicator(domain.ScheduleNone)))
	assert.Equal(t, "▲ Delayed", stripANSI(ScheduleIndicator(domain.ScheduleDelayed)))
	assert.Equal(t, "✚ new", stripANSI(TrendIndicator(domain.TrendNew)))
	assert.Equal(t, "─ stable", stripANSI(TrendIndicator("")))
	assert.Equal(t, "✔ 완료", stripANSI(StatusPill(domain.ProjectCompleted)))
	assert.Equal(t, "Within 7d", PeriodLabel(domain.PeriodImminent))
}

func TestFormatUtilization(t *testing.T) {
	resp := &contract.UtilizationResponse{
		RangeStart:  date(time.March, 10),
		RangeEnd:    date(time.March, 14),
		WorkingDays: 5,
		Teams: []utilization.TeamUtilization{{
			TeamID: "dev", TeamName: "Development", BaseHours: 64, WorkHours: 32, Utilization: 50,
			Members: []utilization.UserUtilization{
				{Username: "kim", MembershipDays: 3, BaseHours: 24, WorkHours: 16, Utilization: 66.7, Status: domain.UtilizationNormal},
				{Username: "lee", MembershipDays: 5, BaseHours: 40, WorkHours: 16, Utilization: 40, Status: domain.UtilizationLow},
			},
		}},
		Summary:           utilization.Summary{TotalUtilization: 50, TotalUsers: 2, TotalBaseHours: 64, TotalWorkHours: 32},
		UnattributedHours: 4,
	}

	out := stripANSI(FormatUtilization(resp))
	assert.Contains(t, out, "UTILIZATION")
	assert.Contains(t, out, "2025-03-10 ~ 2025-03-14  (5 working days)")
	assert.Contains(t, out, "Development")
	assert.Contains(t, out, "66.7%")
	assert.Contains(t, out, "● LOW")
	assert.Contains(t, out, "Total 50.0% across 2 users (32h of 64h)")
	assert.Contains(t, out, "4h logged without a team")
}

func TestFormatUtilization_Empty(t *testing.T) {
	out := stripANSI(FormatUtilization(&contract.UtilizationResponse{Teams: []utilization.TeamUtilization{}}))
	assert.Contains(t, out, "No teams in range.")
}

func TestFormatWeekly(t *testing.T) {
	change := -50.0
	resp := &contract.WeeklyResponse{
		RangeStart: date(time.March, 10),
		RangeEnd:   date(time.March, 21),
		Weeks: []utilization.WeekUtilization{
			{Summary: utilization.Summary{TotalUtilization: 50}, Trend: domain.TrendStable},
			{Summary: utilization.Summary{TotalUtilization: 0}, ChangeFromPrevious: &change, Trend: domain.TrendDown},
		},
	}
	resp.Weeks[0].Label = "W11 (03/10~03/14)"
	resp.Weeks[1].Label = "W12 (03/17~03/21)"

	out := stripANSI(FormatWeekly(resp))
	assert.Contains(t, out, "W11 (03/10~03/14)")
	assert.Contains(t, out, "-50.0p")
	assert.Contains(t, out, "▼ down")
}

func TestFormatRanking(t *testing.T) {
	resp := &contract.RankingResponse{
		Ranking: utilization.Ranking{
			Top:    []utilization.UserUtilization{{Username: "kim", TeamName: "Development", Utilization: 90}},
			Bottom: []utilization.UserUtilization{},
		},
	}
	out := stripANSI(FormatRanking(resp))
	assert.Contains(t, out, "kim")
	assert.Contains(t, out, "Everyone is at or above 70%.")
}

func TestFormatHoursComparison(t *testing.T) {
	resp := &contract.HoursResponse{
		GroupBy: contract.HoursByProject,
		Rows: []utilization.HoursComparison{
			{EntityID: "p1", Name: "Billing Revamp", CurrentHours: 40, ChangeRate: 100, Trend: domain.TrendNew},
		},
	}
	out := stripANSI(FormatHoursComparison(resp))
	assert.Contains(t, out, "HOURS BY PROJECT")
	assert.Contains(t, out, "Billing Revamp")
	assert.Contains(t, out, "+100.0%")

	resp.Rows = nil
	assert.Contains(t, stripANSI(FormatHoursComparison(resp)), "No hours logged")
}

func TestFormatProjectOverview(t *testing.T) {
	plan := date(time.March, 14)
	left := 2
	resp := &contract.ProjectOverviewResponse{
		Today: date(time.March, 12),
		Projects: []progress.ProjectProgress{{
			Name: "Billing Revamp", Status: domain.ProjectInProgress, Progress: 25,
			ScheduleStatus: domain.ScheduleImminent, PlanEndDate: &plan, RemainingDays: &left,
			TaskTotal: 3, TaskCompleted: 1,
		}},
		AverageProgress: 25,
		Schedule:        map[domain.ScheduleStatus]int{domain.ScheduleImminent: 1},
		Periods:         map[domain.PeriodBucket]int{domain.PeriodImminent: 1},
	}

	out := stripANSI(FormatProjectOverview(resp))
	assert.Contains(t, out, "as of 2025-03-12")
	assert.Contains(t, out, "Billing Revamp")
	assert.Contains(t, out, "● Imminent")
	assert.Contains(t, out, "D-2")
	assert.Contains(t, out, "1/3")
	assert.Contains(t, out, "0 Delayed, 1 Imminent, 0 Normal")
	assert.Contains(t, out, "Remaining Within 7d 1")
}

func TestFormatTasks(t *testing.T) {
	resp := &contract.TaskListResponse{
		Project: progress.ProjectProgress{Name: "Billing Revamp", Status: domain.ProjectInProgress, Progress: 25},
		Tasks: []progress.TaskProgress{
			{Name: "API", Progress: 100, Weight: 10, IsProgressEligible: true},
			{Name: "Docs", Weight: 1},
		},
	}
	out := stripANSI(FormatTasks(resp))
	assert.Contains(t, out, "BILLING REVAMP")
	assert.Contains(t, out, "100%")
	assert.Contains(t, out, "excluded")
}

func TestFormatImportResult(t *testing.T) {
	out := stripANSI(FormatImportResult(&contract.ImportResult{Replaced: true, Teams: 3, WorkLogs: 7}))
	assert.Equal(t, "✔ Replaced: 3 teams, 0 users, 0 memberships, 0 projects, 0 tasks, 7 work logs\n", out)
}
