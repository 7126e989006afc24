package progress

import (
	"testing"
	"time"

	"github.com/alexanderramin/teamload/internal/calendar"
	"github.com/alexanderramin/teamload/internal/domain"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

var today = calendar.Date(2025, time.March, 12)

func day(offset int) *time.Time {
	return lo.ToPtr(today.AddDate(0, 0, offset))
}

func task(code string, hours float64) domain.ProjectTask {
	return domain.ProjectTask{
		ID:                 code,
		Name:               "task " + code,
		TaskProgressCode:   code,
		IsProgressEligible: true,
		PlanningTotalHours: hours,
	}
}

func TestWeightedProgress(t *testing.T) {
	tests := []struct {
		name  string
		tasks []domain.ProjectTask
		want  int
	}{
		{"weighted by planning hours", []domain.ProjectTask{task("100", 10), task("0", 30)}, 25},
		{"no tasks", nil, 0},
		{"single finished task", []domain.ProjectTask{task("100", 7)}, 100},
		{"missing estimates weigh one", []domain.ProjectTask{task("50", 0), task("100", 0)}, 75},
		{"rounds half up", []domain.ProjectTask{task("1", 1), task("0", 1)}, 1},
		{"malformed code counts as zero", []domain.ProjectTask{task("abc", 1), task("100", 1)}, 50},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, WeightedProgress(tc.tasks))
		})
	}
}

func TestWeightedProgress_IgnoresIneligibleTasks(t *testing.T) {
	ineligible := task("0", 100)
	ineligible.IsProgressEligible = false

	assert.Equal(t, 100, WeightedProgress([]domain.ProjectTask{task("100", 5), ineligible}))
	assert.Equal(t, 0, WeightedProgress([]domain.ProjectTask{ineligible}))
}

func TestWeightedProgress_StaysInRange(t *testing.T) {
	tasks := []domain.ProjectTask{task("250", 3), task("-5", 2), task("37", 0.5)}
	got := WeightedProgress(tasks)
	assert.GreaterOrEqual(t, got, 0)
	assert.LessOrEqual(t, got, 100)
}

func TestScheduleStatus(t *testing.T) {
	tests := []struct {
		name    string
		project domain.Project
		want    domain.ScheduleStatus
	}{
		{"in progress, two days left", domain.Project{StatusName: domain.ProjectInProgress, PlanEndDate: day(2)}, domain.ScheduleImminent},
		{"in progress, three days left", domain.Project{StatusName: domain.ProjectInProgress, PlanEndDate: day(3)}, domain.ScheduleImminent},
		{"in progress, due today", domain.Project{StatusName: domain.ProjectInProgress, PlanEndDate: day(0)}, domain.ScheduleImminent},
		{"in progress, past plan end", domain.Project{StatusName: domain.ProjectInProgress, PlanEndDate: day(-1)}, domain.ScheduleDelayed},
		{"review, plenty of time", domain.Project{StatusName: domain.ProjectReview, PlanEndDate: day(10)}, domain.ScheduleNormal},
		{"waiting, no plan end", domain.Project{StatusName: domain.ProjectWaiting}, domain.ScheduleNone},
		{"not started", domain.Project{StatusName: domain.ProjectNotStarted, PlanEndDate: day(-10)}, domain.ScheduleNone},
		{"on hold", domain.Project{StatusName: domain.ProjectOnHold, PlanEndDate: day(-10)}, domain.ScheduleNone},
		{"completed late", domain.Project{StatusName: domain.ProjectCompleted, PlanEndDate: day(-10), EndDate: day(-5)}, domain.ScheduleDelayed},
		{"completed on time", domain.Project{StatusName: domain.ProjectCompleted, PlanEndDate: day(-5), EndDate: day(-5)}, domain.ScheduleNormal},
		{"completed without end date", domain.Project{StatusName: domain.ProjectCompleted, PlanEndDate: day(-5)}, domain.ScheduleNone},
		{"unknown status", domain.Project{StatusName: "archived", PlanEndDate: day(-5)}, domain.ScheduleNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ScheduleStatus(tc.project, today))
		})
	}
}

func TestScheduleStatus_IgnoresTimeOfDay(t *testing.T) {
	p := domain.Project{StatusName: domain.ProjectInProgress, PlanEndDate: day(0)}
	late := today.Add(23 * time.Hour)
	assert.Equal(t, domain.ScheduleImminent, ScheduleStatus(p, late))
}

func TestTaskScheduleStatus(t *testing.T) {
	open := task("40", 8)
	open.PlanEndDate = day(-1)
	assert.Equal(t, domain.ScheduleDelayed, TaskScheduleStatus(open, today))

	done := task("100", 8)
	done.PlanEndDate = day(-1)
	assert.Equal(t, domain.ScheduleNone, TaskScheduleStatus(done, today))

	flagged := task("20", 8)
	flagged.PlanEndDate = day(-1)
	flagged.IsCompleted = true
	assert.Equal(t, domain.ScheduleNone, TaskScheduleStatus(flagged, today))

	undated := task("20", 8)
	assert.Equal(t, domain.ScheduleNone, TaskScheduleStatus(undated, today))

	soon := task("20", 8)
	soon.PlanEndDate = day(1)
	assert.Equal(t, domain.ScheduleImminent, TaskScheduleStatus(soon, today))
}

func TestRemainingPeriodBucket(t *testing.T) {
	tests := []struct {
		offset int
		want   domain.PeriodBucket
	}{
		{-90, domain.PeriodOverdue2Month},
		{-60, domain.PeriodOverdue2Month},
		{-59, domain.PeriodOverdue1Month},
		{-30, domain.PeriodOverdue1Month},
		{-29, domain.PeriodImminent},
		{-1, domain.PeriodImminent},
		{0, domain.PeriodImminent},
		{7, domain.PeriodImminent},
		{8, domain.PeriodOneMonth},
		{30, domain.PeriodOneMonth},
		{31, domain.PeriodTwoMonths},
		{60, domain.PeriodTwoMonths},
		{61, domain.PeriodThreeMonths},
		{90, domain.PeriodThreeMonths},
		{91, domain.PeriodLongTerm},
	}
	for _, tc := range tests {
		p := domain.Project{StatusName: domain.ProjectInProgress, PlanEndDate: day(tc.offset)}
		assert.Equal(t, tc.want, RemainingPeriodBucket(p, today), "offset %d", tc.offset)
	}
}

func TestRemainingPeriodBucket_PrefersActualEndDate(t *testing.T) {
	p := domain.Project{PlanEndDate: day(100), EndDate: day(5)}
	assert.Equal(t, domain.PeriodImminent, RemainingPeriodBucket(p, today))

	assert.Equal(t, domain.PeriodNone, RemainingPeriodBucket(domain.Project{}, today))
}

func TestOrderedBuckets(t *testing.T) {
	buckets := OrderedBuckets()
	assert.Len(t, buckets, 7)
	assert.Equal(t, domain.PeriodOverdue2Month, buckets[0])
	assert.Equal(t, domain.PeriodLongTerm, buckets[len(buckets)-1])
	assert.NotContains(t, buckets, domain.PeriodNone)
}
