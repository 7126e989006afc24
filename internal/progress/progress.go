// Package progress derives completion percentages, schedule-delay states and
// remaining-period buckets from project/task trees.
package progress

import (
	"math"
	"time"

	"github.com/alexanderramin/teamload/internal/calendar"
	"github.com/alexanderramin/teamload/internal/domain"
	"github.com/samber/lo"
)

// ImminentDays is how close a plan end date must be to count as imminent.
const ImminentDays = 3

// WeightedProgress averages task progress weighted by planning hours over the
// progress-eligible tasks. Tasks without a positive estimate weigh 1.
func WeightedProgress(tasks []domain.ProjectTask) int {
	eligible := lo.Filter(tasks, func(t domain.ProjectTask, _ int) bool {
		return t.IsProgressEligible
	})
	if len(eligible) == 0 {
		return 0
	}

	var weighted, total float64
	for _, t := range eligible {
		w := taskWeight(t)
		weighted += float64(t.Progress()) * w
		total += w
	}
	return int(math.Floor(weighted/total + 0.5))
}

func taskWeight(t domain.ProjectTask) float64 {
	if t.PlanningTotalHours > 0 && !math.IsInf(t.PlanningTotalHours, 0) {
		return t.PlanningTotalHours
	}
	return 1
}

// ScheduleStatus classifies a project's delay state on the given day.
// Not-started and on-hold projects have no status, nor does any project
// lacking the dates its rule needs.
func ScheduleStatus(p domain.Project, today time.Time) domain.ScheduleStatus {
	switch p.StatusName {
	case domain.ProjectCompleted:
		if p.EndDate == nil || p.PlanEndDate == nil {
			return domain.ScheduleNone
		}
		if calendar.Truncate(*p.EndDate).After(calendar.Truncate(*p.PlanEndDate)) {
			return domain.ScheduleDelayed
		}
		return domain.ScheduleNormal
	case domain.ProjectInProgress, domain.ProjectWaiting, domain.ProjectReview:
		return deadlineStatus(p.PlanEndDate, today)
	default:
		return domain.ScheduleNone
	}
}

// TaskScheduleStatus applies the same deadline rule to a single task.
// Finished tasks and tasks without a plan end date have no status.
func TaskScheduleStatus(t domain.ProjectTask, today time.Time) domain.ScheduleStatus {
	if t.IsDone() {
		return domain.ScheduleNone
	}
	return deadlineStatus(t.PlanEndDate, today)
}

func deadlineStatus(planEnd *time.Time, today time.Time) domain.ScheduleStatus {
	if planEnd == nil {
		return domain.ScheduleNone
	}
	remaining := calendar.DaysBetween(today, *planEnd)
	switch {
	case remaining < 0:
		return domain.ScheduleDelayed
	case remaining <= ImminentDays:
		return domain.ScheduleImminent
	default:
		return domain.ScheduleNormal
	}
}

// RemainingPeriodBucket buckets the days between today and the project's end
// date (actual when set, planned otherwise). Projects 1..29 days overdue fall
// through to imminent.
func RemainingPeriodBucket(p domain.Project, today time.Time) domain.PeriodBucket {
	end := p.EffectiveEndDate()
	if end == nil {
		return domain.PeriodNone
	}
	diff := calendar.DaysBetween(today, *end)

	if diff < 0 {
		overdue := -diff
		switch {
		case overdue >= 60:
			return domain.PeriodOverdue2Month
		case overdue >= 30:
			return domain.PeriodOverdue1Month
		}
	}

	switch {
	case diff <= 7:
		return domain.PeriodImminent
	case diff <= 30:
		return domain.PeriodOneMonth
	case diff <= 60:
		return domain.PeriodTwoMonths
	case diff <= 90:
		return domain.PeriodThreeMonths
	default:
		return domain.PeriodLongTerm
	}
}

// OrderedBuckets is the display order of period buckets, most urgent first.
func OrderedBuckets() []domain.PeriodBucket {
	return []domain.PeriodBucket{
		domain.PeriodOverdue2Month,
		domain.PeriodOverdue1Month,
		domain.PeriodImminent,
		domain.PeriodOneMonth,
		domain.PeriodTwoMonths,
		domain.PeriodThreeMonths,
		domain.PeriodLongTerm,
	}
}
