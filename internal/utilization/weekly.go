package utilization

import (
	"time"

	"github.com/alexanderramin/teamload/internal/calendar"
	"github.com/alexanderramin/teamload/internal/domain"
)

// WeeklyTrendThreshold is the change in percentage points beyond which a
// week counts as up or down.
const WeeklyTrendThreshold = 2.0

type WeekUtilization struct {
	calendar.WeekBucket
	Summary Summary           `json:"summary"`
	Teams   []TeamUtilization `json:"teams"`
	// ChangeFromPrevious is nil for the first week.
	ChangeFromPrevious *float64     `json:"changeFromPrevious"`
	Trend              domain.Trend `json:"trend"`
}

type WeeklyReport struct {
	RangeStart time.Time         `json:"rangeStart"`
	RangeEnd   time.Time         `json:"rangeEnd"`
	Summary    Summary           `json:"summary"`
	Weeks      []WeekUtilization `json:"weeks"`
}

// Weekly splits the input range into ISO weeks and aggregates each one,
// attaching the week-over-week change of total utilization.
func Weekly(in Input) WeeklyReport {
	whole := Aggregate(in)
	report := WeeklyReport{
		RangeStart: whole.RangeStart,
		RangeEnd:   whole.RangeEnd,
		Summary:    whole.Summary,
		Weeks:      []WeekUtilization{},
	}

	for i, bucket := range calendar.SplitIntoISOWeeks(in.RangeStart, in.RangeEnd) {
		weekIn := in
		weekIn.RangeStart = bucket.StartDate
		weekIn.RangeEnd = bucket.EndDate
		agg := Aggregate(weekIn)

		week := WeekUtilization{
			WeekBucket: bucket,
			Summary:    agg.Summary,
			Teams:      agg.Teams,
			Trend:      domain.TrendStable,
		}
		if i > 0 {
			change, trend := WeeklyTrend(agg.Summary.TotalUtilization, report.Weeks[i-1].Summary.TotalUtilization)
			week.ChangeFromPrevious = &change
			week.Trend = trend
		}
		report.Weeks = append(report.Weeks, week)
	}
	return report
}

// WeeklyTrend compares two total utilization figures.
func WeeklyTrend(current, previous float64) (float64, domain.Trend) {
	change := Round1(current - previous)
	switch {
	case change > WeeklyTrendThreshold:
		return change, domain.TrendUp
	case change < -WeeklyTrendThreshold:
		return change, domain.TrendDown
	default:
		return change, domain.TrendStable
	}
}
