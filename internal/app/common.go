package app

import (
	"fmt"
	"time"

	"github.com/alexanderramin/teamload/internal/calendar"
)

// MaxRangeDays caps a report range at roughly two years.
const MaxRangeDays = 732

// DateRange is an inclusive calendar-date range.
type DateRange struct {
	From time.Time
	To   time.Time
}

// ParseDateRange parses YYYY-MM-DD bounds and checks their order.
func ParseDateRange(from, to string) (DateRange, error) {
	start, err := calendar.ParseDate(from)
	if err != nil {
		return DateRange{}, &RequestError{Code: ErrInvalidDate, Message: fmt.Sprintf("from: %q is not a YYYY-MM-DD date", from)}
	}
	end, err := calendar.ParseDate(to)
	if err != nil {
		return DateRange{}, &RequestError{Code: ErrInvalidDate, Message: fmt.Sprintf("to: %q is not a YYYY-MM-DD date", to)}
	}
	r := DateRange{From: start, To: end}
	return r, r.Validate()
}

// ParseWeek parses an ISO week key (YYYY-Www) into its Monday..Sunday range.
func ParseWeek(key string) (DateRange, error) {
	start, end, err := calendar.WeekKeyToRange(key)
	if err != nil {
		return DateRange{}, &RequestError{Code: ErrInvalidDate, Message: fmt.Sprintf("week: %q is not a YYYY-Www week", key)}
	}
	return DateRange{From: start, To: end}, nil
}

// ParseRangeOrWeek parses a week key when one is given, otherwise from/to.
// A week combined with either bound is rejected.
func ParseRangeOrWeek(week, from, to string) (DateRange, error) {
	if week == "" {
		return ParseDateRange(from, to)
	}
	if from != "" || to != "" {
		return DateRange{}, &RequestError{Code: ErrInvalidRange, Message: "week cannot be combined with from or to"}
	}
	return ParseWeek(week)
}

// Validate rejects inverted ranges and ranges longer than MaxRangeDays.
func (r DateRange) Validate() error {
	if r.From.IsZero() || r.To.IsZero() {
		return &RequestError{Code: ErrInvalidRange, Message: "from and to are required"}
	}
	if r.To.Before(r.From) {
		return &RequestError{
			Code:    ErrInvalidRange,
			Message: fmt.Sprintf("to %s is before from %s", calendar.Format(r.To), calendar.Format(r.From)),
		}
	}
	if days := calendar.DaysBetween(r.From, r.To) + 1; days > MaxRangeDays {
		return &RequestError{Code: ErrInvalidRange, Message: fmt.Sprintf("range spans %d days, max %d", days, MaxRangeDays)}
	}
	return nil
}

// ParseToday parses an optional reference date, defaulting to now's date.
func ParseToday(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return calendar.Truncate(now), nil
	}
	d, err := calendar.ParseDate(s)
	if err != nil {
		return time.Time{}, &RequestError{Code: ErrInvalidDate, Message: fmt.Sprintf("today: %q is not a YYYY-MM-DD date", s)}
	}
	return d, nil
}
