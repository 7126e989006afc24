package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// WeekBucket is one Monday-aligned chunk of a requested range, clipped to it.
type WeekBucket struct {
	WeekNumber  int       `json:"weekNumber"`
	Key         string    `json:"key"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	WorkingDays int       `json:"workingDays"`
	Label       string    `json:"label"`
}

// SplitIntoISOWeeks cuts [start, end] into ISO weeks. The first bucket starts
// at start (not its Monday) and the last ends at end. Returns an empty slice
// when end is before start.
func SplitIntoISOWeeks(start, end time.Time) []WeekBucket {
	start, end = Truncate(start), Truncate(end)
	buckets := []WeekBucket{}
	if end.Before(start) {
		return buckets
	}

	n := 1
	for monday := MondayOf(start); !monday.After(end); monday = monday.AddDate(0, 0, 7) {
		bStart := monday
		if bStart.Before(start) {
			bStart = start
		}
		bEnd := monday.AddDate(0, 0, 6)
		if bEnd.After(end) {
			bEnd = end
		}
		buckets = append(buckets, WeekBucket{
			WeekNumber:  n,
			Key:         ISOWeekKey(bStart),
			StartDate:   bStart,
			EndDate:     bEnd,
			WorkingDays: CountWorkingDays(bStart, bEnd),
			Label:       weekLabel(bStart, bEnd),
		})
		n++
	}
	return buckets
}

func weekLabel(start, end time.Time) string {
	_, week := start.ISOWeek()
	return fmt.Sprintf("W%02d (%s~%s)", week, start.Format("01/02"), end.Format("01/02"))
}

// ISOWeekKey formats d's ISO week as "YYYY-Www", using the ISO week-numbering year.
func ISOWeekKey(d time.Time) string {
	year, week := d.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// WeekKeyToRange is the inverse of ISOWeekKey: it returns the Monday and Sunday
// of the keyed week. Week 1 is the week containing January 4th.
func WeekKeyToRange(key string) (time.Time, time.Time, error) {
	yearPart, weekPart, found := strings.Cut(strings.TrimSpace(key), "-W")
	if !found {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidWeekKey, key)
	}
	year, err := strconv.Atoi(yearPart)
	if err != nil || len(yearPart) != 4 || !isDigits(yearPart) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: bad year in %q", ErrInvalidWeekKey, key)
	}
	week, err := strconv.Atoi(weekPart)
	if err != nil || len(weekPart) != 2 || !isDigits(weekPart) || week < 1 || week > WeeksInYear(year) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: bad week in %q", ErrInvalidWeekKey, key)
	}

	week1Monday := MondayOf(Date(year, time.January, 4))
	start := week1Monday.AddDate(0, 0, (week-1)*7)
	return start, start.AddDate(0, 0, 6), nil
}

// WeeksInYear returns 52 or 53, the number of ISO weeks in year.
// December 28th always falls in the last week.
func WeeksInYear(year int) int {
	_, week := Date(year, time.December, 28).ISOWeek()
	return week
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
