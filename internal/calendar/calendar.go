// Package calendar holds the date arithmetic used by the reports: working-day
// counting, ISO week splitting and ISO week keys. All values are calendar
// dates normalized to UTC midnight.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

var ErrInvalidWeekKey = errors.New("invalid ISO week key")

// Date builds a UTC calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Truncate drops the clock part of t, keeping its calendar date.
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return Date(y, m, d)
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// Format renders a date as YYYY-MM-DD.
func Format(t time.Time) string {
	return t.Format(dateLayout)
}

// DaysBetween returns the number of calendar days from a to b (negative when b is before a).
func DaysBetween(a, b time.Time) int {
	return int(Truncate(b).Sub(Truncate(a)).Hours() / 24)
}

// MondayOf returns the Monday starting the ISO week containing d.
func MondayOf(d time.Time) time.Time {
	d = Truncate(d)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// CountWorkingDays counts Monday..Friday dates in [start, end], inclusive.
// There is no holiday calendar. Returns 0 when end is before start.
func CountWorkingDays(start, end time.Time) int {
	start, end = Truncate(start), Truncate(end)
	if end.Before(start) {
		return 0
	}
	total := DaysBetween(start, end) + 1
	weeks := total / 7
	count := weeks * 5

	d := start.AddDate(0, 0, weeks*7)
	for ; !d.After(end); d = d.AddDate(0, 0, 1) {
		if isWeekday(d) {
			count++
		}
	}
	return count
}

func isWeekday(d time.Time) bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// Overlap intersects [aStart, aEnd] with [bStart, bEnd]. ok is false when the
// intersection is empty.
func Overlap(aStart, aEnd, bStart, bEnd time.Time) (start, end time.Time, ok bool) {
	start = aStart
	if bStart.After(start) {
		start = bStart
	}
	end = aEnd
	if bEnd.Before(end) {
		end = bEnd
	}
	return start, end, !start.After(end)
}

// Contains reports whether d falls inside [start, end] by calendar date.
func Contains(start, end, d time.Time) bool {
	d = Truncate(d)
	return !d.Before(Truncate(start)) && !d.After(Truncate(end))
}

// PreviousPeriod returns the window of equal length ending the day before start.
func PreviousPeriod(start, end time.Time) (time.Time, time.Time) {
	start, end = Truncate(start), Truncate(end)
	length := DaysBetween(start, end) + 1
	if length < 1 {
		length = 1
	}
	prevEnd := start.AddDate(0, 0, -1)
	return prevEnd.AddDate(0, 0, -(length - 1)), prevEnd
}
