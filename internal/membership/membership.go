// Package membership resolves how many working days a user spent on a team
// within a date range, based on the team-history records.
package membership

import (
	"time"

	"github.com/alexanderramin/teamload/internal/calendar"
	"github.com/alexanderramin/teamload/internal/domain"
)

// Days returns the working days userID belonged to teamID within
// [rangeStart, rangeEnd].
//
// When records is empty or holds nothing for userID, fallbackDays is returned
// unchanged; callers pass the full-range working-day count so deployments
// without a history system keep their old numbers. A user with history but no
// record for teamID gets 0. Overlapping days from several records for the same
// team (left and rejoined) are summed.
func Days(records []domain.TeamMembershipRecord, userID, teamID string, rangeStart, rangeEnd time.Time, fallbackDays int) int {
	if !HasHistory(records, userID) {
		return fallbackDays
	}
	return overlapDays(records, userID, teamID, rangeStart, rangeEnd)
}

// HasHistory reports whether any record belongs to userID.
func HasHistory(records []domain.TeamMembershipRecord, userID string) bool {
	for _, r := range records {
		if r.UserID == userID {
			return true
		}
	}
	return false
}

// TeamsInRange lists the teams userID has a record overlapping the range for,
// in first-seen order.
func TeamsInRange(records []domain.TeamMembershipRecord, userID string, rangeStart, rangeEnd time.Time) []string {
	seen := make(map[string]bool)
	var teams []string
	for _, r := range records {
		if r.UserID != userID || seen[r.TeamID] {
			continue
		}
		if _, _, ok := recordOverlap(r, rangeStart, rangeEnd); ok {
			seen[r.TeamID] = true
			teams = append(teams, r.TeamID)
		}
	}
	return teams
}

func overlapDays(records []domain.TeamMembershipRecord, userID, teamID string, rangeStart, rangeEnd time.Time) int {
	total := 0
	for _, r := range records {
		if r.UserID != userID || r.TeamID != teamID {
			continue
		}
		if start, end, ok := recordOverlap(r, rangeStart, rangeEnd); ok {
			total += calendar.CountWorkingDays(start, end)
		}
	}
	return total
}

// recordOverlap clips a record to the range. An open record runs to rangeEnd.
func recordOverlap(r domain.TeamMembershipRecord, rangeStart, rangeEnd time.Time) (time.Time, time.Time, bool) {
	end := rangeEnd
	if r.EndDate != nil {
		end = *r.EndDate
	}
	return calendar.Overlap(
		calendar.Truncate(r.StartDate), calendar.Truncate(end),
		calendar.Truncate(rangeStart), calendar.Truncate(rangeEnd),
	)
}
