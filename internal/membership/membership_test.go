package membership

import (
	"testing"
	"time"

	"github.com/alexanderramin/teamload/internal/calendar"
	"github.com/alexanderramin/teamload/internal/domain"
	"github.com/stretchr/testify/assert"
)

func rec(userID, teamID string, start time.Time, end *time.Time) domain.TeamMembershipRecord {
	return domain.TeamMembershipRecord{UserID: userID, TeamID: teamID, StartDate: start, EndDate: end}
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := calendar.Date(y, m, d)
	return &t
}

// March 2025: Mon 3rd .. Fri 28th is four full working weeks (20 days).
var (
	rangeStart = calendar.Date(2025, 3, 3)
	rangeEnd   = calendar.Date(2025, 3, 30)
)

func TestDays_NoRecordsReturnsFallback(t *testing.T) {
	assert.Equal(t, 20, Days(nil, "u1", "dev", rangeStart, rangeEnd, 20))
	assert.Equal(t, 7, Days([]domain.TeamMembershipRecord{}, "u1", "dev", rangeStart, rangeEnd, 7))
}

func TestDays_OtherUsersOnlyReturnsFallback(t *testing.T) {
	records := []domain.TeamMembershipRecord{rec("u2", "dev", rangeStart, nil)}
	assert.Equal(t, 20, Days(records, "u1", "dev", rangeStart, rangeEnd, 20))
}

func TestDays_HistoryForAnotherTeamReturnsZero(t *testing.T) {
	records := []domain.TeamMembershipRecord{rec("u1", "ops", calendar.Date(2024, 1, 1), nil)}
	assert.Equal(t, 0, Days(records, "u1", "dev", rangeStart, rangeEnd, 20))
}

func TestDays_OpenRecordRunsToRangeEnd(t *testing.T) {
	records := []domain.TeamMembershipRecord{rec("u1", "dev", calendar.Date(2025, 3, 17), nil)}
	assert.Equal(t, 10, Days(records, "u1", "dev", rangeStart, rangeEnd, 20))
}

func TestDays_ClipsToRange(t *testing.T) {
	records := []domain.TeamMembershipRecord{
		rec("u1", "dev", calendar.Date(2025, 1, 1), datePtr(2025, 3, 7)),
	}
	assert.Equal(t, 5, Days(records, "u1", "dev", rangeStart, rangeEnd, 20))
}

func TestDays_RecordOutsideRangeContributesNothing(t *testing.T) {
	records := []domain.TeamMembershipRecord{
		rec("u1", "dev", calendar.Date(2025, 1, 1), datePtr(2025, 2, 28)),
	}
	assert.Equal(t, 0, Days(records, "u1", "dev", rangeStart, rangeEnd, 20))
}

func TestDays_LeftAndRejoinedSums(t *testing.T) {
	records := []domain.TeamMembershipRecord{
		rec("u1", "dev", calendar.Date(2025, 2, 1), datePtr(2025, 3, 7)),
		rec("u1", "ops", calendar.Date(2025, 3, 8), datePtr(2025, 3, 16)),
		rec("u1", "dev", calendar.Date(2025, 3, 17), nil),
	}
	assert.Equal(t, 15, Days(records, "u1", "dev", rangeStart, rangeEnd, 20))
	assert.Equal(t, 5, Days(records, "u1", "ops", rangeStart, rangeEnd, 20))
}

func TestDays_AdditiveUnderSplit(t *testing.T) {
	whole := []domain.TeamMembershipRecord{
		rec("u1", "dev", calendar.Date(2025, 2, 20), datePtr(2025, 3, 25)),
	}
	for split := 0; split < 30; split++ {
		mid := calendar.Date(2025, 2, 20).AddDate(0, 0, split)
		next := mid.AddDate(0, 0, 1)
		parts := []domain.TeamMembershipRecord{
			rec("u1", "dev", calendar.Date(2025, 2, 20), &mid),
			rec("u1", "dev", next, datePtr(2025, 3, 25)),
		}
		assert.Equal(t,
			Days(whole, "u1", "dev", rangeStart, rangeEnd, 0),
			Days(parts, "u1", "dev", rangeStart, rangeEnd, 0),
			"split after %s", calendar.Format(mid))
	}
}

func TestTeamsInRange(t *testing.T) {
	records := []domain.TeamMembershipRecord{
		rec("u1", "dev", calendar.Date(2025, 1, 1), datePtr(2025, 3, 4)),
		rec("u1", "ops", calendar.Date(2025, 3, 5), nil),
		rec("u1", "qa", calendar.Date(2024, 1, 1), datePtr(2024, 12, 31)),
		rec("u2", "pm", calendar.Date(2025, 1, 1), nil),
	}
	assert.Equal(t, []string{"dev", "ops"}, TeamsInRange(records, "u1", rangeStart, rangeEnd))
	assert.Empty(t, TeamsInRange(records, "u3", rangeStart, rangeEnd))
}

func TestIndex_MatchesFunctions(t *testing.T) {
	records := []domain.TeamMembershipRecord{
		rec("u1", "dev", calendar.Date(2025, 3, 10), nil),
		rec("u2", "ops", calendar.Date(2025, 1, 1), nil),
	}
	idx := NewIndex(records)

	assert.True(t, idx.HasHistory("u1"))
	assert.False(t, idx.HasHistory("u3"))
	assert.Equal(t, Days(records, "u1", "dev", rangeStart, rangeEnd, 20), idx.Days("u1", "dev", rangeStart, rangeEnd, 20))
	assert.Equal(t, 20, idx.Days("u3", "dev", rangeStart, rangeEnd, 20))
	assert.Equal(t, 0, idx.Days("u2", "dev", rangeStart, rangeEnd, 20))
	assert.Equal(t, []string{"ops"}, idx.TeamsInRange("u2", rangeStart, rangeEnd))
}
