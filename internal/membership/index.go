package membership

import (
	"time"

	"github.com/alexanderramin/teamload/internal/domain"
)

// Index groups records by user so repeated lookups over many weeks do not
// rescan the full history each time.
type Index struct {
	byUser map[string][]domain.TeamMembershipRecord
}

func NewIndex(records []domain.TeamMembershipRecord) *Index {
	idx := &Index{byUser: make(map[string][]domain.TeamMembershipRecord)}
	for _, r := range records {
		idx.byUser[r.UserID] = append(idx.byUser[r.UserID], r)
	}
	return idx
}

// HasHistory reports whether the user has any membership record.
func (idx *Index) HasHistory(userID string) bool {
	return len(idx.byUser[userID]) > 0
}

// Days is Days restricted to the user's own records.
func (idx *Index) Days(userID, teamID string, rangeStart, rangeEnd time.Time, fallbackDays int) int {
	return Days(idx.byUser[userID], userID, teamID, rangeStart, rangeEnd, fallbackDays)
}

// TeamsInRange is TeamsInRange restricted to the user's own records.
func (idx *Index) TeamsInRange(userID string, rangeStart, rangeEnd time.Time) []string {
	return TeamsInRange(idx.byUser[userID], userID, rangeStart, rangeEnd)
}
