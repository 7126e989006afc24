package domain

import "time"

type WorkLogEntry struct {
	ID               string
	UserID           string
	TeamID           *string
	TaskID           string
	WorkDate         time.Time
	WorkHours        float64
	NonBillableHours float64
	OvertimeHours    float64
	IsDeleted        bool
}

// TotalHours sums the three hour components. Negative or NaN components count as 0.
func (e WorkLogEntry) TotalHours() float64 {
	return NonNegative(e.WorkHours) + NonNegative(e.NonBillableHours) + NonNegative(e.OvertimeHours)
}

// ResolveTeam returns the entry's team, falling back to the user's current team.
func (e WorkLogEntry) ResolveTeam(users map[string]User) string {
	var own string
	if e.TeamID != nil {
		own = *e.TeamID
	}
	return CoalesceStr(own, users[e.UserID].TeamID)
}
