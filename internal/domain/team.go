package domain

import "time"

type Team struct {
	ID            string
	Name          string
	IsWorkTracked bool
}

type User struct {
	ID       string
	Username string
	// TeamID is the current team. Only consulted when no membership history exists.
	TeamID  string
	Blocked bool
}

// TeamMembershipRecord is an interval during which a user belonged to a team.
// A nil EndDate means the membership is still active.
type TeamMembershipRecord struct {
	ID        string
	UserID    string
	TeamID    string
	StartDate time.Time
	EndDate   *time.Time
}
