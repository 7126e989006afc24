// Package utilization turns work-log entries and membership histories into
// per-user, per-team and global utilization figures. Every function here is
// pure: inputs are plain slices, outputs are freshly built values, and missing
// data degrades to zeros instead of errors.
package utilization

import (
	"sort"
	"time"

	"github.com/alexanderramin/teamload/internal/calendar"
	"github.com/alexanderramin/teamload/internal/domain"
	"github.com/alexanderramin/teamload/internal/membership"
	"github.com/samber/lo"
)

const (
	// StandardDailyHours is the expected capacity of one working day.
	StandardDailyHours = 8.0
	// LowUtilizationPct marks members below it as low.
	LowUtilizationPct = 50.0
)

// Input is everything one aggregation needs. Entries are expected to be
// pre-filtered to the range and to non-deleted rows, but both are re-checked.
type Input struct {
	Entries    []domain.WorkLogEntry
	Records    []domain.TeamMembershipRecord
	Users      []domain.User
	Teams      []domain.Team
	RangeStart time.Time
	RangeEnd   time.Time

	// TeamID restricts the report to one team when set.
	TeamID                 string
	IncludeNonTrackedTeams bool
}

type UserUtilization struct {
	UserID         string                   `json:"userId"`
	Username       string                   `json:"username"`
	TeamID         string                   `json:"teamId"`
	TeamName       string                   `json:"teamName"`
	MembershipDays int                      `json:"membershipDays"`
	BaseHours      float64                  `json:"baseHours"`
	WorkHours      float64                  `json:"workHours"`
	Utilization    float64                  `json:"utilization"`
	Status         domain.UtilizationStatus `json:"status"`
}

type TeamUtilization struct {
	TeamID        string            `json:"teamId"`
	TeamName      string            `json:"teamName"`
	IsWorkTracked bool              `json:"isWorkTracked"`
	BaseHours     float64           `json:"baseHours"`
	WorkHours     float64           `json:"workHours"`
	Utilization   float64           `json:"utilization"`
	Members       []UserUtilization `json:"members"`
}

type Summary struct {
	TotalUtilization float64 `json:"totalUtilization"`
	TotalUsers       int     `json:"totalUsers"`
	TotalBaseHours   float64 `json:"totalBaseHours"`
	TotalWorkHours   float64 `json:"totalWorkHours"`
}

type Report struct {
	RangeStart  time.Time         `json:"rangeStart"`
	RangeEnd    time.Time         `json:"rangeEnd"`
	WorkingDays int               `json:"workingDays"`
	Summary     Summary           `json:"summary"`
	Teams       []TeamUtilization `json:"teams"`
	// UnattributedHours are hours whose team could not be resolved.
	UnattributedHours float64 `json:"unattributedHours"`
}

type userTeam struct {
	userID string
	teamID string
}

// Aggregate computes the utilization report for the input's range.
func Aggregate(in Input) Report {
	start, end := calendar.Truncate(in.RangeStart), calendar.Truncate(in.RangeEnd)
	fallbackDays := calendar.CountWorkingDays(start, end)

	users := lo.KeyBy(in.Users, func(u domain.User) string { return u.ID })
	idx := membership.NewIndex(in.Records)

	report := Report{
		RangeStart:  start,
		RangeEnd:    end,
		WorkingDays: fallbackDays,
		Teams:       []TeamUtilization{},
	}

	hours := make(map[userTeam]float64)
	for _, e := range entriesInRange(in.Entries, start, end) {
		teamID := e.ResolveTeam(users)
		if teamID == "" {
			report.UnattributedHours += e.TotalHours()
			continue
		}
		hours[userTeam{e.UserID, teamID}] += e.TotalHours()
	}

	counted := make(map[string]bool)
	for _, team := range targetTeams(in.Teams, in.TeamID, in.IncludeNonTrackedTeams) {
		tu := TeamUtilization{
			TeamID:        team.ID,
			TeamName:      team.Name,
			IsWorkTracked: team.IsWorkTracked,
			Members:       []UserUtilization{},
		}
		for _, userID := range roster(team.ID, in.Users, users, idx, hours, start, end) {
			days := baseDays(idx, users, userID, team.ID, start, end, fallbackDays)
			work := hours[userTeam{userID, team.ID}]
			m := UserUtilization{
				UserID:         userID,
				Username:       users[userID].Username,
				TeamID:         team.ID,
				TeamName:       team.Name,
				MembershipDays: days,
				BaseHours:      float64(days) * StandardDailyHours,
				WorkHours:      work,
			}
			m.Utilization = Percent(m.WorkHours, m.BaseHours)
			m.Status = Classify(m.WorkHours, m.Utilization)

			tu.BaseHours += m.BaseHours
			tu.WorkHours += m.WorkHours
			tu.Members = append(tu.Members, m)
			counted[userID] = true
		}
		tu.Utilization = Percent(tu.WorkHours, tu.BaseHours)
		sortMembers(tu.Members)
		report.Teams = append(report.Teams, tu)
	}
	sortTeams(report.Teams)

	report.Summary = Summarize(report.Teams, len(counted))
	return report
}

// Summarize folds team totals into a global summary.
func Summarize(teams []TeamUtilization, totalUsers int) Summary {
	s := Summary{
		TotalUsers:     totalUsers,
		TotalBaseHours: lo.SumBy(teams, func(t TeamUtilization) float64 { return t.BaseHours }),
		TotalWorkHours: lo.SumBy(teams, func(t TeamUtilization) float64 { return t.WorkHours }),
	}
	s.TotalUtilization = Percent(s.TotalWorkHours, s.TotalBaseHours)
	return s
}

// Classify derives a member's status from logged hours and utilization.
func Classify(workHours, utilization float64) domain.UtilizationStatus {
	switch {
	case workHours == 0:
		return domain.UtilizationMissingWork
	case utilization < LowUtilizationPct:
		return domain.UtilizationLow
	default:
		return domain.UtilizationNormal
	}
}

func entriesInRange(entries []domain.WorkLogEntry, start, end time.Time) []domain.WorkLogEntry {
	return lo.Filter(entries, func(e domain.WorkLogEntry, _ int) bool {
		return !e.IsDeleted && calendar.Contains(start, end, e.WorkDate)
	})
}

func targetTeams(teams []domain.Team, teamID string, includeNonTracked bool) []domain.Team {
	return lo.Filter(teams, func(t domain.Team, _ int) bool {
		if teamID != "" && t.ID != teamID {
			return false
		}
		return t.IsWorkTracked || includeNonTracked
	})
}

// roster lists the users counted against a team: members by history overlap,
// members by current team when they have no history, and anyone who logged
// hours on the team. Blocked users only appear when they logged hours.
func roster(
	teamID string,
	ordered []domain.User,
	users map[string]domain.User,
	idx *membership.Index,
	hours map[userTeam]float64,
	start, end time.Time,
) []string {
	seen := make(map[string]bool)
	var ids []string
	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	for _, u := range ordered {
		logged := hours[userTeam{u.ID, teamID}] > 0
		if u.Blocked && !logged {
			continue
		}
		member := u.TeamID == teamID
		if idx.HasHistory(u.ID) {
			member = lo.Contains(idx.TeamsInRange(u.ID, start, end), teamID)
		}
		if member || logged {
			add(u.ID)
		}
	}

	// Hours from users missing in the user list still count toward the team.
	var strays []string
	for k, h := range hours {
		if k.teamID == teamID && h > 0 {
			if _, known := users[k.userID]; !known {
				strays = append(strays, k.userID)
			}
		}
	}
	sort.Strings(strays)
	for _, id := range strays {
		add(id)
	}
	return ids
}

// baseDays resolves membership days, except that a user without history is
// only ever a member of their current team.
func baseDays(idx *membership.Index, users map[string]domain.User, userID, teamID string, start, end time.Time, fallbackDays int) int {
	if !idx.HasHistory(userID) && users[userID].TeamID != teamID {
		return 0
	}
	return idx.Days(userID, teamID, start, end, fallbackDays)
}

func sortMembers(members []UserUtilization) {
	sort.SliceStable(members, func(i, j int) bool {
		if members[i].Utilization != members[j].Utilization {
			return members[i].Utilization > members[j].Utilization
		}
		return members[i].Username < members[j].Username
	})
}

func sortTeams(teams []TeamUtilization) {
	sort.SliceStable(teams, func(i, j int) bool {
		if teams[i].Utilization != teams[j].Utilization {
			return teams[i].Utilization > teams[j].Utilization
		}
		return teams[i].TeamName < teams[j].TeamName
	})
}
