package testutil

import (
	"time"

	"github.com/alexanderramin/teamload/internal/domain"
	"github.com/google/uuid"
)

// Date builds a UTC-midnight date.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DatePtr is Date returning a pointer, for optional date fields.
func DatePtr(y int, m time.Month, d int) *time.Time {
	t := Date(y, m, d)
	return &t
}

// Team options
type TeamOption func(*domain.Team)

func Untracked() TeamOption {
	return func(t *domain.Team) {
		t.IsWorkTracked = false
	}
}

func WithTeamID(id string) TeamOption {
	return func(t *domain.Team) {
		t.ID = id
	}
}

func NewTestTeam(name string, opts ...TeamOption) *domain.Team {
	t := &domain.Team{
		ID:            uuid.New().String(),
		Name:          name,
		IsWorkTracked: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// User options
type UserOption func(*domain.User)

func Blocked() UserOption {
	return func(u *domain.User) {
		u.Blocked = true
	}
}

func WithUserID(id string) UserOption {
	return func(u *domain.User) {
		u.ID = id
	}
}

func NewTestUser(username, teamID string, opts ...UserOption) *domain.User {
	u := &domain.User{
		ID:       uuid.New().String(),
		Username: username,
		TeamID:   teamID,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Membership options
type MembershipOption func(*domain.TeamMembershipRecord)

func EndingOn(d time.Time) MembershipOption {
	return func(r *domain.TeamMembershipRecord) {
		r.EndDate = &d
	}
}

func NewTestMembership(userID, teamID string, start time.Time, opts ...MembershipOption) *domain.TeamMembershipRecord {
	r := &domain.TeamMembershipRecord{
		ID:        uuid.New().String(),
		UserID:    userID,
		TeamID:    teamID,
		StartDate: start,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WorkLog options
type WorkLogOption func(*domain.WorkLogEntry)

func OnTeam(teamID string) WorkLogOption {
	return func(e *domain.WorkLogEntry) {
		e.TeamID = &teamID
	}
}

func OnTask(taskID string) WorkLogOption {
	return func(e *domain.WorkLogEntry) {
		e.TaskID = taskID
	}
}

func WithOvertime(hours float64) WorkLogOption {
	return func(e *domain.WorkLogEntry) {
		e.OvertimeHours = hours
	}
}

func WithNonBillable(hours float64) WorkLogOption {
	return func(e *domain.WorkLogEntry) {
		e.NonBillableHours = hours
	}
}

func Deleted() WorkLogOption {
	return func(e *domain.WorkLogEntry) {
		e.IsDeleted = true
	}
}

func NewTestWorkLog(userID string, day time.Time, hours float64, opts ...WorkLogOption) *domain.WorkLogEntry {
	e := &domain.WorkLogEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		WorkDate:  day,
		WorkHours: hours,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Project options
type ProjectOption func(*domain.Project)

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.StatusName = s
	}
}

func WithPlanEnd(d time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.PlanEndDate = &d
	}
}

func WithEnd(d time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.EndDate = &d
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	p := &domain.Project{
		ID:         uuid.New().String(),
		Name:       name,
		StatusName: domain.ProjectInProgress,
		Tasks:      []domain.ProjectTask{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Task options
type TaskOption func(*domain.ProjectTask)

func WithTaskPlan(start, end time.Time) TaskOption {
	return func(t *domain.ProjectTask) {
		t.PlanStartDate = &start
		t.PlanEndDate = &end
	}
}

func Ineligible() TaskOption {
	return func(t *domain.ProjectTask) {
		t.IsProgressEligible = false
	}
}

func Completed() TaskOption {
	return func(t *domain.ProjectTask) {
		t.IsCompleted = true
	}
}

func NewTestTask(projectID, name, progressCode string, plannedHours float64, opts ...TaskOption) *domain.ProjectTask {
	t := &domain.ProjectTask{
		ID:                 uuid.New().String(),
		ProjectID:          projectID,
		Name:               name,
		TaskProgressCode:   progressCode,
		IsProgressEligible: true,
		PlanningTotalHours: plannedHours,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
