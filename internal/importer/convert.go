package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/teamload/internal/domain"
	"github.com/google/uuid"
)

// Dataset holds normalized domain values ready for persistence.
type Dataset struct {
	Teams       []domain.Team
	Users       []domain.User
	Memberships []domain.TeamMembershipRecord
	WorkLogs    []domain.WorkLogEntry
	Projects    []domain.Project
}

// TaskCount is the number of tasks across all projects.
func (d *Dataset) TaskCount() int {
	n := 0
	for _, p := range d.Projects {
		n += len(p.Tasks)
	}
	return n
}

// Convert transforms a validated Snapshot into domain values.
// Call ValidateSnapshot first; Convert assumes the snapshot is valid.
func Convert(s *Snapshot) (*Dataset, error) {
	ds := &Dataset{
		Teams:       make([]domain.Team, 0, len(s.Teams)),
		Users:       make([]domain.User, 0, len(s.Users)),
		Memberships: make([]domain.TeamMembershipRecord, 0, len(s.TeamHistories)),
		WorkLogs:    make([]domain.WorkLogEntry, 0, len(s.WorkLogs)),
		Projects:    make([]domain.Project, 0, len(s.Projects)),
	}

	for _, t := range s.Teams {
		ds.Teams = append(ds.Teams, domain.Team{
			ID:            t.ID,
			Name:          t.Name,
			IsWorkTracked: domain.BoolFromPtrWithDefault(true, t.IsWorkTracked),
		})
	}

	for _, u := range s.Users {
		user := domain.User{ID: u.ID, Username: u.Username, Blocked: u.Blocked}
		if u.TeamID != nil {
			user.TeamID = *u.TeamID
		}
		ds.Users = append(ds.Users, user)
	}

	for i, h := range s.TeamHistories {
		start, err := time.Parse(dateLayout, h.StartDate)
		if err != nil {
			return nil, fmt.Errorf("parsing team_histories[%d].start_date: %w", i, err)
		}
		id := h.ID
		if id == "" {
			id = uuid.New().String()
		}
		ds.Memberships = append(ds.Memberships, domain.TeamMembershipRecord{
			ID:        id,
			UserID:    h.UserID,
			TeamID:    h.TeamID,
			StartDate: start,
			EndDate:   parseOptionalDate(h.EndDate),
		})
	}

	for i, w := range s.WorkLogs {
		day, err := time.Parse(dateLayout, w.WorkDate)
		if err != nil {
			return nil, fmt.Errorf("parsing work_logs[%d].work_date: %w", i, err)
		}
		entry := domain.WorkLogEntry{
			ID:               w.ID,
			UserID:           w.UserID,
			TaskID:           w.TaskID,
			WorkDate:         day,
			WorkHours:        w.WorkHours,
			NonBillableHours: domain.Float64FromPtrWithDefault(0, w.NonBillableHours),
			OvertimeHours:    domain.Float64FromPtrWithDefault(0, w.OvertimeHours),
			IsDeleted:        w.IsDeleted,
		}
		if w.TeamID != nil && *w.TeamID != "" {
			teamID := *w.TeamID
			entry.TeamID = &teamID
		}
		ds.WorkLogs = append(ds.WorkLogs, entry)
	}

	for _, p := range s.Projects {
		project := domain.Project{
			ID:          p.ID,
			Name:        p.Name,
			StatusName:  domain.ProjectStatus(p.Status),
			PlanEndDate: parseOptionalDate(p.PlanEndDate),
			EndDate:     parseOptionalDate(p.EndDate),
			Tasks:       make([]domain.ProjectTask, 0, len(p.Tasks)),
		}
		for _, t := range p.Tasks {
			project.Tasks = append(project.Tasks, domain.ProjectTask{
				ID:                 t.ID,
				ProjectID:          p.ID,
				Name:               t.Name,
				PlanStartDate:      parseOptionalDate(t.PlanStartDate),
				PlanEndDate:        parseOptionalDate(t.PlanEndDate),
				StartDate:          parseOptionalDate(t.StartDate),
				EndDate:            parseOptionalDate(t.EndDate),
				TaskProgressCode:   t.TaskProgressCode,
				IsProgressEligible: domain.BoolFromPtrWithDefault(true, t.IsProgressEligible),
				PlanningTotalHours: domain.Float64FromPtrWithDefault(0, t.PlanningTotalHours),
				IsCompleted:        t.IsCompleted,
			})
		}
		ds.Projects = append(ds.Projects, project)
	}

	return ds, nil
}

func parseOptionalDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}
