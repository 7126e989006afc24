package domain

import (
	"strconv"
	"strings"
	"time"
)

type Project struct {
	ID          string
	Name        string
	PlanEndDate *time.Time
	EndDate     *time.Time
	StatusName  ProjectStatus
	Tasks       []ProjectTask
}

type ProjectTask struct {
	ID                 string
	ProjectID          string
	Name               string
	PlanStartDate      *time.Time
	PlanEndDate        *time.Time
	StartDate          *time.Time
	EndDate            *time.Time
	TaskProgressCode   string
	IsProgressEligible bool
	PlanningTotalHours float64
	IsCompleted        bool
}

// Progress parses TaskProgressCode into a percentage in [0,100].
// Only the leading integer is read, so "100%" and "40" both parse;
// anything without leading digits is 0.
func (t ProjectTask) Progress() int {
	code := strings.TrimSpace(t.TaskProgressCode)
	end := 0
	for end < len(code) && code[end] >= '0' && code[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(code[:end])
	if err != nil || n > 100 {
		return 100
	}
	return n
}

// IsDone reports whether the task is finished, either flagged complete or at 100%.
func (t ProjectTask) IsDone() bool {
	return t.IsCompleted || t.Progress() >= 100
}

// EffectiveEndDate returns the actual end date when set, otherwise the planned one.
func (p *Project) EffectiveEndDate() *time.Time {
	if p.EndDate != nil {
		return p.EndDate
	}
	return p.PlanEndDate
}
