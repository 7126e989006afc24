package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// Snapshot is the top-level JSON structure of a dashboard data export.
type Snapshot struct {
	Teams         []TeamImport        `json:"teams"`
	Users         []UserImport        `json:"users"`
	TeamHistories []TeamHistoryImport `json:"team_histories"`
	WorkLogs      []WorkLogImport     `json:"work_logs"`
	Projects      []ProjectImport     `json:"projects"`
}

// TeamImport defines a team. Teams are work-tracked unless stated otherwise.
type TeamImport struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	IsWorkTracked *bool  `json:"is_work_tracked,omitempty"`
}

// UserImport defines a user and their current team.
type UserImport struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	TeamID   *string `json:"team_id,omitempty"`
	Blocked  bool    `json:"blocked,omitempty"`
}

// TeamHistoryImport defines one membership interval. A missing end date
// means the membership is still active.
type TeamHistoryImport struct {
	ID        string  `json:"id,omitempty"`
	UserID    string  `json:"user_id"`
	TeamID    string  `json:"team_id"`
	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date,omitempty"`
}

// WorkLogImport defines one timesheet row.
type WorkLogImport struct {
	ID               string   `json:"id"`
	UserID           string   `json:"user_id"`
	TeamID           *string  `json:"team_id,omitempty"`
	TaskID           string   `json:"task_id,omitempty"`
	WorkDate         string   `json:"work_date"`
	WorkHours        float64  `json:"work_hours"`
	NonBillableHours *float64 `json:"non_billable_hours,omitempty"`
	OvertimeHours    *float64 `json:"overtime_hours,omitempty"`
	IsDeleted        bool     `json:"is_deleted,omitempty"`
}

// ProjectImport defines a project with its tasks nested.
type ProjectImport struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Status      string       `json:"status"`
	PlanEndDate *string      `json:"plan_end_date,omitempty"`
	EndDate     *string      `json:"end_date,omitempty"`
	Tasks       []TaskImport `json:"tasks,omitempty"`
}

// TaskImport defines a project task. Tasks count toward project progress
// unless is_progress_eligible is false.
type TaskImport struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	PlanStartDate      *string  `json:"plan_start_date,omitempty"`
	PlanEndDate        *string  `json:"plan_end_date,omitempty"`
	StartDate          *string  `json:"start_date,omitempty"`
	EndDate            *string  `json:"end_date,omitempty"`
	TaskProgressCode   string   `json:"task_progress_code,omitempty"`
	IsProgressEligible *bool    `json:"is_progress_eligible,omitempty"`
	PlanningTotalHours *float64 `json:"planning_total_hours,omitempty"`
	IsCompleted        bool     `json:"is_completed,omitempty"`
}

// LoadSnapshot reads and parses a snapshot JSON file.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSnapshot(data)
}

// ParseSnapshot parses snapshot JSON.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	return &s, nil
}
