package importer

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/teamload/internal/domain"
)

const dateLayout = "2006-01-02"

// ValidateSnapshot checks the snapshot for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateSnapshot(s *Snapshot) []error {
	var errs []error

	teamIDs := make(map[string]bool)
	errs = append(errs, validateTeams(s.Teams, teamIDs)...)

	userIDs := make(map[string]bool)
	errs = append(errs, validateUsers(s.Users, teamIDs, userIDs)...)

	errs = append(errs, validateHistories(s.TeamHistories, teamIDs, userIDs)...)

	taskIDs := make(map[string]bool)
	errs = append(errs, validateProjects(s.Projects, taskIDs)...)

	errs = append(errs, validateWorkLogs(s.WorkLogs, teamIDs, userIDs, taskIDs)...)

	return errs
}

func validateTeams(teams []TeamImport, ids map[string]bool) []error {
	var errs []error
	for i, t := range teams {
		prefix := fmt.Sprintf("teams[%d]", i)
		if t.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if ids[t.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, t.ID))
		} else {
			ids[t.ID] = true
		}
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
	}
	return errs
}

func validateUsers(users []UserImport, teamIDs, ids map[string]bool) []error {
	var errs []error
	for i, u := range users {
		prefix := fmt.Sprintf("users[%d]", i)
		if u.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if ids[u.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, u.ID))
		} else {
			ids[u.ID] = true
		}
		if u.Username == "" {
			errs = append(errs, fmt.Errorf("%s.username is required", prefix))
		}
		if u.TeamID != nil && *u.TeamID != "" && !teamIDs[*u.TeamID] {
			errs = append(errs, fmt.Errorf("%s.team_id: unknown team %q", prefix, *u.TeamID))
		}
	}
	return errs
}

func validateHistories(histories []TeamHistoryImport, teamIDs, userIDs map[string]bool) []error {
	var errs []error
	seen := make(map[string]bool)
	for i, h := range histories {
		prefix := fmt.Sprintf("team_histories[%d]", i)
		if h.ID != "" {
			if seen[h.ID] {
				errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, h.ID))
			}
			seen[h.ID] = true
		}
		if !userIDs[h.UserID] {
			errs = append(errs, fmt.Errorf("%s.user_id: unknown user %q", prefix, h.UserID))
		}
		if !teamIDs[h.TeamID] {
			errs = append(errs, fmt.Errorf("%s.team_id: unknown team %q", prefix, h.TeamID))
		}
		errs = append(errs, validateRange(prefix, "start_date", "end_date", &h.StartDate, h.EndDate, true)...)
	}
	return errs
}

func validateProjects(projects []ProjectImport, taskIDs map[string]bool) []error {
	var errs []error
	ids := make(map[string]bool)
	for i, p := range projects {
		prefix := fmt.Sprintf("projects[%d]", i)
		if p.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if ids[p.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, p.ID))
		} else {
			ids[p.ID] = true
		}
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if p.Status != "" && !domain.ValidProjectStatuses[domain.ProjectStatus(p.Status)] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, p.Status))
		}
		errs = append(errs, validateOptionalDate(prefix+".plan_end_date", p.PlanEndDate)...)
		errs = append(errs, validateOptionalDate(prefix+".end_date", p.EndDate)...)

		for j, t := range p.Tasks {
			errs = append(errs, validateTask(fmt.Sprintf("%s.tasks[%d]", prefix, j), t, taskIDs)...)
		}
	}
	return errs
}

func validateTask(prefix string, t TaskImport, ids map[string]bool) []error {
	var errs []error
	if t.ID == "" {
		errs = append(errs, fmt.Errorf("%s.id is required", prefix))
	} else if ids[t.ID] {
		errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, t.ID))
	} else {
		ids[t.ID] = true
	}
	if t.Name == "" {
		errs = append(errs, fmt.Errorf("%s.name is required", prefix))
	}
	errs = append(errs, validateRange(prefix, "plan_start_date", "plan_end_date", t.PlanStartDate, t.PlanEndDate, false)...)
	errs = append(errs, validateRange(prefix, "start_date", "end_date", t.StartDate, t.EndDate, false)...)

	code := strings.TrimSpace(t.TaskProgressCode)
	if code != "" && (code[0] < '0' || code[0] > '9') {
		errs = append(errs, fmt.Errorf("%s.task_progress_code: %q does not start with a number", prefix, t.TaskProgressCode))
	}
	if t.PlanningTotalHours != nil {
		errs = append(errs, validateHours(prefix+".planning_total_hours", *t.PlanningTotalHours)...)
	}
	return errs
}

func validateWorkLogs(logs []WorkLogImport, teamIDs, userIDs, taskIDs map[string]bool) []error {
	var errs []error
	ids := make(map[string]bool)
	for i, w := range logs {
		prefix := fmt.Sprintf("work_logs[%d]", i)
		if w.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if ids[w.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, w.ID))
		} else {
			ids[w.ID] = true
		}
		if !userIDs[w.UserID] {
			errs = append(errs, fmt.Errorf("%s.user_id: unknown user %q", prefix, w.UserID))
		}
		if w.TeamID != nil && *w.TeamID != "" && !teamIDs[*w.TeamID] {
			errs = append(errs, fmt.Errorf("%s.team_id: unknown team %q", prefix, *w.TeamID))
		}
		if w.TaskID != "" && !taskIDs[w.TaskID] {
			errs = append(errs, fmt.Errorf("%s.task_id: unknown task %q", prefix, w.TaskID))
		}
		if w.WorkDate == "" {
			errs = append(errs, fmt.Errorf("%s.work_date is required", prefix))
		} else {
			errs = append(errs, validateOptionalDate(prefix+".work_date", &w.WorkDate)...)
		}
		errs = append(errs, validateHours(prefix+".work_hours", w.WorkHours)...)
		if w.NonBillableHours != nil {
			errs = append(errs, validateHours(prefix+".non_billable_hours", *w.NonBillableHours)...)
		}
		if w.OvertimeHours != nil {
			errs = append(errs, validateHours(prefix+".overtime_hours", *w.OvertimeHours)...)
		}
	}
	return errs
}

// validateRange checks both dates parse and that end is not before start.
func validateRange(prefix, startField, endField string, start, end *string, startRequired bool) []error {
	if startRequired && (start == nil || *start == "") {
		return []error{fmt.Errorf("%s.%s is required", prefix, startField)}
	}
	errs := validateOptionalDate(prefix+"."+startField, start)
	errs = append(errs, validateOptionalDate(prefix+"."+endField, end)...)
	if len(errs) > 0 {
		return errs
	}
	s, e := parseOptionalDate(start), parseOptionalDate(end)
	if s != nil && e != nil && e.Before(*s) {
		errs = append(errs, fmt.Errorf("%s.%s %q must not be before %s %q", prefix, endField, *end, startField, *start))
	}
	return errs
}

func validateOptionalDate(field string, dateStr *string) []error {
	if dateStr == nil || *dateStr == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, *dateStr); err != nil {
		return []error{fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, *dateStr)}
	}
	return nil
}

func validateHours(field string, v float64) []error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return []error{fmt.Errorf("%s: must be a non-negative number, got %v", field, v)}
	}
	return nil
}
