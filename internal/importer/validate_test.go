package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrStr(s string) *string     { return &s }
func ptrFloat(f float64) *float64 { return &f }
func ptrBool(b bool) *bool        { return &b }

func validMinimalSnapshot() *Snapshot {
	return &Snapshot{
		Teams: []TeamImport{{ID: "dev", Name: "Development"}},
		Users: []UserImport{{ID: "u1", Username: "kim", TeamID: ptrStr("dev")}},
		TeamHistories: []TeamHistoryImport{
			{UserID: "u1", TeamID: "dev", StartDate: "2025-01-01"},
		},
		WorkLogs: []WorkLogImport{
			{ID: "w1", UserID: "u1", TaskID: "t1", WorkDate: "2025-03-10", WorkHours: 8},
		},
		Projects: []ProjectImport{
			{ID: "p1", Name: "Billing", Status: "진행중", Tasks: []TaskImport{
				{ID: "t1", Name: "API", TaskProgressCode: "40"},
			}},
		},
	}
}

func TestValidateSnapshot_ValidMinimal(t *testing.T) {
	assert.Empty(t, ValidateSnapshot(validMinimalSnapshot()))
}

func TestValidateSnapshot_Empty(t *testing.T) {
	assert.Empty(t, ValidateSnapshot(&Snapshot{}))
}

func TestValidateSnapshot_Testdata(t *testing.T) {
	s, err := LoadSnapshot("testdata/snapshot.json")
	require.NoError(t, err)
	assert.Empty(t, ValidateSnapshot(s))
}

func TestValidateSnapshot_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *Snapshot)
		want   string
	}{
		{"team id required", func(s *Snapshot) { s.Teams[0].ID = "" }, "teams[0].id is required"},
		{"duplicate team", func(s *Snapshot) { s.Teams = append(s.Teams, TeamImport{ID: "dev", Name: "Dup"}) }, `duplicate id "dev"`},
		{"username required", func(s *Snapshot) { s.Users[0].Username = "" }, "users[0].username is required"},
		{"unknown current team", func(s *Snapshot) { s.Users[0].TeamID = ptrStr("ghost") }, `users[0].team_id: unknown team "ghost"`},
		{"history unknown user", func(s *Snapshot) { s.TeamHistories[0].UserID = "nobody" }, `team_histories[0].user_id: unknown user "nobody"`},
		{"history start required", func(s *Snapshot) { s.TeamHistories[0].StartDate = "" }, "team_histories[0].start_date is required"},
		{"history bad date", func(s *Snapshot) { s.TeamHistories[0].StartDate = "2025/01/01" }, "invalid date format"},
		{"history end before start", func(s *Snapshot) { s.TeamHistories[0].EndDate = ptrStr("2024-12-31") }, "must not be before start_date"},
		{"work log unknown task", func(s *Snapshot) { s.WorkLogs[0].TaskID = "t9" }, `unknown task "t9"`},
		{"work log unknown team", func(s *Snapshot) { s.WorkLogs[0].TeamID = ptrStr("ops") }, `unknown team "ops"`},
		{"work log date required", func(s *Snapshot) { s.WorkLogs[0].WorkDate = "" }, "work_logs[0].work_date is required"},
		{"negative hours", func(s *Snapshot) { s.WorkLogs[0].WorkHours = -1 }, "work_logs[0].work_hours: must be a non-negative number"},
		{"negative overtime", func(s *Snapshot) { s.WorkLogs[0].OvertimeHours = ptrFloat(-2) }, "overtime_hours"},
		{"invalid status", func(s *Snapshot) { s.Projects[0].Status = "archived" }, `projects[0].status: invalid value "archived"`},
		{"duplicate task", func(s *Snapshot) {
			s.Projects = append(s.Projects, ProjectImport{ID: "p2", Name: "Other", Tasks: []TaskImport{{ID: "t1", Name: "Copy"}}})
		}, `projects[1].tasks[0].id: duplicate id "t1"`},
		{"bad progress code", func(s *Snapshot) { s.Projects[0].Tasks[0].TaskProgressCode = "done" }, "does not start with a number"},
		{"task plan inverted", func(s *Snapshot) {
			s.Projects[0].Tasks[0].PlanStartDate = ptrStr("2025-03-10")
			s.Projects[0].Tasks[0].PlanEndDate = ptrStr("2025-03-01")
		}, "plan_end_date"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := validMinimalSnapshot()
			tc.mutate(s)
			errs := ValidateSnapshot(s)
			require.NotEmpty(t, errs)

			msgs := make([]string, 0, len(errs))
			for _, err := range errs {
				msgs = append(msgs, err.Error())
			}
			assert.Contains(t, strings.Join(msgs, "\n"), tc.want)
		})
	}
}

func TestValidateSnapshot_CollectsAllErrors(t *testing.T) {
	s := validMinimalSnapshot()
	s.Teams[0].Name = ""
	s.WorkLogs[0].WorkHours = -3
	s.Projects[0].Name = ""

	assert.Len(t, ValidateSnapshot(s), 3)
}

func TestValidateSnapshot_OptionalFieldsAccepted(t *testing.T) {
	s := validMinimalSnapshot()
	s.Users[0].TeamID = nil
	s.WorkLogs[0].TaskID = ""
	s.Projects[0].Status = ""
	s.Projects[0].Tasks[0].TaskProgressCode = ""
	s.Projects[0].Tasks[0].IsProgressEligible = ptrBool(false)

	assert.Empty(t, ValidateSnapshot(s))
}
