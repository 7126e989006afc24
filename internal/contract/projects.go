package contract

import (
	"time"

	"github.com/alexanderramin/teamload/internal/app"
)

type ProjectOverviewRequest = app.ProjectOverviewRequest

type ProjectOverviewResponse = app.ProjectOverviewResponse

type TaskListRequest = app.TaskListRequest

type TaskListResponse = app.TaskListResponse

type ImportResult = app.ImportResult

// ParseToday parses an optional YYYY-MM-DD reference date, defaulting to
// now's date.
func ParseToday(s string, now time.Time) (time.Time, error) {
	return app.ParseToday(s, now)
}
