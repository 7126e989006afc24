package app

import (
	"time"

	"github.com/alexanderramin/teamload/internal/progress"
)

type ProjectOverviewRequest struct {
	Today time.Time
}

type ProjectOverviewResponse = progress.Overview

type TaskListRequest struct {
	ProjectID string
	Today     time.Time
}

type TaskListResponse struct {
	Project progress.ProjectProgress `json:"project"`
	Tasks   []progress.TaskProgress  `json:"tasks"`
}
