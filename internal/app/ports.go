package app

import (
	"context"

	"github.com/alexanderramin/teamload/internal/importer"
)

type UtilizationUseCase interface {
	Report(ctx context.Context, req UtilizationRequest) (*UtilizationResponse, error)
	Weekly(ctx context.Context, req UtilizationRequest) (*WeeklyResponse, error)
	Ranking(ctx context.Context, req UtilizationRequest) (*RankingResponse, error)
	HoursComparison(ctx context.Context, req HoursRequest) (*HoursResponse, error)
}

type ProjectReportUseCase interface {
	Overview(ctx context.Context, req ProjectOverviewRequest) (*ProjectOverviewResponse, error)
	Tasks(ctx context.Context, req TaskListRequest) (*TaskListResponse, error)
}

type ImportResult struct {
	Replaced    bool `json:"replaced"`
	Teams       int  `json:"teams"`
	Users       int  `json:"users"`
	Memberships int  `json:"memberships"`
	WorkLogs    int  `json:"workLogs"`
	Projects    int  `json:"projects"`
	Tasks       int  `json:"tasks"`
}

type ImportSnapshotUseCase interface {
	Import(ctx context.Context, path string, replace bool) (*ImportResult, error)
	ImportSnapshot(ctx context.Context, s *importer.Snapshot, replace bool) (*ImportResult, error)
}

type WorkLogUseCase interface {
	// DeleteWorkLog soft-deletes one entry so reports stop counting it.
	DeleteWorkLog(ctx context.Context, id string) error
}
