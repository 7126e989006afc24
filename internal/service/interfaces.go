package service

import (
	"context"

	"github.com/alexanderramin/teamload/internal/contract"
	"github.com/alexanderramin/teamload/internal/importer"
)

type UtilizationService interface {
	Report(ctx context.Context, req contract.UtilizationRequest) (*contract.UtilizationResponse, error)
	Weekly(ctx context.Context, req contract.UtilizationRequest) (*contract.WeeklyResponse, error)
	Ranking(ctx context.Context, req contract.UtilizationRequest) (*contract.RankingResponse, error)
	HoursComparison(ctx context.Context, req contract.HoursRequest) (*contract.HoursResponse, error)
}

type ProjectReportService interface {
	Overview(ctx context.Context, req contract.ProjectOverviewRequest) (*contract.ProjectOverviewResponse, error)
	Tasks(ctx context.Context, req contract.TaskListRequest) (*contract.TaskListResponse, error)
}

type ImportService interface {
	Import(ctx context.Context, path string, replace bool) (*contract.ImportResult, error)
	ImportSnapshot(ctx context.Context, s *importer.Snapshot, replace bool) (*contract.ImportResult, error)
}

type WorkLogService interface {
	DeleteWorkLog(ctx context.Context, id string) error
}
