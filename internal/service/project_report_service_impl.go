package service

import (
	"context"
	"time"

	"github.com/alexanderramin/teamload/internal/contract"
	"github.com/alexanderramin/teamload/internal/progress"
	"github.com/alexanderramin/teamload/internal/repository"
)

type projectReportService struct {
	projects repository.ProjectRepo
	now      func() time.Time
	observer UseCaseObserver
}

func NewProjectReportService(projects repository.ProjectRepo, observers ...UseCaseObserver) ProjectReportService {
	return &projectReportService{
		projects: projects,
		now:      func() time.Time { return time.Now().UTC() },
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *projectReportService) Overview(ctx context.Context, req contract.ProjectOverviewRequest) (resp *contract.ProjectOverviewResponse, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "project-overview", time.Now().UTC(), fields, &err)

	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	overview := progress.BuildOverview(projects, resolveToday(req.Today, s.now))
	fields["projects"] = len(overview.Projects)
	return &overview, nil
}

func (s *projectReportService) Tasks(ctx context.Context, req contract.TaskListRequest) (resp *contract.TaskListResponse, err error) {
	fields := map[string]any{"project_id": req.ProjectID}
	defer observe(ctx, s.observer, "project-tasks", time.Now().UTC(), fields, &err)

	project, err := s.projects.GetByID(ctx, req.ProjectID)
	if err != nil {
		err = notFoundAsRequestError(err, "project "+req.ProjectID)
		return nil, err
	}
	today := resolveToday(req.Today, s.now)
	tasks := progress.SummarizeTasks(*project, today)
	fields["tasks"] = len(tasks)
	return &contract.TaskListResponse{
		Project: progress.Summarize(*project, today),
		Tasks:   tasks,
	}, nil
}
