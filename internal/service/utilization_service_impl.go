package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/teamload/internal/calendar"
	"github.com/alexanderramin/teamload/internal/contract"
	"github.com/alexanderramin/teamload/internal/utilization"
)

type utilizationService struct {
	loader   *DatasetLoader
	observer UseCaseObserver
}

func NewUtilizationService(loader *DatasetLoader, observers ...UseCaseObserver) UtilizationService {
	return &utilizationService{
		loader:   loader,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *utilizationService) Report(ctx context.Context, req contract.UtilizationRequest) (resp *contract.UtilizationResponse, err error) {
	fields := rangeFields(req.Range)
	defer observe(ctx, s.observer, "utilization-report", time.Now().UTC(), fields, &err)

	ds, err := s.load(ctx, req.Range)
	if err != nil {
		return nil, err
	}
	report := utilization.Aggregate(utilizationInput(ds, req))
	fields["teams"] = len(report.Teams)
	fields["users"] = report.Summary.TotalUsers
	return &report, nil
}

func (s *utilizationService) Weekly(ctx context.Context, req contract.UtilizationRequest) (resp *contract.WeeklyResponse, err error) {
	fields := rangeFields(req.Range)
	defer observe(ctx, s.observer, "utilization-weekly", time.Now().UTC(), fields, &err)

	ds, err := s.load(ctx, req.Range)
	if err != nil {
		return nil, err
	}
	weekly := utilization.Weekly(utilizationInput(ds, req))
	fields["weeks"] = len(weekly.Weeks)
	return &weekly, nil
}

func (s *utilizationService) Ranking(ctx context.Context, req contract.UtilizationRequest) (resp *contract.RankingResponse, err error) {
	fields := rangeFields(req.Range)
	defer observe(ctx, s.observer, "utilization-ranking", time.Now().UTC(), fields, &err)

	ds, err := s.load(ctx, req.Range)
	if err != nil {
		return nil, err
	}
	report := utilization.Aggregate(utilizationInput(ds, req))
	return &contract.RankingResponse{
		RangeStart: report.RangeStart,
		RangeEnd:   report.RangeEnd,
		Ranking:    utilization.Rank(report.Teams),
	}, nil
}

func (s *utilizationService) HoursComparison(ctx context.Context, req contract.HoursRequest) (resp *contract.HoursResponse, err error) {
	fields := rangeFields(req.Range)
	defer observe(ctx, s.observer, "hours-comparison", time.Now().UTC(), fields, &err)

	if err = req.Range.Validate(); err != nil {
		return nil, err
	}
	groupBy := req.GroupBy
	if groupBy == "" {
		groupBy = contract.HoursByProject
	}
	if groupBy != contract.HoursByProject && groupBy != contract.HoursByTeam {
		err = &contract.RequestError{Code: contract.ErrInvalidRange, Message: fmt.Sprintf("unknown grouping %q", groupBy)}
		return nil, err
	}
	fields["group_by"] = string(groupBy)

	prevStart, prevEnd := calendar.PreviousPeriod(req.Range.From, req.Range.To)
	ds, err := s.loader.Load(ctx, DatasetRequest{
		Start:        prevStart,
		End:          req.Range.To,
		WithProjects: groupBy == contract.HoursByProject,
	})
	if err != nil {
		return nil, err
	}
	previous, current := splitEntries(ds.Entries, req.Range.From)

	var curHours, prevHours map[string]float64
	var names map[string]string
	switch groupBy {
	case contract.HoursByTeam:
		curHours = utilization.TeamHours(current, ds.Users)
		prevHours = utilization.TeamHours(previous, ds.Users)
		names = teamNames(ds.Teams)
	default:
		var taskProject map[string]string
		taskProject, names = taskProjects(ds.Projects)
		curHours = utilization.ProjectHours(current, taskProject)
		prevHours = utilization.ProjectHours(previous, taskProject)
	}

	rows := utilization.CompareHours(curHours, prevHours, names)
	fields["rows"] = len(rows)
	return &contract.HoursResponse{
		GroupBy:       groupBy,
		CurrentStart:  req.Range.From,
		CurrentEnd:    req.Range.To,
		PreviousStart: prevStart,
		PreviousEnd:   prevEnd,
		Rows:          rows,
	}, nil
}

func (s *utilizationService) load(ctx context.Context, r contract.DateRange) (*Dataset, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return s.loader.Load(ctx, DatasetRequest{Start: r.From, End: r.To})
}

func rangeFields(r contract.DateRange) map[string]any {
	return map[string]any{
		"from": calendar.Format(r.From),
		"to":   calendar.Format(r.To),
	}
}
