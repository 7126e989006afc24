package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/teamload/internal/domain"
	"github.com/alexanderramin/teamload/internal/repository"
	"golang.org/x/sync/errgroup"
)

// DatasetRequest bounds the fetch phase to one inclusive date range.
type DatasetRequest struct {
	Start time.Time
	End   time.Time
	// WithProjects also loads projects and their tasks.
	WithProjects bool
}

// Dataset bundles every input one report run needs.
type Dataset struct {
	Entries  []domain.WorkLogEntry
	// Records is the full team history, not only the records overlapping
	// the range.
	Records  []domain.TeamMembershipRecord
	Users    []domain.User
	Teams    []domain.Team
	Projects []domain.Project
}

// DatasetLoader gathers the independent datasets of a report concurrently.
type DatasetLoader struct {
	workLogs    repository.WorkLogRepo
	memberships repository.MembershipRepo
	users       repository.UserRepo
	teams       repository.TeamRepo
	projects    repository.ProjectRepo
}

func NewDatasetLoader(
	workLogs repository.WorkLogRepo,
	memberships repository.MembershipRepo,
	users repository.UserRepo,
	teams repository.TeamRepo,
	projects repository.ProjectRepo,
) *DatasetLoader {
	return &DatasetLoader{
		workLogs:    workLogs,
		memberships: memberships,
		users:       users,
		teams:       teams,
		projects:    projects,
	}
}

// Load fetches all datasets and waits for every read. The first failure
// cancels the rest.
func (l *DatasetLoader) Load(ctx context.Context, req DatasetRequest) (*Dataset, error) {
	var ds Dataset
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		entries, err := l.workLogs.ListInRange(gctx, req.Start, req.End)
		if err != nil {
			return fmt.Errorf("loading work logs: %w", err)
		}
		ds.Entries = entries
		return nil
	})
	g.Go(func() error {
		records, err := l.memberships.List(gctx)
		if err != nil {
			return fmt.Errorf("loading team histories: %w", err)
		}
		ds.Records = records
		return nil
	})
	g.Go(func() error {
		users, err := l.users.List(gctx)
		if err != nil {
			return fmt.Errorf("loading users: %w", err)
		}
		ds.Users = users
		return nil
	})
	g.Go(func() error {
		teams, err := l.teams.List(gctx)
		if err != nil {
			return fmt.Errorf("loading teams: %w", err)
		}
		ds.Teams = teams
		return nil
	})
	if req.WithProjects {
		g.Go(func() error {
			projects, err := l.projects.List(gctx)
			if err != nil {
				return fmt.Errorf("loading projects: %w", err)
			}
			ds.Projects = projects
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &ds, nil
}
