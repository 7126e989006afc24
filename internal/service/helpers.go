package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/teamload/internal/calendar"
	"github.com/alexanderramin/teamload/internal/contract"
	"github.com/alexanderramin/teamload/internal/domain"
	"github.com/alexanderramin/teamload/internal/repository"
	"github.com/alexanderramin/teamload/internal/utilization"
)

// utilizationInput builds the pure-pipeline input for a fetched dataset.
func utilizationInput(ds *Dataset, req contract.UtilizationRequest) utilization.Input {
	return utilization.Input{
		Entries:                ds.Entries,
		Records:                ds.Records,
		Users:                  ds.Users,
		Teams:                  ds.Teams,
		RangeStart:             req.Range.From,
		RangeEnd:               req.Range.To,
		TeamID:                 req.TeamID,
		IncludeNonTrackedTeams: req.IncludeUntracked,
	}
}

// splitEntries partitions entries at the first day of the current period.
func splitEntries(entries []domain.WorkLogEntry, currentStart time.Time) (previous, current []domain.WorkLogEntry) {
	for _, e := range entries {
		if e.WorkDate.Before(currentStart) {
			previous = append(previous, e)
		} else {
			current = append(current, e)
		}
	}
	return previous, current
}

func taskProjects(projects []domain.Project) (map[string]string, map[string]string) {
	taskProject := make(map[string]string)
	names := make(map[string]string, len(projects))
	for _, p := range projects {
		names[p.ID] = p.Name
		for _, t := range p.Tasks {
			taskProject[t.ID] = p.ID
		}
	}
	return taskProject, names
}

func teamNames(teams []domain.Team) map[string]string {
	names := make(map[string]string, len(teams))
	for _, t := range teams {
		names[t.ID] = t.Name
	}
	return names
}

func resolveToday(today time.Time, now func() time.Time) time.Time {
	if today.IsZero() {
		return calendar.Truncate(now())
	}
	return calendar.Truncate(today)
}

// notFoundAsRequestError maps repository misses onto a NOT_FOUND request error.
func notFoundAsRequestError(err error, what string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return &contract.RequestError{Code: contract.ErrNotFound, Message: what + " not found"}
	}
	return err
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
