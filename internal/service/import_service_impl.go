package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/teamload/internal/contract"
	"github.com/alexanderramin/teamload/internal/db"
	"github.com/alexanderramin/teamload/internal/importer"
	"github.com/alexanderramin/teamload/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) Import(ctx context.Context, path string, replace bool) (*contract.ImportResult, error) {
	snapshot, err := importer.LoadSnapshot(path)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}
	return s.ImportSnapshot(ctx, snapshot, replace)
}

// ImportSnapshot validates, converts and stores a snapshot in one transaction.
// With replace set, existing data is cleared first; otherwise rows are upserted
// by id and membership/work-log ids must be new.
func (s *importService) ImportSnapshot(ctx context.Context, snapshot *importer.Snapshot, replace bool) (result *contract.ImportResult, err error) {
	fields := map[string]any{"replace": replace}
	defer observe(ctx, s.observer, "import-snapshot", time.Now().UTC(), fields, &err)

	if errs := importer.ValidateSnapshot(snapshot); len(errs) > 0 {
		err = formatValidationErrors(errs)
		return nil, err
	}

	ds, err := importer.Convert(snapshot)
	if err != nil {
		return nil, fmt.Errorf("converting snapshot: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if replace {
			if err := repository.Reset(ctx, tx); err != nil {
				return err
			}
		}

		teams := repository.NewSQLiteTeamRepo(tx)
		for i := range ds.Teams {
			if err := teams.Upsert(ctx, &ds.Teams[i]); err != nil {
				return err
			}
		}

		users := repository.NewSQLiteUserRepo(tx)
		for i := range ds.Users {
			if err := users.Upsert(ctx, &ds.Users[i]); err != nil {
				return err
			}
		}

		memberships := repository.NewSQLiteMembershipRepo(tx)
		for i := range ds.Memberships {
			if err := memberships.Create(ctx, &ds.Memberships[i]); err != nil {
				return err
			}
		}

		projects := repository.NewSQLiteProjectRepo(tx)
		for i := range ds.Projects {
			p := &ds.Projects[i]
			if err := projects.Upsert(ctx, p); err != nil {
				return err
			}
			for j := range p.Tasks {
				if err := projects.UpsertTask(ctx, &p.Tasks[j]); err != nil {
					return err
				}
			}
		}

		workLogs := repository.NewSQLiteWorkLogRepo(tx)
		for i := range ds.WorkLogs {
			if err := workLogs.Create(ctx, &ds.WorkLogs[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result = &contract.ImportResult{
		Replaced:    replace,
		Teams:       len(ds.Teams),
		Users:       len(ds.Users),
		Memberships: len(ds.Memberships),
		WorkLogs:    len(ds.WorkLogs),
		Projects:    len(ds.Projects),
		Tasks:       ds.TaskCount(),
	}
	fields["work_logs"] = result.WorkLogs
	fields["projects"] = result.Projects
	return result, nil
}
