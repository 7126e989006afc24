package service

import (
	"context"
	"time"

	"github.com/alexanderramin/teamload/internal/repository"
)

type workLogService struct {
	workLogs repository.WorkLogRepo
	observer UseCaseObserver
}

func NewWorkLogService(workLogs repository.WorkLogRepo, observers ...UseCaseObserver) WorkLogService {
	return &workLogService{
		workLogs: workLogs,
		observer: useCaseObserverOrNoop(observers),
	}
}

// DeleteWorkLog marks the entry deleted. The row stays for auditing but the
// range queries skip it.
func (s *workLogService) DeleteWorkLog(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "delete-work-log", time.Now().UTC(), map[string]any{"id": id}, &err)

	if err = s.workLogs.SoftDelete(ctx, id); err != nil {
		err = notFoundAsRequestError(err, "work log "+id)
	}
	return err
}
