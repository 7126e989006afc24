package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/teamload/internal/domain"
)

type TeamRepo interface {
	Upsert(ctx context.Context, t *domain.Team) error
	List(ctx context.Context) ([]domain.Team, error)
}

type UserRepo interface {
	Upsert(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

type MembershipRepo interface {
	Create(ctx context.Context, r *domain.TeamMembershipRecord) error
	// List returns the full history. Whether a user has any history at all
	// decides the membership fallback, so callers must not pre-filter by range.
	List(ctx context.Context) ([]domain.TeamMembershipRecord, error)
}

type WorkLogRepo interface {
	Create(ctx context.Context, e *domain.WorkLogEntry) error
	// ListInRange returns live entries dated within [start, end].
	ListInRange(ctx context.Context, start, end time.Time) ([]domain.WorkLogEntry, error)
	SoftDelete(ctx context.Context, id string) error
}

type ProjectRepo interface {
	Upsert(ctx context.Context, p *domain.Project) error
	UpsertTask(ctx context.Context, t *domain.ProjectTask) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	// List returns every project with its tasks attached.
	List(ctx context.Context) ([]domain.Project, error)
}
