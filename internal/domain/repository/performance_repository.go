package repository

import (
	"context"

	"medrep/internal/domain/entity"
	"medrep/internal/domain/query"

	"github.com/google/uuid"
)

// MRTargetRepository persists monthly targets. (mr, month, year) is unique.
type MRTargetRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MRTarget, error)
	FindByPeriod(ctx context.Context, mrID uuid.UUID, period entity.Period) (*entity.MRTarget, error)
	ListByPeriod(ctx context.Context, period entity.Period) ([]*entity.MRTarget, error)
	List(ctx context.Context, criteria *query.Criteria) ([]*entity.MRTarget, int64, error)
	Create(ctx context.Context, target *entity.MRTarget) error
	Update(ctx context.Context, target *entity.MRTarget) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MRPerformanceRepository persists monthly performance logs. (mr, month, year) is unique.
type MRPerformanceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MRPerformanceLog, error)
	FindByPeriod(ctx context.Context, mrID uuid.UUID, period entity.Period) (*entity.MRPerformanceLog, error)
	List(ctx context.Context, criteria *query.Criteria) ([]*entity.MRPerformanceLog, int64, error)
	Create(ctx context.Context, log *entity.MRPerformanceLog) error
	Update(ctx context.Context, log *entity.MRPerformanceLog) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Upsert inserts the log or replaces the computed figures of the existing (mr, month, year) row.
	Upsert(ctx context.Context, log *entity.MRPerformanceLog) error
}

// MRRequestRepository persists onboarding requests.
type MRRequestRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MRRequest, error)
	FindPendingByEmail(ctx context.Context, email string) (*entity.MRRequest, error)
	List(ctx context.Context, criteria *query.Criteria) ([]*entity.MRRequest, int64, error)
	Create(ctx context.Context, request *entity.MRRequest) error
	CountPending(ctx context.Context) (int64, error)

	// MarkProcessed moves a pending request to request.Status with a compare-and-swap on status = pending.
	// It returns ErrAlreadyProcessed when no pending row matched.
	MarkProcessed(ctx context.Context, request *entity.MRRequest) error
}
