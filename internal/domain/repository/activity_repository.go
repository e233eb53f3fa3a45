package repository

import (
	"context"
	"time"

	"medrep/internal/domain/entity"
	"medrep/internal/domain/query"

	"github.com/google/uuid"
)

// VisitStat is the visit activity of one MR over a period.
type VisitStat struct {
	MRID           uuid.UUID
	Visits         int64
	DoctorsCovered int64
}

// OrderStat is the order activity of one MR over a period.
type OrderStat struct {
	MRID   uuid.UUID
	Orders int64
	Sales  float64
}

// VisitReportRepository persists visit reports.
type VisitReportRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.VisitReport, error)
	List(ctx context.Context, criteria *query.Criteria) ([]*entity.VisitReport, int64, error)
	Create(ctx context.Context, visit *entity.VisitReport) error

	// Update saves the report only if its stored status still equals expected.
	// It returns ErrStaleState otherwise.
	Update(ctx context.Context, visit *entity.VisitReport, expected entity.VisitStatus) error

	Delete(ctx context.Context, id uuid.UUID) error

	// CountByStatus groups reports by status, optionally for one MR.
	CountByStatus(ctx context.Context, mrID *uuid.UUID) ([]entity.StatusCount, error)

	// StatsBetween summarises submitted and approved visits per MR in [from, to).
	StatsBetween(ctx context.Context, from, to time.Time) ([]VisitStat, error)
}

// OrderRepository persists orders. Create and Update recompute financials from the items.
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	List(ctx context.Context, criteria *query.Criteria) ([]*entity.Order, int64, error)

	// Create stores the order together with its initial status history.
	Create(ctx context.Context, order *entity.Order) error

	// Update saves items, details and notes while the stored status still equals expected.
	// Status and history are untouched. It returns ErrStaleState when the status moved on.
	Update(ctx context.Context, order *entity.Order, expected entity.OrderStatus) error

	// Delete removes the order while its stored status still equals expected.
	Delete(ctx context.Context, id uuid.UUID, expected entity.OrderStatus) error

	// TransitionStatus moves the order from one status to entry.Status and appends entry to the history.
	// It returns ErrStaleState when the stored status is no longer from.
	// Run it inside a transaction so the status and the history entry commit together.
	TransitionStatus(ctx context.Context, id uuid.UUID, from entity.OrderStatus, entry entity.OrderStatusEntry, deliveredAt *time.Time) error

	// CountByStatus groups orders by status with grand total sums, optionally for one MR.
	CountByStatus(ctx context.Context, mrID *uuid.UUID) ([]entity.StatusCount, error)

	// StatsBetween summarises non-cancelled, non-returned orders per MR in [from, to).
	StatsBetween(ctx context.Context, from, to time.Time) ([]OrderStat, error)
}

// ProductActivityRepository is append-only.
type ProductActivityRepository interface {
	Create(ctx context.Context, activity *entity.ProductActivityLog) error
	List(ctx context.Context, criteria *query.Criteria) ([]*entity.ProductActivityLog, int64, error)

	// Summarize aggregates matching activity by product and action. Pagination is ignored.
	Summarize(ctx context.Context, criteria *query.Criteria) ([]entity.ActivitySummary, error)
}
