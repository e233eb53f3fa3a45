package usecase

import (
	"context"

	"medrep/internal/domain/entity"
	"medrep/internal/domain/query"

	"github.com/google/uuid"
)

// CreateTargetInput sets a monthly target for an MR.
type CreateTargetInput struct {
	MRID            uuid.UUID `json:"mr" validate:"required"`
	Month           int       `json:"month" validate:"required,period_month"`
	Year            int       `json:"year" validate:"required,min=2000,max=9999"`
	VisitTarget     int       `json:"visitTarget" validate:"gte=0"`
	OrderTarget     int       `json:"orderTarget" validate:"gte=0"`
	SalesTarget     float64   `json:"salesTarget" validate:"gte=0"`
	NewDoctorTarget int       `json:"newDoctorTarget" validate:"gte=0"`
	Notes           string    `json:"notes"`
}

// UpdateTargetInput is a partial update of the goal figures. The period and MR are fixed.
type UpdateTargetInput struct {
	VisitTarget     *int     `json:"visitTarget" validate:"omitempty,gte=0"`
	OrderTarget     *int     `json:"orderTarget" validate:"omitempty,gte=0"`
	SalesTarget     *float64 `json:"salesTarget" validate:"omitempty,gte=0"`
	NewDoctorTarget *int     `json:"newDoctorTarget" validate:"omitempty,gte=0"`
	Notes           *string  `json:"notes"`
}

// TargetUsecase manages monthly targets.
type TargetUsecase interface {
	List(ctx context.Context, principal *entity.Principal, params query.Params) (*query.Page[*entity.MRTarget], error)
	Get(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.MRTarget, error)
	Create(ctx context.Context, principal *entity.Principal, input *CreateTargetInput) (*entity.MRTarget, error)
	Update(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *UpdateTargetInput) (*entity.MRTarget, error)
	Delete(ctx context.Context, principal *entity.Principal, id uuid.UUID) error
}

// CreatePerformanceInput records a performance log by hand.
type CreatePerformanceInput struct {
	MRID               uuid.UUID `json:"mr" validate:"required"`
	Month              int       `json:"month" validate:"required,period_month"`
	Year               int       `json:"year" validate:"required,min=2000,max=9999"`
	VisitsCompleted    int       `json:"visitsCompleted" validate:"gte=0"`
	OrdersPlaced       int       `json:"ordersPlaced" validate:"gte=0"`
	SalesValue         float64   `json:"salesValue" validate:"gte=0"`
	DoctorsCovered     int       `json:"doctorsCovered" validate:"gte=0"`
	AchievementPercent *float64  `json:"achievementPercent" validate:"omitempty,gte=0"`
	Remarks            string    `json:"remarks"`
}

// UpdatePerformanceInput is a partial update.
type UpdatePerformanceInput struct {
	VisitsCompleted    *int     `json:"visitsCompleted" validate:"omitempty,gte=0"`
	OrdersPlaced       *int     `json:"ordersPlaced" validate:"omitempty,gte=0"`
	SalesValue         *float64 `json:"salesValue" validate:"omitempty,gte=0"`
	DoctorsCovered     *int     `json:"doctorsCovered" validate:"omitempty,gte=0"`
	AchievementPercent *float64 `json:"achievementPercent" validate:"omitempty,gte=0"`
	Remarks            *string  `json:"remarks"`
}

// RollupInput selects the month to compute.
type RollupInput struct {
	Month int `json:"month" validate:"required,period_month"`
	Year  int `json:"year" validate:"required,min=2000,max=9999"`
}

// RollupOutput reports what a rollup wrote.
type RollupOutput struct {
	Period entity.Period              `json:"period"`
	Logs   []*entity.MRPerformanceLog `json:"logs"`
}

// PerformanceUsecase manages performance logs and computes them from recorded activity.
type PerformanceUsecase interface {
	List(ctx context.Context, principal *entity.Principal, params query.Params) (*query.Page[*entity.MRPerformanceLog], error)
	Get(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.MRPerformanceLog, error)
	Create(ctx context.Context, principal *entity.Principal, input *CreatePerformanceInput) (*entity.MRPerformanceLog, error)
	Update(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *UpdatePerformanceInput) (*entity.MRPerformanceLog, error)
	Delete(ctx context.Context, principal *entity.Principal, id uuid.UUID) error

	// Rollup recomputes every active MR's log for the period. A nil principal is the scheduler.
	Rollup(ctx context.Context, principal *entity.Principal, input *RollupInput) (*RollupOutput, error)
}
