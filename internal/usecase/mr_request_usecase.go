package usecase

import (
	"context"

	"medrep/internal/domain/entity"
	"medrep/internal/domain/query"

	"github.com/google/uuid"
)

// CreateMRRequestInput is the public onboarding application.
type CreateMRRequestInput struct {
	Name            string `json:"name" validate:"required,max=120"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,max=30"`
	Territory       string `json:"territory"`
	Region          string `json:"region"`
	City            string `json:"city"`
	Qualification   string `json:"qualification"`
	ExperienceYears int    `json:"experienceYears" validate:"gte=0,lte=60"`
	Message         string `json:"message" validate:"omitempty,max=2000"`
}

// RejectMRRequestInput carries the optional rejection reason.
type RejectMRRequestInput struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

// ApproveMRRequestOutput is the processed request and the identity created for it.
type ApproveMRRequestOutput struct {
	Request  *entity.MRRequest `json:"request"`
	Identity *entity.Identity  `json:"user"`
}

// MRRequestUsecase handles onboarding requests.
type MRRequestUsecase interface {
	// Create is public; principal may be nil.
	Create(ctx context.Context, principal *entity.Principal, input *CreateMRRequestInput) (*entity.MRRequest, error)
	List(ctx context.Context, principal *entity.Principal, params query.Params) (*query.Page[*entity.MRRequest], error)
	Get(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.MRRequest, error)
	Approve(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*ApproveMRRequestOutput, error)
	Reject(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *RejectMRRequestInput) (*entity.MRRequest, error)
}

// DashboardUsecase aggregates KPIs.
type DashboardUsecase interface {
	Admin(ctx context.Context, principal *entity.Principal) (*entity.AdminDashboard, error)
	MR(ctx context.Context, principal *entity.Principal) (*entity.MRDashboard, error)
}
