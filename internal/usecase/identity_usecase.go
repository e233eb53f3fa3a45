package usecase

import (
	"context"

	"medrep/internal/domain/entity"
	"medrep/internal/domain/query"

	"github.com/google/uuid"
)

// CreateIdentityInput defines the data an admin supplies to create an account.
type CreateIdentityInput struct {
	Name               string      `json:"name" validate:"required,max=120"`
	Email              string      `json:"email" validate:"required,email"`
	Password           string      `json:"password" validate:"required,min=8,max=72"`
	Phone              string      `json:"phone" validate:"omitempty,max=30"`
	Role               entity.Role `json:"role" validate:"required"`
	Territory          string      `json:"territory"`
	Region             string      `json:"region"`
	City               string      `json:"city"`
	ReportingManagerID *uuid.UUID  `json:"reportingManagerId"`
}

// UpdateIdentityInput is a partial update. Nil fields are left unchanged.
// Fields tagged policy:"admin" are dropped for non-admin callers. Password here is an
// admin reset; callers change their own through AuthUsecase.ChangePassword.
type UpdateIdentityInput struct {
	Name               *string      `json:"name" validate:"omitempty,max=120"`
	Phone              *string      `json:"phone" validate:"omitempty,max=30"`
	Password           *string      `json:"password" validate:"omitempty,min=8,max=72" policy:"admin"`
	Email              *string      `json:"email" validate:"omitempty,email" policy:"admin"`
	Role               *entity.Role `json:"role" policy:"admin"`
	IsActive           *bool        `json:"isActive" policy:"admin"`
	Territory          *string      `json:"territory" policy:"admin"`
	Region             *string      `json:"region" policy:"admin"`
	City               *string      `json:"city" policy:"admin"`
	ReportingManagerID *uuid.UUID   `json:"reportingManagerId" policy:"admin"`
}

// IdentityUsecase manages user accounts.
type IdentityUsecase interface {
	List(ctx context.Context, principal *entity.Principal, params query.Params) (*query.Page[*entity.Identity], error)
	Get(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.Identity, error)
	Create(ctx context.Context, principal *entity.Principal, input *CreateIdentityInput) (*entity.Identity, error)
	Update(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *UpdateIdentityInput) (*entity.Identity, error)

	// Deactivate is the DELETE operation; identities are never removed.
	Deactivate(ctx context.Context, principal *entity.Principal, id uuid.UUID) error
}
