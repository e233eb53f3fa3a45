package usecase

import (
	"context"

	"medrep/internal/domain/entity"
	"medrep/internal/domain/query"

	"github.com/google/uuid"
)

// CreateDoctorInput defines a new doctor. AssignedMRs is honoured for admins only;
// a doctor created by an MR is assigned to that MR.
type CreateDoctorInput struct {
	Name           string                `json:"name" validate:"required,max=120"`
	Specialization string                `json:"specialization" validate:"required,max=120"`
	Qualification  string                `json:"qualification"`
	Hospital       string                `json:"hospital"`
	Phone          string                `json:"phone" validate:"omitempty,max=30"`
	Email          string                `json:"email" validate:"omitempty,email"`
	Address        string                `json:"address"`
	City           string                `json:"city"`
	Territory      string                `json:"territory"`
	Category       entity.DoctorCategory `json:"category" validate:"omitempty,oneof=A B C"`
	AssignedMRs    []uuid.UUID           `json:"assignedMRs" policy:"admin"`
}

// UpdateDoctorInput is a partial update.
type UpdateDoctorInput struct {
	Name           *string                `json:"name" validate:"omitempty,max=120"`
	Specialization *string                `json:"specialization" validate:"omitempty,max=120"`
	Qualification  *string                `json:"qualification"`
	Hospital       *string                `json:"hospital"`
	Phone          *string                `json:"phone" validate:"omitempty,max=30"`
	Email          *string                `json:"email" validate:"omitempty,email"`
	Address        *string                `json:"address"`
	City           *string                `json:"city"`
	Territory      *string                `json:"territory"`
	Category       *entity.DoctorCategory `json:"category" validate:"omitempty,oneof=A B C"`
	IsActive       *bool                  `json:"isActive" policy:"admin"`
}

// AssignMRsInput replaces the set of MRs assigned to a doctor.
type AssignMRsInput struct {
	MRIDs []uuid.UUID `json:"mrIds" validate:"required,dive,required"`
}

// DoctorUsecase manages doctors. Ownership is assignment.
type DoctorUsecase interface {
	List(ctx context.Context, principal *entity.Principal, params query.Params) (*query.Page[*entity.Doctor], error)
	Get(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.Doctor, error)
	Create(ctx context.Context, principal *entity.Principal, input *CreateDoctorInput) (*entity.Doctor, error)
	Update(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *UpdateDoctorInput) (*entity.Doctor, error)
	Delete(ctx context.Context, principal *entity.Principal, id uuid.UUID) error
	AssignMRs(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *AssignMRsInput) (*entity.Doctor, error)
}

// CreateProductInput defines a catalogue item.
type CreateProductInput struct {
	Name           string  `json:"name" validate:"required,max=160"`
	Category       string  `json:"category" validate:"required,max=80"`
	Composition    string  `json:"composition"`
	Description    string  `json:"description"`
	Manufacturer   string  `json:"manufacturer"`
	MRP            float64 `json:"mrp" validate:"gte=0"`
	UnitPrice      float64 `json:"unitPrice" validate:"gte=0"`
	PackSize       string  `json:"packSize"`
	IsActive       *bool   `json:"isActive"`
	IsDiscontinued bool    `json:"isDiscontinued"`
}

// UpdateProductInput is a partial update.
type UpdateProductInput struct {
	Name           *string  `json:"name" validate:"omitempty,max=160"`
	Category       *string  `json:"category" validate:"omitempty,max=80"`
	Composition    *string  `json:"composition"`
	Description    *string  `json:"description"`
	Manufacturer   *string  `json:"manufacturer"`
	MRP            *float64 `json:"mrp" validate:"omitempty,gte=0"`
	UnitPrice      *float64 `json:"unitPrice" validate:"omitempty,gte=0"`
	PackSize       *string  `json:"packSize"`
	IsActive       *bool    `json:"isActive"`
	IsDiscontinued *bool    `json:"isDiscontinued"`
}

// ProductUsecase manages the catalogue. Everyone reads; admins write.
type ProductUsecase interface {
	List(ctx context.Context, principal *entity.Principal, params query.Params) (*query.Page[*entity.Product], error)
	Get(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.Product, error)
	Create(ctx context.Context, principal *entity.Principal, input *CreateProductInput) (*entity.Product, error)
	Update(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	Delete(ctx context.Context, principal *entity.Principal, id uuid.UUID) error
}
