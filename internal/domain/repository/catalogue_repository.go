package repository

import (
	"context"

	"medrep/internal/domain/entity"
	"medrep/internal/domain/query"

	"github.com/google/uuid"
)

// DoctorRepository persists doctors and their MR assignments.
// Criteria.OwnerID on a doctor query means "assigned to".
type DoctorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)
	List(ctx context.Context, criteria *query.Criteria) ([]*entity.Doctor, int64, error)
	Create(ctx context.Context, doctor *entity.Doctor) error
	Update(ctx context.Context, doctor *entity.Doctor) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ReplaceAssignments sets the doctor's assigned MRs to exactly mrIDs.
	ReplaceAssignments(ctx context.Context, doctorID uuid.UUID, mrIDs []uuid.UUID) error

	// CountActive counts active doctors, optionally only those assigned to an MR.
	CountActive(ctx context.Context, assignedTo *uuid.UUID) (int64, error)
}

// ProductRepository persists the product catalogue. Delete is a soft delete.
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)
	List(ctx context.Context, criteria *query.Criteria) ([]*entity.Product, int64, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountActive(ctx context.Context) (int64, error)
}
