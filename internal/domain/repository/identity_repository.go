package repository

import (
	"context"
	"time"

	"medrep/internal/domain/entity"
	"medrep/internal/domain/query"

	"github.com/google/uuid"
)

// IdentityRepository persists identities. It is the only place credentials are hashed:
// Create and Update hash a pending plaintext set with Identity.SetPassword.
type IdentityRepository interface {
	// FindByID retrieves a single identity by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error)

	// FindByEmail retrieves an identity by normalized email.
	FindByEmail(ctx context.Context, email string) (*entity.Identity, error)

	// List returns a page of identities matching the criteria and the total count.
	List(ctx context.Context, criteria *query.Criteria) ([]*entity.Identity, int64, error)

	// ListActiveByRole returns every active identity with the role.
	ListActiveByRole(ctx context.Context, role entity.Role) ([]*entity.Identity, error)

	// FindActiveByIDs returns the active identities among ids with the given role.
	FindActiveByIDs(ctx context.Context, ids []uuid.UUID, role entity.Role) ([]*entity.Identity, error)

	// CountActiveByRole counts active identities with the role.
	CountActiveByRole(ctx context.Context, role entity.Role) (int64, error)

	// Create persists a new identity.
	Create(ctx context.Context, identity *entity.Identity) error

	// Update saves every mutable attribute of an existing identity.
	Update(ctx context.Context, identity *entity.Identity) error

	// UpdateLastLogin records a successful login.
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

// SequenceRepository issues business identifier numbers.
type SequenceRepository interface {
	// Next atomically increments and returns the named counter, starting at 1.
	Next(ctx context.Context, name entity.SequenceName) (int64, error)
}
