package postgres

import (
	"context"
	"testing"
	"time"

	"medrep/internal/domain/entity"
	domainerrors "medrep/internal/domain/errors"
	"medrep/internal/domain/query"
	"medrep/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIdentity(email string, role entity.Role) *entity.Identity {
	return &entity.Identity{
		EmployeeID: "EMP" + uuid.NewString()[:6],
		Name:       "Asha Rao",
		Email:      email,
		Role:       role,
		IsActive:   true,
	}
}

func TestIdentityRepository_HashesPendingPasswordOnce(t *testing.T) {
	ctx := context.Background()
	hasher := &countingHasher{}
	repo := NewIdentityRepository(newTestDB(t), hasher)

	identity := newTestIdentity("Asha@Example.com ", entity.RoleMR)
	identity.SetPassword("s3cret!")
	require.NoError(t, repo.Create(ctx, identity))

	assert.Equal(t, int32(1), hasher.calls.Load())
	assert.Equal(t, "hashed:s3cret!", identity.PasswordHash)
	_, pending := identity.PendingPassword()
	assert.False(t, pending)

	// An update without a new password must not re-hash the stored hash.
	identity.Name = "Asha R."
	require.NoError(t, repo.Update(ctx, identity))
	assert.Equal(t, int32(1), hasher.calls.Load())

	stored, err := repo.FindByEmail(ctx, "ASHA@example.com")
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", stored.Email)
	assert.Equal(t, "Asha R.", stored.Name)
	assert.Equal(t, "hashed:s3cret!", stored.PasswordHash)

	stored.SetPassword("n3w-pass")
	require.NoError(t, repo.Update(ctx, stored))
	assert.Equal(t, int32(2), hasher.calls.Load())

	reloaded, err := repo.FindByID(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "hashed:n3w-pass", reloaded.PasswordHash)
}

func TestIdentityRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewIdentityRepository(newTestDB(t), &countingHasher{})

	require.NoError(t, repo.Create(ctx, newTestIdentity("dup@example.com", entity.RoleMR)))

	err := repo.Create(ctx, newTestIdentity("DUP@example.com", entity.RoleMR))
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestIdentityRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewIdentityRepository(newTestDB(t), &countingHasher{})

	_, err := repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrIdentityNotFound)

	err = repo.UpdateLastLogin(ctx, uuid.New(), time.Now())
	assert.ErrorIs(t, err, repository.ErrIdentityNotFound)
}

func TestIdentityRepository_ListAndCounts(t *testing.T) {
	ctx := context.Background()
	repo := NewIdentityRepository(newTestDB(t), &countingHasher{})

	admin := newTestIdentity("admin@example.com", entity.RoleAdmin)
	mr1 := newTestIdentity("mr1@example.com", entity.RoleMR)
	mr2 := newTestIdentity("mr2@example.com", entity.Role("mr"))
	inactive := newTestIdentity("gone@example.com", entity.RoleMR)
	inactive.IsActive = false
	for _, identity := range []*entity.Identity{admin, mr1, mr2, inactive} {
		require.NoError(t, repo.Create(ctx, identity))
	}

	count, err := repo.CountActiveByRole(ctx, entity.RoleMR)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count, "role is stored in canonical case")

	found, err := repo.FindActiveByIDs(ctx, []uuid.UUID{mr1.ID, admin.ID, inactive.ID}, entity.RoleMR)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, mr1.ID, found[0].ID)

	// A restricted criteria only ever sees the identity itself.
	self := mr2.ID
	rows, total, err := repo.List(ctx, &query.Criteria{OwnerID: &self, Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, mr2.ID, rows[0].ID)

	rows, total, err = repo.List(ctx, &query.Criteria{
		Search:  &query.Search{Fields: []string{"name", "email"}, Term: "MR1@"},
		Page:    1,
		Limit:   20,
		OrderBy: "created_at DESC",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, mr1.ID, rows[0].ID)
}

func TestSequenceRepository_Next(t *testing.T) {
	ctx := context.Background()
	repo := NewSequenceRepository(newTestDB(t))

	first, err := repo.Next(ctx, entity.SequenceEmployee)
	require.NoError(t, err)
	second, err := repo.Next(ctx, entity.SequenceEmployee)
	require.NoError(t, err)
	other, err := repo.Next(ctx, entity.SequenceOrder)
	require.NoError(t, err)

	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)
	assert.Equal(t, int64(1), other)
	assert.Equal(t, "EMP000002", entity.FormatBusinessID(entity.SequenceEmployee, second))
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	tm := NewTransactionManager(db, &countingHasher{})

	boom := errors.New("boom")
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewIdentityRepository().Create(ctx, newTestIdentity("tx@example.com", entity.RoleMR)); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = NewIdentityRepository(db, &countingHasher{}).FindByEmail(ctx, "tx@example.com")
	assert.ErrorIs(t, err, repository.ErrIdentityNotFound)
}
