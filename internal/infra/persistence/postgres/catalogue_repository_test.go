package postgres

import (
	"context"
	"testing"

	"medrep/internal/domain/entity"
	"medrep/internal/domain/query"
	"medrep/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorRepository_AssignmentsDriveOwnership(t *testing.T) {
	ctx := context.Background()
	repo := NewDoctorRepository(newTestDB(t))

	mr1, mr2 := uuid.New(), uuid.New()
	cardio := &entity.Doctor{Name: "Dr. Mehta", Specialization: "Cardiology", City: "Pune", AssignedMRs: []uuid.UUID{mr1}, IsActive: true}
	derma := &entity.Doctor{Name: "Dr. Iyer", Specialization: "Dermatology", City: "Pune", IsActive: true}
	require.NoError(t, repo.Create(ctx, cardio))
	require.NoError(t, repo.Create(ctx, derma))

	rows, total, err := repo.List(ctx, &query.Criteria{OwnerID: &mr1, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, []uuid.UUID{mr1}, rows[0].AssignedMRs)

	require.NoError(t, repo.ReplaceAssignments(ctx, derma.ID, []uuid.UUID{mr1, mr2, mr1}))

	stored, err := repo.FindByID(ctx, derma.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{mr1, mr2}, stored.AssignedMRs)

	count, err := repo.CountActive(ctx, &mr1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	rows, _, err = repo.List(ctx, &query.Criteria{
		OwnerID: &mr2,
		Search:  &query.Search{Fields: []string{"name", "specialization"}, Term: "derma"},
		Page:    1,
		Limit:   10,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, derma.ID, rows[0].ID)

	require.NoError(t, repo.Delete(ctx, derma.ID))
	_, err = repo.FindByID(ctx, derma.ID)
	assert.ErrorIs(t, err, repository.ErrDoctorNotFound)
	assert.ErrorIs(t, repo.ReplaceAssignments(ctx, derma.ID, nil), repository.ErrDoctorNotFound)
}

func TestProductRepository_SoftDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(newTestDB(t))

	product := &entity.Product{ProductCode: "PRD000001", Name: "Amoxicillin", Category: "Antibiotic", MRP: 120, UnitPrice: 95, IsActive: true}
	require.NoError(t, repo.Create(ctx, product))

	count, err := repo.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, repo.Delete(ctx, product.ID))

	_, err = repo.FindByID(ctx, product.ID)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, product.ID), repository.ErrProductNotFound)

	found, err := repo.FindByIDs(ctx, []uuid.UUID{product.ID})
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestProductRepository_InactiveIsPersisted(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(newTestDB(t))

	product := &entity.Product{ProductCode: "PRD000002", Name: "Old syrup", Category: "Syrup", IsActive: false}
	require.NoError(t, repo.Create(ctx, product))

	stored, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
}
