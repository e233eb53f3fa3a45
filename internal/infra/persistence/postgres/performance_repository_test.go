package postgres

import (
	"context"
	"testing"

	"medrep/internal/domain/entity"
	domainerrors "medrep/internal/domain/errors"
	"medrep/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMRTargetRepository_UniquePeriod(t *testing.T) {
	ctx := context.Background()
	repo := NewMRTargetRepository(newTestDB(t))

	mr := uuid.New()
	target := &entity.MRTarget{MRID: mr, Month: 6, Year: 2026, SalesTarget: 50000}
	require.NoError(t, repo.Create(ctx, target))

	err := repo.Create(ctx, &entity.MRTarget{MRID: mr, Month: 6, Year: 2026})
	assert.True(t, errors.Is(err, domainerrors.ErrTargetExists))

	found, err := repo.FindByPeriod(ctx, mr, entity.Period{Month: 6, Year: 2026})
	require.NoError(t, err)
	assert.Equal(t, target.ID, found.ID)

	_, err = repo.FindByPeriod(ctx, mr, entity.Period{Month: 7, Year: 2026})
	assert.ErrorIs(t, err, repository.ErrTargetNotFound)
}

func TestMRPerformanceRepository_UpsertKeepsOneRow(t *testing.T) {
	ctx := context.Background()
	repo := NewMRPerformanceRepository(newTestDB(t))

	mr := uuid.New()
	first := &entity.MRPerformanceLog{MRID: mr, Month: 6, Year: 2026, VisitsCompleted: 3, SalesValue: 1000}
	require.NoError(t, repo.Upsert(ctx, first))

	second := &entity.MRPerformanceLog{MRID: mr, Month: 6, Year: 2026, VisitsCompleted: 5, SalesValue: 2500, AchievementPercent: 5}
	require.NoError(t, repo.Upsert(ctx, second))

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.VisitsCompleted)
	assert.InDelta(t, 2500, second.SalesValue, 0.001)
	assert.False(t, second.ComputedAt.IsZero())
}

func TestMRRequestRepository_MarkProcessedOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewMRRequestRepository(newTestDB(t))

	request := &entity.MRRequest{Name: "Ravi", Email: "Ravi@Example.com", Phone: "9999999999", Status: entity.MRRequestPending}
	require.NoError(t, repo.Create(ctx, request))

	pending, err := repo.FindPendingByEmail(ctx, "ravi@example.com")
	require.NoError(t, err)
	assert.Equal(t, request.ID, pending.ID)

	admin := uuid.New()
	request.Status = entity.MRRequestApproved
	request.ProcessedBy = &admin
	require.NoError(t, repo.MarkProcessed(ctx, request))

	again := *request
	again.Status = entity.MRRequestRejected
	again.ProcessedAt = nil
	assert.ErrorIs(t, repo.MarkProcessed(ctx, &again), repository.ErrAlreadyProcessed)

	stored, err := repo.FindByID(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.MRRequestApproved, stored.Status)
	require.NotNil(t, stored.ProcessedBy)
	assert.Equal(t, admin, *stored.ProcessedBy)

	missing := &entity.MRRequest{ID: uuid.New(), Status: entity.MRRequestRejected}
	assert.ErrorIs(t, repo.MarkProcessed(ctx, missing), repository.ErrMRRequestNotFound)

	count, err := repo.CountPending(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
