package impl

import (
	"context"
	"net/http"
	"testing"

	"medrep/internal/domain/entity"
	domainerrors "medrep/internal/domain/errors"
	"medrep/internal/domain/repository"
	mockRepo "medrep/internal/mocks/repository"
	"medrep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// targetServiceFixtures holds all test dependencies for target service tests.
type targetServiceFixtures struct {
	service      usecase.TargetUsecase
	targetRepo   *mockRepo.MockMRTargetRepository
	identityRepo *mockRepo.MockIdentityRepository
}

func createTestTargetService(t *testing.T) targetServiceFixtures {
	targetRepo := mockRepo.NewMockMRTargetRepository(t)
	identityRepo := mockRepo.NewMockIdentityRepository(t)

	svc := NewTargetService(TargetServiceParams{
		TargetRepo:   targetRepo,
		IdentityRepo: identityRepo,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return targetServiceFixtures{
		service:      svc,
		targetRepo:   targetRepo,
		identityRepo: identityRepo,
	}
}

func TestTargetService_Create_Success(t *testing.T) {
	fx := createTestTargetService(t)

	ctx := context.Background()
	admin := adminPrincipal()
	mrID := uuid.New()

	fx.identityRepo.EXPECT().FindByID(ctx, mrID).Return(&entity.Identity{ID: mrID, Role: entity.RoleMR}, nil)
	fx.targetRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.MRTarget")).Return(nil)

	target, err := fx.service.Create(ctx, admin, &usecase.CreateTargetInput{MRID: mrID, Month: 7, Year: 2024, VisitTarget: 80, SalesTarget: 250000})
	require.NoError(t, err)
	assert.Equal(t, mrID, target.MRID)
	assert.Equal(t, admin.ID, target.CreatedBy)
	assert.Equal(t, 80, target.VisitTarget)
}

func TestTargetService_Create_PeriodTaken(t *testing.T) {
	fx := createTestTargetService(t)

	ctx := context.Background()
	mrID := uuid.New()

	fx.identityRepo.EXPECT().FindByID(ctx, mrID).Return(&entity.Identity{ID: mrID, Role: entity.RoleMR}, nil)
	fx.targetRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.MRTarget")).Return(domainerrors.ErrTargetExists)

	_, err := fx.service.Create(ctx, adminPrincipal(), &usecase.CreateTargetInput{MRID: mrID, Month: 7, Year: 2024})
	require.ErrorIs(t, err, domainerrors.ErrTargetExists)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestTargetService_Create_UnknownMR(t *testing.T) {
	fx := createTestTargetService(t)

	ctx := context.Background()
	mrID := uuid.New()
	fx.identityRepo.EXPECT().FindByID(ctx, mrID).Return(nil, repository.ErrIdentityNotFound)

	_, err := fx.service.Create(ctx, adminPrincipal(), &usecase.CreateTargetInput{MRID: mrID, Month: 7, Year: 2024})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidReference)
}

func TestTargetService_MRWritesForbidden(t *testing.T) {
	fx := createTestTargetService(t)

	ctx := context.Background()
	principal := mrPrincipal()
	id := uuid.New()
	visits := 120

	_, err := fx.service.Create(ctx, principal, &usecase.CreateTargetInput{MRID: principal.ID, Month: 7, Year: 2024})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.service.Update(ctx, principal, id, &usecase.UpdateTargetInput{VisitTarget: &visits})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	err = fx.service.Delete(ctx, principal, id)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestTargetService_Get_OwnTargetOnly(t *testing.T) {
	fx := createTestTargetService(t)

	ctx := context.Background()
	principal := mrPrincipal()
	mine := &entity.MRTarget{ID: uuid.New(), MRID: principal.ID, Month: 7, Year: 2024}
	other := &entity.MRTarget{ID: uuid.New(), MRID: uuid.New(), Month: 7, Year: 2024}

	fx.targetRepo.EXPECT().FindByID(ctx, mine.ID).Return(mine, nil)
	fx.targetRepo.EXPECT().FindByID(ctx, other.ID).Return(other, nil)

	got, err := fx.service.Get(ctx, principal, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, mine, got)

	_, err = fx.service.Get(ctx, principal, other.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestTargetService_Update_Partial(t *testing.T) {
	fx := createTestTargetService(t)

	ctx := context.Background()
	target := &entity.MRTarget{ID: uuid.New(), MRID: uuid.New(), Month: 7, Year: 2024, VisitTarget: 80, OrderTarget: 20}
	orders := 25

	fx.targetRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
	fx.targetRepo.EXPECT().Update(ctx, target).Return(nil)

	updated, err := fx.service.Update(ctx, adminPrincipal(), target.ID, &usecase.UpdateTargetInput{OrderTarget: &orders})
	require.NoError(t, err)
	assert.Equal(t, 80, updated.VisitTarget)
	assert.Equal(t, 25, updated.OrderTarget)
}
