package impl

import (
	"context"
	"testing"
	"time"

	"medrep/internal/domain/entity"
	domainerrors "medrep/internal/domain/errors"
	"medrep/internal/domain/query"
	"medrep/internal/domain/repository"
	mockRepo "medrep/internal/mocks/repository"
	"medrep/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// activityServiceFixtures holds all test dependencies for activity service tests.
type activityServiceFixtures struct {
	service      usecase.ActivityUsecase
	activityRepo *mockRepo.MockProductActivityRepository
	productRepo  *mockRepo.MockProductRepository
	doctorRepo   *mockRepo.MockDoctorRepository
	identityRepo *mockRepo.MockIdentityRepository
}

func createTestActivityService(t *testing.T) activityServiceFixtures {
	activityRepo := mockRepo.NewMockProductActivityRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	doctorRepo := mockRepo.NewMockDoctorRepository(t)
	identityRepo := mockRepo.NewMockIdentityRepository(t)

	svc := NewActivityService(ActivityServiceParams{
		ActivityRepo: activityRepo,
		ProductRepo:  productRepo,
		DoctorRepo:   doctorRepo,
		IdentityRepo: identityRepo,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return activityServiceFixtures{
		service:      svc,
		activityRepo: activityRepo,
		productRepo:  productRepo,
		doctorRepo:   doctorRepo,
		identityRepo: identityRepo,
	}
}

func TestActivityService_Create_OwnedByMR(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	now := time.Date(2024, 7, 10, 8, 30, 0, 0, time.UTC)
	freezeTime(t, now)
	principal := mrPrincipal()
	productID := uuid.New()
	doctor := &entity.Doctor{ID: uuid.New(), AssignedMRs: []uuid.UUID{principal.ID}}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.doctorRepo.EXPECT().FindByID(ctx, doctor.ID).Return(doctor, nil)
	fx.activityRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.ProductActivityLog")).Return(nil)

	activity, err := fx.service.Create(ctx, principal, &usecase.CreateActivityInput{
		MRID:      uuid.New(),
		ProductID: productID,
		DoctorID:  &doctor.ID,
		Action:    entity.ActivitySample,
		Quantity:  3,
	})
	require.NoError(t, err)
	assert.Equal(t, principal.ID, activity.MRID)
	assert.Equal(t, now, activity.OccurredAt)
	assert.Equal(t, 3, activity.Quantity)
}

func TestActivityService_Create_AdminForOtherMR(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	mrID := uuid.New()
	productID := uuid.New()
	at := time.Date(2024, 7, 9, 15, 0, 0, 0, time.FixedZone("IST", 19800))

	fx.identityRepo.EXPECT().FindByID(ctx, mrID).Return(&entity.Identity{ID: mrID, Role: entity.RoleMR}, nil)
	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.activityRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.ProductActivityLog")).Return(nil)

	activity, err := fx.service.Create(ctx, adminPrincipal(), &usecase.CreateActivityInput{
		MRID:       mrID,
		ProductID:  productID,
		Action:     entity.ActivityDetailing,
		OccurredAt: &at,
	})
	require.NoError(t, err)
	assert.Equal(t, mrID, activity.MRID)
	assert.Equal(t, time.UTC, activity.OccurredAt.Location())
	assert.True(t, at.Equal(activity.OccurredAt))
}

func TestActivityService_Create_UnknownProduct(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	productID := uuid.New()
	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.Create(ctx, mrPrincipal(), &usecase.CreateActivityInput{ProductID: productID, Action: entity.ActivityFeedback})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidReference)
}

func TestActivityService_Create_UnassignedDoctorForbidden(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	productID := uuid.New()
	doctor := &entity.Doctor{ID: uuid.New()}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.doctorRepo.EXPECT().FindByID(ctx, doctor.ID).Return(doctor, nil)

	_, err := fx.service.Create(ctx, mrPrincipal(), &usecase.CreateActivityInput{ProductID: productID, DoctorID: &doctor.ID, Action: entity.ActivitySample})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestActivityService_Summary_ScopedToCaller(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	principal := mrPrincipal()
	want := []entity.ActivitySummary{{ProductID: uuid.New(), Action: entity.ActivitySample, Events: 2, TotalQuantity: 5}}

	fx.activityRepo.EXPECT().
		Summarize(ctx, mock.AnythingOfType("*query.Criteria")).
		Run(func(_ context.Context, criteria *query.Criteria) {
			require.NotNil(t, criteria.OwnerID)
			assert.Equal(t, principal.ID, *criteria.OwnerID)
		}).
		Return(want, nil)

	summary, err := fx.service.Summary(ctx, principal, query.Params{Owner: uuid.New().String()})
	require.NoError(t, err)
	assert.Equal(t, want, summary)
}

func TestActivityService_Summary_AdminFiltersByMR(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	mrID := uuid.New()

	fx.activityRepo.EXPECT().
		Summarize(ctx, mock.AnythingOfType("*query.Criteria")).
		Run(func(_ context.Context, criteria *query.Criteria) {
			require.NotNil(t, criteria.OwnerID)
			assert.Equal(t, mrID, *criteria.OwnerID)
		}).
		Return([]entity.ActivitySummary{}, nil)

	_, err := fx.service.Summary(ctx, adminPrincipal(), query.Params{Owner: mrID.String()})
	require.NoError(t, err)
}
