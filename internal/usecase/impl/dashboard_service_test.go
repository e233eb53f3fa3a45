package impl

import (
	"context"
	"testing"
	"time"

	"medrep/internal/domain/entity"
	domainerrors "medrep/internal/domain/errors"
	"medrep/internal/domain/repository"
	mockRepo "medrep/internal/mocks/repository"
	"medrep/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dashboardServiceFixtures holds all test dependencies for dashboard service tests.
type dashboardServiceFixtures struct {
	service      usecase.DashboardUsecase
	identityRepo *mockRepo.MockIdentityRepository
	doctorRepo   *mockRepo.MockDoctorRepository
	productRepo  *mockRepo.MockProductRepository
	visitRepo    *mockRepo.MockVisitReportRepository
	orderRepo    *mockRepo.MockOrderRepository
	targetRepo   *mockRepo.MockMRTargetRepository
	perfRepo     *mockRepo.MockMRPerformanceRepository
	requestRepo  *mockRepo.MockMRRequestRepository
}

func createTestDashboardService(t *testing.T) dashboardServiceFixtures {
	fx := dashboardServiceFixtures{
		identityRepo: mockRepo.NewMockIdentityRepository(t),
		doctorRepo:   mockRepo.NewMockDoctorRepository(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
		visitRepo:    mockRepo.NewMockVisitReportRepository(t),
		orderRepo:    mockRepo.NewMockOrderRepository(t),
		targetRepo:   mockRepo.NewMockMRTargetRepository(t),
		perfRepo:     mockRepo.NewMockMRPerformanceRepository(t),
		requestRepo:  mockRepo.NewMockMRRequestRepository(t),
	}

	fx.service = NewDashboardService(DashboardServiceParams{
		IdentityRepo: fx.identityRepo,
		DoctorRepo:   fx.doctorRepo,
		ProductRepo:  fx.productRepo,
		VisitRepo:    fx.visitRepo,
		OrderRepo:    fx.orderRepo,
		TargetRepo:   fx.targetRepo,
		PerfRepo:     fx.perfRepo,
		RequestRepo:  fx.requestRepo,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func TestDashboardService_Admin(t *testing.T) {
	fx := createTestDashboardService(t)

	ctx := context.Background()
	orders := []entity.StatusCount{
		{Status: "Pending", Count: 3, Value: 1200},
		{Status: "Delivered", Count: 5, Value: 8800},
		{Status: "Cancelled", Count: 2, Value: 700},
		{Status: "Returned", Count: 1, Value: 300},
	}

	fx.identityRepo.EXPECT().CountActiveByRole(ctx, entity.RoleMR).Return(int64(12), nil)
	fx.doctorRepo.EXPECT().CountActive(ctx, (*uuid.UUID)(nil)).Return(int64(140), nil)
	fx.productRepo.EXPECT().CountActive(ctx).Return(int64(35), nil)
	fx.requestRepo.EXPECT().CountPending(ctx).Return(int64(4), nil)
	fx.visitRepo.EXPECT().CountByStatus(ctx, (*uuid.UUID)(nil)).Return([]entity.StatusCount{{Status: "Draft", Count: 9}}, nil)
	fx.orderRepo.EXPECT().CountByStatus(ctx, (*uuid.UUID)(nil)).Return(orders, nil)

	board, err := fx.service.Admin(ctx, adminPrincipal())
	require.NoError(t, err)
	assert.Equal(t, int64(12), board.ActiveMRs)
	assert.Equal(t, int64(140), board.ActiveDoctors)
	assert.Equal(t, int64(35), board.ActiveProducts)
	assert.Equal(t, int64(4), board.PendingMRRequests)
	assert.Equal(t, 10000.0, board.Revenue)
}

func TestDashboardService_Admin_MRForbidden(t *testing.T) {
	fx := createTestDashboardService(t)

	_, err := fx.service.Admin(context.Background(), mrPrincipal())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDashboardService_MR_OwnFiguresOnly(t *testing.T) {
	fx := createTestDashboardService(t)

	ctx := context.Background()
	freezeTime(t, time.Date(2024, 9, 18, 12, 0, 0, 0, time.UTC))
	principal := mrPrincipal()
	self := principal.ID
	period := entity.Period{Month: 9, Year: 2024}
	target := &entity.MRTarget{MRID: self, Month: 9, Year: 2024, SalesTarget: 50000}

	fx.doctorRepo.EXPECT().CountActive(ctx, &self).Return(int64(22), nil)
	fx.visitRepo.EXPECT().CountByStatus(ctx, &self).Return([]entity.StatusCount{{Status: "Approved", Count: 14}}, nil)
	fx.orderRepo.EXPECT().CountByStatus(ctx, &self).Return([]entity.StatusCount{{Status: "Shipped", Count: 2, Value: 2400}}, nil)
	fx.targetRepo.EXPECT().FindByPeriod(ctx, self, period).Return(target, nil)
	fx.perfRepo.EXPECT().FindByPeriod(ctx, self, period).Return(nil, repository.ErrPerformanceNotFound)

	board, err := fx.service.MR(ctx, principal)
	require.NoError(t, err)
	assert.Equal(t, period, board.Period)
	assert.Equal(t, int64(22), board.AssignedDoctors)
	assert.Equal(t, 2400.0, board.Revenue)
	assert.Equal(t, target, board.Target)
	assert.Nil(t, board.Performance)
}

func TestDashboardService_MR_Unauthenticated(t *testing.T) {
	fx := createTestDashboardService(t)

	_, err := fx.service.MR(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
