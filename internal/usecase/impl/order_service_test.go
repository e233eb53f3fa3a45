package impl

import (
	"context"
	"testing"
	"time"

	"medrep/internal/domain/entity"
	domainerrors "medrep/internal/domain/errors"
	"medrep/internal/domain/repository"
	"medrep/internal/domain/service"
	mockRepo "medrep/internal/mocks/repository"
	mockSvc "medrep/internal/mocks/service"
	"medrep/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service      usecase.OrderUsecase
	txManager    *mockRepo.MockTransactionManager
	repoFactory  *mockRepo.MockRepositoryFactory
	orderRepo    *mockRepo.MockOrderRepository
	doctorRepo   *mockRepo.MockDoctorRepository
	productRepo  *mockRepo.MockProductRepository
	identityRepo *mockRepo.MockIdentityRepository
	sequenceRepo *mockRepo.MockSequenceRepository
	publisher    *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	doctorRepo := mockRepo.NewMockDoctorRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	identityRepo := mockRepo.NewMockIdentityRepository(t)
	sequenceRepo := mockRepo.NewMockSequenceRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewOrderService(OrderServiceParams{
		TxManager:    txManager,
		OrderRepo:    orderRepo,
		DoctorRepo:   doctorRepo,
		ProductRepo:  productRepo,
		IdentityRepo: identityRepo,
		Publisher:    publisher,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:      svc,
		txManager:    txManager,
		repoFactory:  repoFactory,
		orderRepo:    orderRepo,
		doctorRepo:   doctorRepo,
		productRepo:  productRepo,
		identityRepo: identityRepo,
		sequenceRepo: sequenceRepo,
		publisher:    publisher,
	}
}

func TestOrderService_Create_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	now := time.Date(2024, 7, 10, 8, 30, 0, 0, time.UTC)
	freezeTime(t, now)
	principal := mrPrincipal()
	doctorID := uuid.New()
	product := &entity.Product{ID: uuid.New(), ProductCode: "PRD000001", Name: "Amoxicillin 500", UnitPrice: 42.5, IsActive: true}

	fx.doctorRepo.EXPECT().FindByID(ctx, doctorID).Return(&entity.Doctor{ID: doctorID, AssignedMRs: []uuid.UUID{principal.ID}}, nil)
	fx.productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{product.ID}).Return([]*entity.Product{product}, nil)
	expectTx(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().NewSequenceRepository().Return(fx.sequenceRepo)
	fx.sequenceRepo.EXPECT().Next(ctx, entity.SequenceOrder).Return(int64(42), nil)
	fx.repoFactory.EXPECT().NewOrderRepository().Return(fx.orderRepo)
	fx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	order, err := fx.service.Create(ctx, principal, &usecase.CreateOrderInput{
		DoctorID: doctorID,
		Items: []usecase.OrderItemInput{
			{ProductID: product.ID, Quantity: 2},
			{ProductID: product.ID, Quantity: 1, UnitPrice: 40},
		},
		ShippingCharges: 15,
	})
	require.NoError(t, err)
	assert.Equal(t, "ORD000042", order.OrderNumber)
	assert.Equal(t, principal.ID, order.MRID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, now, order.Details.OrderDate)
	assert.Equal(t, 15.0, order.Financial.ShippingCharges)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 42.5, order.Items[0].UnitPrice)
	assert.Equal(t, "Amoxicillin 500", order.Items[0].ProductName)
	assert.Equal(t, 40.0, order.Items[1].UnitPrice)
	assert.Equal(t, []entity.OrderStatusEntry{{
		Status:    entity.OrderStatusPending,
		UpdatedBy: principal.ID,
		Timestamp: now,
		Notes:     "Order placed",
	}}, order.StatusHistory)
}

func TestOrderService_Create_UnavailableProducts(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	principal := mrPrincipal()
	doctorID := uuid.New()
	missing := uuid.New()
	discontinued := &entity.Product{ID: uuid.New(), ProductCode: "PRD000009", IsActive: true, IsDiscontinued: true}

	fx.doctorRepo.EXPECT().FindByID(ctx, doctorID).Return(&entity.Doctor{ID: doctorID, AssignedMRs: []uuid.UUID{principal.ID}}, nil)
	fx.productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{missing, discontinued.ID}).Return([]*entity.Product{discontinued}, nil)

	_, err := fx.service.Create(ctx, principal, &usecase.CreateOrderInput{
		DoctorID: doctorID,
		Items: []usecase.OrderItemInput{
			{ProductID: missing, Quantity: 1},
			{ProductID: discontinued.ID, Quantity: 1},
		},
	})

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []domainerrors.FieldError{
		{Field: "items[0].product", Message: "product does not exist"},
		{Field: "items[1].product", Message: "product PRD000009 is not available"},
	}, verr.Fields)
}

func TestOrderService_Create_UnassignedDoctorForbidden(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	doctor := &entity.Doctor{ID: uuid.New(), AssignedMRs: []uuid.UUID{uuid.New()}}
	fx.doctorRepo.EXPECT().FindByID(ctx, doctor.ID).Return(doctor, nil)

	_, err := fx.service.Create(ctx, mrPrincipal(), &usecase.CreateOrderInput{
		DoctorID: doctor.ID,
		Items:    []usecase.OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_UpdateStatus_AdminSkipsForward(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	admin := adminPrincipal()
	order := &entity.Order{ID: uuid.New(), OrderNumber: "ORD000001", MRID: uuid.New(), Status: entity.OrderStatusPending}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	expectTx(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().NewOrderRepository().Return(fx.orderRepo)
	fx.orderRepo.EXPECT().
		TransitionStatus(ctx, order.ID, entity.OrderStatusPending, mock.AnythingOfType("entity.OrderStatusEntry"), (*time.Time)(nil)).
		Return(nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.WorkflowEvent")).
		Run(func(_ context.Context, event *service.WorkflowEvent) {
			assert.Equal(t, service.EventOrderStatusChanged, event.Type)
			assert.Equal(t, "Shipped", event.Status)
			assert.Equal(t, "Pending", event.Attributes["previous_status"])
		}).
		Return(nil)

	updated, err := fx.service.UpdateStatus(ctx, admin, order.ID, &usecase.UpdateOrderStatusInput{Status: entity.OrderStatusShipped, Notes: "Dispatched"})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, updated.Status)
	require.Len(t, updated.StatusHistory, 1)
	assert.Equal(t, "Dispatched", updated.StatusHistory[0].Notes)
	assert.Equal(t, admin.ID, updated.StatusHistory[0].UpdatedBy)
}

func TestOrderService_UpdateStatus_DeliveredStampsDate(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	now := time.Date(2024, 7, 12, 16, 0, 0, 0, time.UTC)
	freezeTime(t, now)
	order := &entity.Order{ID: uuid.New(), MRID: uuid.New(), Status: entity.OrderStatusShipped}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	expectTx(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().NewOrderRepository().Return(fx.orderRepo)
	fx.orderRepo.EXPECT().
		TransitionStatus(ctx, order.ID, entity.OrderStatusShipped, mock.AnythingOfType("entity.OrderStatusEntry"), &now).
		Return(nil)
	fx.publisher.EXPECT().Publish(ctx, mock.AnythingOfType("*service.WorkflowEvent")).Return(nil)

	updated, err := fx.service.UpdateStatus(ctx, adminPrincipal(), order.ID, &usecase.UpdateOrderStatusInput{Status: entity.OrderStatusDelivered})
	require.NoError(t, err)
	require.NotNil(t, updated.Details.ActualDeliveryDate)
	assert.Equal(t, now, *updated.Details.ActualDeliveryDate)
}

func TestOrderService_UpdateStatus_Backwards(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), MRID: uuid.New(), Status: entity.OrderStatusShipped}
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.UpdateStatus(ctx, adminPrincipal(), order.ID, &usecase.UpdateOrderStatusInput{Status: entity.OrderStatusConfirmed})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestOrderService_UpdateStatus_MRForbidden(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.UpdateStatus(context.Background(), mrPrincipal(), uuid.New(), &usecase.UpdateOrderStatusInput{Status: entity.OrderStatusConfirmed})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_UpdateStatus_LostRace(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), MRID: uuid.New(), Status: entity.OrderStatusPending}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	expectTx(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().NewOrderRepository().Return(fx.orderRepo)
	fx.orderRepo.EXPECT().
		TransitionStatus(ctx, order.ID, entity.OrderStatusPending, mock.AnythingOfType("entity.OrderStatusEntry"), (*time.Time)(nil)).
		Return(repository.ErrStaleState)

	_, err := fx.service.UpdateStatus(ctx, adminPrincipal(), order.ID, &usecase.UpdateOrderStatusInput{Status: entity.OrderStatusConfirmed})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidState)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
}

func TestOrderService_Cancel_Owner(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	principal := mrPrincipal()
	order := &entity.Order{ID: uuid.New(), MRID: principal.ID, Status: entity.OrderStatusConfirmed}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	expectTx(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().NewOrderRepository().Return(fx.orderRepo)
	fx.orderRepo.EXPECT().
		TransitionStatus(ctx, order.ID, entity.OrderStatusConfirmed, mock.AnythingOfType("entity.OrderStatusEntry"), (*time.Time)(nil)).
		Return(nil)
	fx.publisher.EXPECT().Publish(ctx, mock.AnythingOfType("*service.WorkflowEvent")).Return(nil)

	cancelled, err := fx.service.Cancel(ctx, principal, order.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)
	assert.Equal(t, "Order cancelled", cancelled.StatusHistory[0].Notes)
}

func TestOrderService_Cancel_OwnerAfterProcessing(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	principal := mrPrincipal()
	order := &entity.Order{ID: uuid.New(), MRID: principal.ID, Status: entity.OrderStatusProcessing}
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.Cancel(ctx, principal, order.ID, &usecase.CancelOrderInput{Reason: "Doctor changed mind"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidState)
}

func TestOrderService_Update_TerminalForAdmin(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), MRID: uuid.New(), Status: entity.OrderStatusCancelled}
	notes := "late"
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.Update(ctx, adminPrincipal(), order.ID, &usecase.UpdateOrderInput{Notes: &notes})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidState)
}

func TestOrderService_Update_LostRace(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	principal := mrPrincipal()
	order := &entity.Order{ID: uuid.New(), MRID: principal.ID, Status: entity.OrderStatusPending}
	notes := "call before delivery"
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().Update(ctx, order, entity.OrderStatusPending).Return(repository.ErrStaleState)

	_, err := fx.service.Update(ctx, principal, order.ID, &usecase.UpdateOrderInput{Notes: &notes})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidState)
}

func TestOrderService_Delete_GuardsLoadedStatus(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	principal := mrPrincipal()
	order := &entity.Order{ID: uuid.New(), OrderNumber: "ORD000007", MRID: principal.ID, Status: entity.OrderStatusConfirmed}
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().Delete(ctx, order.ID, entity.OrderStatusConfirmed).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, principal, order.ID))
}

func TestOrderService_Delete_LostRace(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	principal := mrPrincipal()
	order := &entity.Order{ID: uuid.New(), MRID: principal.ID, Status: entity.OrderStatusPending}
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().Delete(ctx, order.ID, entity.OrderStatusPending).Return(repository.ErrStaleState)

	err := fx.service.Delete(ctx, principal, order.ID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidState)
}
