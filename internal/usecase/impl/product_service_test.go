package impl

import (
	"context"
	"testing"

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

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service      usecase.ProductUsecase
	txManager    *mockRepo.MockTransactionManager
	repoFactory  *mockRepo.MockRepositoryFactory
	productRepo  *mockRepo.MockProductRepository
	sequenceRepo *mockRepo.MockSequenceRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	sequenceRepo := mockRepo.NewMockSequenceRepository(t)

	svc := NewProductService(ProductServiceParams{
		TxManager:   txManager,
		ProductRepo: productRepo,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return productServiceFixtures{
		service:      svc,
		txManager:    txManager,
		repoFactory:  repoFactory,
		productRepo:  productRepo,
		sequenceRepo: sequenceRepo,
	}
}

func TestProductService_Create_IssuesCode(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	expectTx(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().NewSequenceRepository().Return(fx.sequenceRepo)
	fx.sequenceRepo.EXPECT().Next(ctx, entity.SequenceProduct).Return(int64(12), nil)
	fx.repoFactory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := fx.service.Create(ctx, adminPrincipal(), &usecase.CreateProductInput{
		Name:      "Amoxicillin 500",
		Category:  "Antibiotic",
		MRP:       60,
		UnitPrice: 42.5,
	})
	require.NoError(t, err)
	assert.Equal(t, "PRD000012", product.ProductCode)
	assert.True(t, product.IsActive)
	assert.False(t, product.IsDiscontinued)
}

func TestProductService_MRWritesForbidden(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	principal := mrPrincipal()
	id := uuid.New()
	name := "Renamed"

	_, err := fx.service.Create(ctx, principal, &usecase.CreateProductInput{Name: "Amoxicillin 500", Category: "Antibiotic"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.service.Update(ctx, principal, id, &usecase.UpdateProductInput{Name: &name})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	err = fx.service.Delete(ctx, principal, id)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestProductService_Update_Partial(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), ProductCode: "PRD000003", Name: "Paracetamol 650", UnitPrice: 30, IsActive: true}
	price := 32.0
	discontinued := true

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().Update(ctx, product).Return(nil)

	updated, err := fx.service.Update(ctx, adminPrincipal(), product.ID, &usecase.UpdateProductInput{UnitPrice: &price, IsDiscontinued: &discontinued})
	require.NoError(t, err)
	assert.Equal(t, "Paracetamol 650", updated.Name)
	assert.Equal(t, 32.0, updated.UnitPrice)
	assert.True(t, updated.IsDiscontinued)
}

func TestProductService_Delete_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.productRepo.EXPECT().Delete(ctx, id).Return(repository.ErrProductNotFound)

	err := fx.service.Delete(ctx, adminPrincipal(), id)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_List_IgnoresOwner(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		List(ctx, mock.AnythingOfType("*query.Criteria")).
		Run(func(_ context.Context, criteria *query.Criteria) {
			assert.Nil(t, criteria.OwnerID)
		}).
		Return([]*entity.Product{{ID: uuid.New()}}, int64(1), nil)

	page, err := fx.service.List(ctx, mrPrincipal(), query.Params{})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
}
