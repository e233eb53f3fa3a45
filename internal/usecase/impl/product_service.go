package impl

import (
	"context"
	"log/slog"

	"medrep/config"
	deliverycontext "medrep/internal/delivery/context"
	"medrep/internal/domain/entity"
	domainerrors "medrep/internal/domain/errors"
	"medrep/internal/domain/policy"
	"medrep/internal/domain/query"
	"medrep/internal/domain/repository"
	"medrep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	builder     *query.Builder
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		builder:     newQueryBuilder(params.Config),
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) List(ctx context.Context, principal *entity.Principal, params query.Params) (*query.Page[*entity.Product], error) {
	decision, err := authorize(principal, policy.KindProduct, policy.OpList, nil)
	if err != nil {
		return nil, err
	}

	criteria, err := srv.builder.Build(decision.Scope, productSpec, params)
	if err != nil {
		return nil, err
	}
	// products have no owner
	criteria.OwnerID = nil

	products, total, err := srv.productRepo.List(ctx, criteria)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return query.NewPage(products, criteria, total), nil
}

func (srv *productService) Get(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.Product, error) {
	if _, err := authorize(principal, policy.KindProduct, policy.OpRead, nil); err != nil {
		return nil, err
	}

	return srv.load(ctx, id)
}

// Create adds a catalogue item with the next product code.
func (srv *productService) Create(ctx context.Context, principal *entity.Principal, input *usecase.CreateProductInput) (*entity.Product, error) {
	if _, err := authorize(principal, policy.KindProduct, policy.OpCreate, nil); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:           input.Name,
		Category:       input.Category,
		Composition:    input.Composition,
		Description:    input.Description,
		Manufacturer:   input.Manufacturer,
		MRP:            input.MRP,
		UnitPrice:      input.UnitPrice,
		PackSize:       input.PackSize,
		IsActive:       true,
		IsDiscontinued: input.IsDiscontinued,
	}
	setIf(&product.IsActive, input.IsActive)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		next, err := repoFactory.NewSequenceRepository().Next(ctx, entity.SequenceProduct)
		if err != nil {
			return errors.Wrap(err, "failed to issue product code")
		}
		product.ProductCode = entity.FormatBusinessID(entity.SequenceProduct, next)

		return repoFactory.NewProductRepository().Create(ctx, product)
	})
	if err != nil {
		return nil, storeError(err, nil, nil, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.String("product_id", product.ID.String()), slog.String("product_code", product.ProductCode))

	return product, nil
}

func (srv *productService) Update(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	if _, err := authorize(principal, policy.KindProduct, policy.OpUpdate, nil); err != nil {
		return nil, err
	}

	product, err := srv.load(ctx, id)
	if err != nil {
		return nil, err
	}

	setIf(&product.Name, input.Name)
	setIf(&product.Category, input.Category)
	setIf(&product.Composition, input.Composition)
	setIf(&product.Description, input.Description)
	setIf(&product.Manufacturer, input.Manufacturer)
	setIf(&product.MRP, input.MRP)
	setIf(&product.UnitPrice, input.UnitPrice)
	setIf(&product.PackSize, input.PackSize)
	setIf(&product.IsActive, input.IsActive)
	setIf(&product.IsDiscontinued, input.IsDiscontinued)

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, storeError(err, repository.ErrProductNotFound, domainerrors.ErrProductNotFound, "failed to update product")
	}

	return product, nil
}

func (srv *productService) Delete(ctx context.Context, principal *entity.Principal, id uuid.UUID) error {
	if _, err := authorize(principal, policy.KindProduct, policy.OpDelete, nil); err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, id); err != nil {
		return storeError(err, repository.ErrProductNotFound, domainerrors.ErrProductNotFound, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.String("product_id", id.String()))

	return nil
}

func (srv *productService) load(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, repository.ErrProductNotFound, domainerrors.ErrProductNotFound, "failed to load product")
	}

	return product, nil
}
