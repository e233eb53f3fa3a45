package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"medrep/config"
	deliverycontext "medrep/internal/delivery/context"
	"medrep/internal/domain/entity"
	domainerrors "medrep/internal/domain/errors"
	"medrep/internal/domain/policy"
	"medrep/internal/domain/query"
	"medrep/internal/domain/repository"
	"medrep/internal/domain/service"
	"medrep/internal/infra/metrics"
	"medrep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderService struct {
	txManager    repository.TransactionManager
	orderRepo    repository.OrderRepository
	doctorRepo   repository.DoctorRepository
	productRepo  repository.ProductRepository
	identityRepo repository.IdentityRepository
	events       *eventEmitter
	builder      *query.Builder
	logger       *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	OrderRepo    repository.OrderRepository
	DoctorRepo   repository.DoctorRepository
	ProductRepo  repository.ProductRepository
	IdentityRepo repository.IdentityRepository
	Publisher    service.EventPublisher
	Metrics      *metrics.Metrics `optional:"true"`
	Config       *config.Config
	Logger       *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:    params.TxManager,
		orderRepo:    params.OrderRepo,
		doctorRepo:   params.DoctorRepo,
		productRepo:  params.ProductRepo,
		identityRepo: params.IdentityRepo,
		events:       newEventEmitter(params.Publisher, params.Metrics, params.Logger),
		builder:      newQueryBuilder(params.Config),
		logger:       params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func orderTarget(order *entity.Order) *policy.Target {
	return policy.OwnedBy(order.MRID, string(order.Status))
}

func (srv *orderService) List(ctx context.Context, principal *entity.Principal, params query.Params) (*query.Page[*entity.Order], error) {
	decision, err := authorize(principal, policy.KindOrder, policy.OpList, nil)
	if err != nil {
		return nil, err
	}

	criteria, err := srv.builder.Build(decision.Scope, orderSpec, params)
	if err != nil {
		return nil, err
	}

	orders, total, err := srv.orderRepo.List(ctx, criteria)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return query.NewPage(orders, criteria, total), nil
}

func (srv *orderService) Get(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := authorize(principal, policy.KindOrder, policy.OpRead, orderTarget(order)); err != nil {
		return nil, err
	}

	return order, nil
}

// Create places a Pending order. Line prices default to the catalogue unit price.
func (srv *orderService) Create(ctx context.Context, principal *entity.Principal, input *usecase.CreateOrderInput) (*entity.Order, error) {
	decision, err := authorize(principal, policy.KindOrder, policy.OpCreate, nil)
	if err != nil {
		return nil, err
	}
	stripRestricted(ctx, srv.log(ctx), principal, input)

	owner, err := resolveOwner(ctx, srv.identityRepo, principal, decision, input.MRID)
	if err != nil {
		return nil, err
	}
	if _, err := loadReportableDoctor(ctx, srv.doctorRepo, principal, input.DoctorID); err != nil {
		return nil, err
	}

	items, err := srv.buildItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	now := utcNow()
	order := &entity.Order{
		MRID:      owner,
		DoctorID:  input.DoctorID,
		Items:     items,
		Financial: entity.OrderFinancial{ShippingCharges: input.ShippingCharges},
		Status:    entity.OrderStatusPending,
		StatusHistory: []entity.OrderStatusEntry{{
			Status:    entity.OrderStatusPending,
			UpdatedBy: principal.ID,
			Timestamp: now,
			Notes:     "Order placed",
		}},
		Details: entity.OrderDetails{
			OrderDate:            now,
			ExpectedDeliveryDate: input.ExpectedDeliveryDate,
			ShippingAddress:      input.ShippingAddress,
			PaymentMethod:        input.PaymentMethod,
		},
		Notes: input.Notes,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		next, err := repoFactory.NewSequenceRepository().Next(ctx, entity.SequenceOrder)
		if err != nil {
			return errors.Wrap(err, "failed to issue order number")
		}
		order.OrderNumber = entity.FormatBusinessID(entity.SequenceOrder, next)

		return repoFactory.NewOrderRepository().Create(ctx, order)
	})
	if err != nil {
		return nil, storeError(err, nil, nil, "failed to create order")
	}

	srv.log(ctx).Info("Order created",
		slog.String("order_number", order.OrderNumber),
		slog.String("mr_id", owner.String()),
		slog.Float64("grand_total", order.Financial.GrandTotal),
	)

	return order, nil
}

// Update edits items and details. Owners may only edit Pending or Confirmed orders.
func (srv *orderService) Update(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *usecase.UpdateOrderInput) (*entity.Order, error) {
	order, err := srv.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := authorize(principal, policy.KindOrder, policy.OpUpdate, orderTarget(order)); err != nil {
		return nil, err
	}
	if order.Status.IsTerminal() {
		return nil, domainerrors.ErrInvalidState.WithDetails("Order is " + string(order.Status))
	}

	expected := order.Status
	if input.Items != nil {
		items, err := srv.buildItems(ctx, *input.Items)
		if err != nil {
			return nil, err
		}
		order.Items = items
	}
	setIf(&order.Financial.ShippingCharges, input.ShippingCharges)
	if input.ExpectedDeliveryDate != nil {
		order.Details.ExpectedDeliveryDate = input.ExpectedDeliveryDate
	}
	setIf(&order.Details.ShippingAddress, input.ShippingAddress)
	setIf(&order.Details.PaymentMethod, input.PaymentMethod)
	setIf(&order.Notes, input.Notes)

	if err := srv.orderRepo.Update(ctx, order, expected); err != nil {
		return nil, staleError(err, repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound, "failed to update order")
	}

	return order, nil
}

func (srv *orderService) Delete(ctx context.Context, principal *entity.Principal, id uuid.UUID) error {
	order, err := srv.load(ctx, id)
	if err != nil {
		return err
	}

	if _, err := authorize(principal, policy.KindOrder, policy.OpDelete, orderTarget(order)); err != nil {
		return err
	}

	if err := srv.orderRepo.Delete(ctx, id, order.Status); err != nil {
		return staleError(err, repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound, "failed to delete order")
	}

	srv.log(ctx).Info("Order deleted", slog.String("order_number", order.OrderNumber))

	return nil
}

// UpdateStatus moves an order along its state machine. Admin only.
func (srv *orderService) UpdateStatus(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	if _, err := authorize(principal, policy.KindOrder, policy.OpTransition, nil); err != nil {
		return nil, err
	}

	order, err := srv.load(ctx, id)
	if err != nil {
		return nil, err
	}

	return srv.transition(ctx, principal, order, input.Status, input.Notes)
}

// Cancel cancels a Pending or Confirmed order for its owner or an admin.
func (srv *orderService) Cancel(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *usecase.CancelOrderInput) (*entity.Order, error) {
	order, err := srv.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := authorize(principal, policy.KindOrder, policy.OpCancel, orderTarget(order)); err != nil {
		return nil, err
	}

	notes := "Order cancelled"
	if input != nil && input.Reason != "" {
		notes = input.Reason
	}

	return srv.transition(ctx, principal, order, entity.OrderStatusCancelled, notes)
}

func (srv *orderService) transition(ctx context.Context, principal *entity.Principal, order *entity.Order, to entity.OrderStatus, notes string) (*entity.Order, error) {
	if !to.IsValid() {
		return nil, domainerrors.ErrInvalidTransition.WithDetails("Unknown order status: " + string(to))
	}
	from := order.Status
	if !from.CanTransitionTo(to) {
		return nil, domainerrors.ErrInvalidTransition.WithDetails("Cannot move order from " + string(from) + " to " + string(to))
	}

	now := utcNow()
	entry := entity.OrderStatusEntry{
		Status:    to,
		UpdatedBy: principal.ID,
		Timestamp: now,
		Notes:     notes,
	}
	var deliveredAt *time.Time
	if to == entity.OrderStatusDelivered {
		deliveredAt = &now
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewOrderRepository().TransitionStatus(ctx, order.ID, from, entry, deliveredAt)
	})
	if err != nil {
		return nil, staleError(err, repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound, "failed to update order status")
	}

	order.Status = to
	order.StatusHistory = append(order.StatusHistory, entry)
	if deliveredAt != nil {
		order.Details.ActualDeliveryDate = deliveredAt
	}

	srv.log(ctx).Info("Order status changed",
		slog.String("order_number", order.OrderNumber),
		slog.String("from", string(from)),
		slog.String("to", string(to)),
	)

	srv.events.emit(ctx, &service.WorkflowEvent{
		Type:       service.EventOrderStatusChanged,
		ResourceID: order.ID.String(),
		ActorID:    principal.ID.String(),
		OwnerID:    order.MRID.String(),
		Status:     string(to),
		OccurredAt: now,
		Attributes: map[string]string{
			"order_number":    order.OrderNumber,
			"previous_status": string(from),
		},
	})

	return order, nil
}

// buildItems resolves every line against the active catalogue.
func (srv *orderService) buildItems(ctx context.Context, inputs []usecase.OrderItemInput) ([]entity.OrderItem, error) {
	ids := make([]uuid.UUID, 0, len(inputs))
	for _, in := range inputs {
		ids = append(ids, in.ProductID)
	}

	products, err := srv.productRepo.FindByIDs(ctx, dedupe(ids))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order products")
	}
	byID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	verr := domainerrors.NewValidationError()
	items := make([]entity.OrderItem, 0, len(inputs))
	for i, in := range inputs {
		field := "items[" + strconv.Itoa(i) + "].product"
		product, ok := byID[in.ProductID]
		switch {
		case !ok:
			verr.Add(field, "product does not exist")
			continue
		case !product.IsActive || product.IsDiscontinued:
			verr.Add(field, "product "+product.ProductCode+" is not available")
			continue
		}

		price := in.UnitPrice
		if price == 0 {
			price = product.UnitPrice
		}
		items = append(items, entity.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    in.Quantity,
			UnitPrice:   price,
			Discount:    in.Discount,
			TaxRate:     in.TaxRate,
		})
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	return items, nil
}

func (srv *orderService) load(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound, "failed to load order")
	}

	return order, nil
}
