package usecase

import (
	"context"
	"time"

	"medrep/internal/domain/entity"
	"medrep/internal/domain/query"

	"github.com/google/uuid"
)

// CreateVisitInput records a visit. MRID is honoured for admins only.
// Status defaults to Draft; review statuses cannot be set here.
type CreateVisitInput struct {
	MRID              uuid.UUID           `json:"mr"`
	DoctorID          uuid.UUID           `json:"doctor" validate:"required"`
	VisitDate         time.Time           `json:"visitDate" validate:"required"`
	Purpose           string              `json:"purpose" validate:"omitempty,max=200"`
	ProductsDiscussed []uuid.UUID         `json:"productsDiscussed"`
	SamplesGiven      int                 `json:"samplesGiven" validate:"gte=0"`
	Notes             string              `json:"notes"`
	Feedback          string              `json:"feedback"`
	FollowUpDate      *time.Time          `json:"followUpDate"`
	Location          string              `json:"location"`
	Status            *entity.VisitStatus `json:"status" policy:"terminal"`
}

// UpdateVisitInput is a partial update. Owners may only move between Draft and Submitted.
type UpdateVisitInput struct {
	DoctorID          *uuid.UUID          `json:"doctor"`
	VisitDate         *time.Time          `json:"visitDate"`
	Purpose           *string             `json:"purpose" validate:"omitempty,max=200"`
	ProductsDiscussed *[]uuid.UUID        `json:"productsDiscussed"`
	SamplesGiven      *int                `json:"samplesGiven" validate:"omitempty,gte=0"`
	Notes             *string             `json:"notes"`
	Feedback          *string             `json:"feedback"`
	FollowUpDate      *time.Time          `json:"followUpDate"`
	Location          *string             `json:"location"`
	Status            *entity.VisitStatus `json:"status" policy:"terminal"`
}

// ReviewVisitInput carries the optional rejection reason.
type ReviewVisitInput struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

// VisitUsecase manages visit reports and their review.
type VisitUsecase interface {
	List(ctx context.Context, principal *entity.Principal, params query.Params) (*query.Page[*entity.VisitReport], error)
	Get(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.VisitReport, error)
	Create(ctx context.Context, principal *entity.Principal, input *CreateVisitInput) (*entity.VisitReport, error)
	Update(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *UpdateVisitInput) (*entity.VisitReport, error)
	Delete(ctx context.Context, principal *entity.Principal, id uuid.UUID) error
	Approve(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.VisitReport, error)
	Reject(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *ReviewVisitInput) (*entity.VisitReport, error)
}

// OrderItemInput is one order line. UnitPrice defaults to the catalogue price when zero.
type OrderItemInput struct {
	ProductID uuid.UUID `json:"product" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
	UnitPrice float64   `json:"unitPrice" validate:"gte=0"`
	Discount  float64   `json:"discount" validate:"gte=0,lte=100"`
	TaxRate   float64   `json:"taxRate" validate:"gte=0,lte=100"`
}

// CreateOrderInput places an order. MRID is honoured for admins only. New orders start Pending.
type CreateOrderInput struct {
	MRID                 uuid.UUID        `json:"mr"`
	DoctorID             uuid.UUID        `json:"doctor" validate:"required"`
	Items                []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	ShippingCharges      float64          `json:"shippingCharges" validate:"gte=0"`
	ExpectedDeliveryDate *time.Time       `json:"expectedDeliveryDate"`
	ShippingAddress      string           `json:"shippingAddress"`
	PaymentMethod        string           `json:"paymentMethod"`
	Notes                string           `json:"notes"`
}

// UpdateOrderInput is a partial update of an order's contents. Status changes use the status and cancel actions.
type UpdateOrderInput struct {
	Items                *[]OrderItemInput `json:"items" validate:"omitempty,min=1,dive"`
	ShippingCharges      *float64          `json:"shippingCharges" validate:"omitempty,gte=0"`
	ExpectedDeliveryDate *time.Time        `json:"expectedDeliveryDate"`
	ShippingAddress      *string           `json:"shippingAddress"`
	PaymentMethod        *string           `json:"paymentMethod"`
	Notes                *string           `json:"notes"`
}

// UpdateOrderStatusInput moves an order along its state machine.
type UpdateOrderStatusInput struct {
	Status entity.OrderStatus `json:"status" validate:"required"`
	Notes  string             `json:"notes" validate:"omitempty,max=500"`
}

// CancelOrderInput carries an optional cancellation note.
type CancelOrderInput struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

// OrderUsecase manages orders and their fulfilment state.
type OrderUsecase interface {
	List(ctx context.Context, principal *entity.Principal, params query.Params) (*query.Page[*entity.Order], error)
	Get(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.Order, error)
	Create(ctx context.Context, principal *entity.Principal, input *CreateOrderInput) (*entity.Order, error)
	Update(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *UpdateOrderInput) (*entity.Order, error)
	Delete(ctx context.Context, principal *entity.Principal, id uuid.UUID) error
	UpdateStatus(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *UpdateOrderStatusInput) (*entity.Order, error)
	Cancel(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *CancelOrderInput) (*entity.Order, error)
}

// CreateActivityInput logs a product activity. MRID is honoured for admins only.
type CreateActivityInput struct {
	MRID       uuid.UUID             `json:"mr"`
	ProductID  uuid.UUID             `json:"product" validate:"required"`
	DoctorID   *uuid.UUID            `json:"doctor"`
	Action     entity.ActivityAction `json:"action" validate:"required,oneof=detailing sample prescription feedback"`
	Quantity   int                   `json:"quantity" validate:"gte=0"`
	Notes      string                `json:"notes"`
	OccurredAt *time.Time            `json:"occurredAt"`
}

// ActivityUsecase manages the append-only product activity log.
type ActivityUsecase interface {
	List(ctx context.Context, principal *entity.Principal, params query.Params) (*query.Page[*entity.ProductActivityLog], error)
	Create(ctx context.Context, principal *entity.Principal, input *CreateActivityInput) (*entity.ProductActivityLog, error)
	Summary(ctx context.Context, principal *entity.Principal, params query.Params) ([]entity.ActivitySummary, error)
}
