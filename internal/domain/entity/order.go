package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusConfirmed  OrderStatus = "Confirmed"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
	OrderStatusReturned   OrderStatus = "Returned"
)

// forward path rank; side exits are not ranked
var orderForwardRank = map[OrderStatus]int{
	OrderStatusPending:    1,
	OrderStatusConfirmed:  2,
	OrderStatusProcessing: 3,
	OrderStatusShipped:    4,
	OrderStatusDelivered:  5,
}

// OrderMutableStatuses are the states in which the owning MR may edit, cancel or delete an order.
var OrderMutableStatuses = []string{string(OrderStatusPending), string(OrderStatusConfirmed)}

// IsValid checks if the status is a known value.
func (s OrderStatus) IsValid() bool {
	if _, ok := orderForwardRank[s]; ok {
		return true
	}

	return s == OrderStatusCancelled || s == OrderStatusReturned
}

// IsTerminal reports whether the status can no longer change.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCancelled || s == OrderStatusReturned
}

// CanTransitionTo reports whether from -> to is a legal move.
// The forward path may skip steps but never goes backwards.
func (s OrderStatus) CanTransitionTo(to OrderStatus) bool {
	if s == to || s.IsTerminal() {
		return false
	}

	switch to {
	case OrderStatusCancelled:
		return s == OrderStatusPending || s == OrderStatusConfirmed
	case OrderStatusReturned:
		return s == OrderStatusShipped || s == OrderStatusDelivered
	}

	fromRank, okFrom := orderForwardRank[s]
	toRank, okTo := orderForwardRank[to]

	return okFrom && okTo && toRank > fromRank
}

// OrderItem is a single order line. Discount and TaxRate are percentages.
type OrderItem struct {
	ProductID      uuid.UUID `json:"product"`
	ProductName    string    `json:"productName,omitempty"`
	Quantity       int       `json:"quantity"`
	UnitPrice      float64   `json:"unitPrice"`
	Discount       float64   `json:"discount"`
	TaxRate        float64   `json:"taxRate"`
	ItemTotal      float64   `json:"itemTotal"`
	DiscountAmount float64   `json:"discountAmount"`
	TaxAmount      float64   `json:"taxAmount"`
	NetAmount      float64   `json:"netAmount"`
}

// OrderFinancial holds the order totals.
type OrderFinancial struct {
	Subtotal        float64 `json:"subtotal"`
	TotalDiscount   float64 `json:"totalDiscount"`
	TotalTax        float64 `json:"totalTax"`
	ShippingCharges float64 `json:"shippingCharges"`
	GrandTotal      float64 `json:"grandTotal"`
}

// OrderStatusEntry is one immutable record in an order's status history.
type OrderStatusEntry struct {
	Status    OrderStatus `json:"status"`
	UpdatedBy uuid.UUID   `json:"updatedBy"`
	Timestamp time.Time   `json:"timestamp"`
	Notes     string      `json:"notes,omitempty"`
}

type OrderDetails struct {
	OrderDate            time.Time  `json:"orderDate"`
	ExpectedDeliveryDate *time.Time `json:"expectedDeliveryDate,omitempty"`
	ActualDeliveryDate   *time.Time `json:"actualDeliveryDate,omitempty"`
	ShippingAddress      string     `json:"shippingAddress,omitempty"`
	PaymentMethod        string     `json:"paymentMethod,omitempty"`
}

// Order is placed by an MR on behalf of a doctor.
type Order struct {
	ID            uuid.UUID          `json:"id"`
	OrderNumber   string             `json:"orderNumber"`
	MRID          uuid.UUID          `json:"mr"`
	DoctorID      uuid.UUID          `json:"doctor"`
	Items         []OrderItem        `json:"items"`
	Financial     OrderFinancial     `json:"financial"`
	Status        OrderStatus        `json:"status"`
	StatusHistory []OrderStatusEntry `json:"statusHistory"`
	Details       OrderDetails       `json:"orderDetails"`
	Notes         string             `json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// Recalculate derives every line amount and the order totals from quantities, prices and rates.
// It is called on every save so stored totals never drift from the items.
func (o *Order) Recalculate() {
	var fin OrderFinancial
	fin.ShippingCharges = roundMoney(o.Financial.ShippingCharges)

	for i := range o.Items {
		item := &o.Items[i]
		item.ItemTotal = roundMoney(float64(item.Quantity) * item.UnitPrice)
		item.DiscountAmount = roundMoney(item.ItemTotal * item.Discount / 100)
		item.TaxAmount = roundMoney((item.ItemTotal - item.DiscountAmount) * item.TaxRate / 100)
		item.NetAmount = roundMoney(item.ItemTotal - item.DiscountAmount + item.TaxAmount)

		fin.Subtotal += item.ItemTotal
		fin.TotalDiscount += item.DiscountAmount
		fin.TotalTax += item.TaxAmount
	}

	fin.Subtotal = roundMoney(fin.Subtotal)
	fin.TotalDiscount = roundMoney(fin.TotalDiscount)
	fin.TotalTax = roundMoney(fin.TotalTax)
	fin.GrandTotal = roundMoney(fin.Subtotal - fin.TotalDiscount + fin.TotalTax + fin.ShippingCharges)
	o.Financial = fin
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
