package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderStatusPending, OrderStatusConfirmed, true},
		{OrderStatusPending, OrderStatusShipped, true},
		{OrderStatusConfirmed, OrderStatusDelivered, true},
		{OrderStatusShipped, OrderStatusConfirmed, false},
		{OrderStatusPending, OrderStatusPending, false},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusConfirmed, OrderStatusCancelled, true},
		{OrderStatusProcessing, OrderStatusCancelled, false},
		{OrderStatusShipped, OrderStatusReturned, true},
		{OrderStatusDelivered, OrderStatusReturned, true},
		{OrderStatusPending, OrderStatusReturned, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		{OrderStatusReturned, OrderStatusDelivered, false},
		{OrderStatusPending, OrderStatus("Lost"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatus_IsValid(t *testing.T) {
	assert.True(t, OrderStatusReturned.IsValid())
	assert.True(t, OrderStatusProcessing.IsValid())
	assert.False(t, OrderStatus("pending").IsValid())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.False(t, OrderStatusDelivered.IsTerminal())
}

func TestOrder_Recalculate(t *testing.T) {
	order := &Order{
		Items: []OrderItem{
			{Quantity: 10, UnitPrice: 12.5, Discount: 10, TaxRate: 12},
			{Quantity: 3, UnitPrice: 99.99},
		},
		Financial: OrderFinancial{ShippingCharges: 50, GrandTotal: 1},
	}

	order.Recalculate()

	first := order.Items[0]
	assert.Equal(t, 125.0, first.ItemTotal)
	assert.Equal(t, 12.5, first.DiscountAmount)
	assert.Equal(t, 13.5, first.TaxAmount)
	assert.Equal(t, 126.0, first.NetAmount)

	second := order.Items[1]
	assert.Equal(t, 299.97, second.ItemTotal)
	assert.Equal(t, 299.97, second.NetAmount)

	assert.Equal(t, OrderFinancial{
		Subtotal:        424.97,
		TotalDiscount:   12.5,
		TotalTax:        13.5,
		ShippingCharges: 50,
		GrandTotal:      475.97,
	}, order.Financial)
}

func TestOrder_RecalculateEmpty(t *testing.T) {
	order := &Order{Financial: OrderFinancial{ShippingCharges: 20}}

	order.Recalculate()

	assert.Equal(t, OrderFinancial{ShippingCharges: 20, GrandTotal: 20}, order.Financial)
}
