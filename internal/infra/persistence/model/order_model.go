package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderModel mirrors the 'orders' table. Financial totals and order details are flattened into columns.
type OrderModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber          string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	MRID                 uuid.UUID `gorm:"column:mr_id;type:uuid;index;not null"`
	DoctorID             uuid.UUID `gorm:"type:uuid;index;not null"`
	Status               string    `gorm:"type:varchar(20);index;not null"`
	Subtotal             float64   `gorm:"not null;default:0"`
	TotalDiscount        float64   `gorm:"not null;default:0"`
	TotalTax             float64   `gorm:"not null;default:0"`
	ShippingCharges      float64   `gorm:"not null;default:0"`
	GrandTotal           float64   `gorm:"not null;default:0"`
	OrderDate            time.Time `gorm:"index;not null"`
	ExpectedDeliveryDate *time.Time
	ActualDeliveryDate   *time.Time
	ShippingAddress      string `gorm:"type:text"`
	PaymentMethod        string `gorm:"type:varchar(50)"`
	Notes                string `gorm:"type:text"`
	CreatedAt            time.Time
	UpdatedAt            time.Time

	Items   []OrderItemModel          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	History []OrderStatusHistoryModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// BeforeCreate issues the primary key.
func (m *OrderModel) BeforeCreate(*gorm.DB) error {
	assignID(&m.ID)

	return nil
}

// OrderItemModel mirrors the 'order_items' table.
type OrderItemModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;index;not null"`
	Position       int       `gorm:"not null"`
	ProductID      uuid.UUID `gorm:"type:uuid;not null"`
	ProductName    string    `gorm:"type:varchar(150)"`
	Quantity       int       `gorm:"not null"`
	UnitPrice      float64   `gorm:"not null"`
	Discount       float64   `gorm:"not null;default:0"`
	TaxRate        float64   `gorm:"not null;default:0"`
	ItemTotal      float64   `gorm:"not null"`
	DiscountAmount float64   `gorm:"not null"`
	TaxAmount      float64   `gorm:"not null"`
	NetAmount      float64   `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// BeforeCreate issues the primary key.
func (m *OrderItemModel) BeforeCreate(*gorm.DB) error {
	assignID(&m.ID)

	return nil
}

// OrderStatusHistoryModel mirrors the append-only 'order_status_history' table.
type OrderStatusHistoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Status    string    `gorm:"type:varchar(20);not null"`
	UpdatedBy uuid.UUID `gorm:"type:uuid;not null"`
	Notes     string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"index;not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderStatusHistoryModel) TableName() string {
	return "order_status_history"
}

// BeforeCreate issues the primary key.
func (m *OrderStatusHistoryModel) BeforeCreate(*gorm.DB) error {
	assignID(&m.ID)

	return nil
}
