package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductActivityLogModel mirrors the append-only 'product_activity_logs' table.
type ProductActivityLogModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	MRID       uuid.UUID  `gorm:"column:mr_id;type:uuid;index;not null"`
	ProductID  uuid.UUID  `gorm:"type:uuid;index;not null"`
	DoctorID   *uuid.UUID `gorm:"type:uuid"`
	Action     string     `gorm:"type:varchar(20);index;not null"`
	Quantity   int        `gorm:"not null;default:0"`
	Notes      string     `gorm:"type:text"`
	OccurredAt time.Time  `gorm:"index;not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductActivityLogModel) TableName() string {
	return "product_activity_logs"
}

// BeforeCreate issues the primary key.
func (m *ProductActivityLogModel) BeforeCreate(*gorm.DB) error {
	assignID(&m.ID)

	return nil
}
