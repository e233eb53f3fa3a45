package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MRTargetModel mirrors the 'mr_targets' table.
type MRTargetModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	MRID            uuid.UUID `gorm:"column:mr_id;type:uuid;not null;uniqueIndex:idx_mr_targets_period"`
	Month           int       `gorm:"not null;uniqueIndex:idx_mr_targets_period"`
	Year            int       `gorm:"not null;uniqueIndex:idx_mr_targets_period"`
	VisitTarget     int       `gorm:"not null;default:0"`
	OrderTarget     int       `gorm:"not null;default:0"`
	SalesTarget     float64   `gorm:"not null;default:0"`
	NewDoctorTarget int       `gorm:"not null;default:0"`
	Notes           string    `gorm:"type:text"`
	CreatedBy       uuid.UUID `gorm:"type:uuid"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (MRTargetModel) TableName() string {
	return "mr_targets"
}

// BeforeCreate issues the primary key.
func (m *MRTargetModel) BeforeCreate(*gorm.DB) error {
	assignID(&m.ID)

	return nil
}

// MRPerformanceLogModel mirrors the 'mr_performance_logs' table.
type MRPerformanceLogModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	MRID               uuid.UUID `gorm:"column:mr_id;type:uuid;not null;uniqueIndex:idx_mr_performance_period"`
	Month              int       `gorm:"not null;uniqueIndex:idx_mr_performance_period"`
	Year               int       `gorm:"not null;uniqueIndex:idx_mr_performance_period"`
	VisitsCompleted    int       `gorm:"not null;default:0"`
	OrdersPlaced       int       `gorm:"not null;default:0"`
	SalesValue         float64   `gorm:"not null;default:0"`
	DoctorsCovered     int       `gorm:"not null;default:0"`
	AchievementPercent float64   `gorm:"not null;default:0"`
	Remarks            string    `gorm:"type:text"`
	ComputedAt         time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (MRPerformanceLogModel) TableName() string {
	return "mr_performance_logs"
}

// BeforeCreate issues the primary key.
func (m *MRPerformanceLogModel) BeforeCreate(*gorm.DB) error {
	assignID(&m.ID)

	return nil
}
