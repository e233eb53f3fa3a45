package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MRRequestModel mirrors the 'mr_requests' table.
type MRRequestModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name            string     `gorm:"type:varchar(100);not null"`
	Email           string     `gorm:"type:varchar(255);index;not null"`
	Phone           string     `gorm:"type:varchar(32);not null"`
	Territory       string     `gorm:"type:varchar(100)"`
	Region          string     `gorm:"type:varchar(100)"`
	City            string     `gorm:"type:varchar(100)"`
	Qualification   string     `gorm:"type:varchar(100)"`
	ExperienceYears int        `gorm:"not null;default:0"`
	Message         string     `gorm:"type:text"`
	Status          string     `gorm:"type:varchar(20);index;not null"`
	ProcessedBy     *uuid.UUID `gorm:"type:uuid"`
	ProcessedAt     *time.Time
	RejectionReason string     `gorm:"type:text"`
	CreatedUserID   *uuid.UUID `gorm:"type:uuid"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (MRRequestModel) TableName() string {
	return "mr_requests"
}

// BeforeCreate issues the primary key.
func (m *MRRequestModel) BeforeCreate(*gorm.DB) error {
	assignID(&m.ID)

	return nil
}
