package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VisitReportModel mirrors the 'visit_reports' table.
type VisitReportModel struct {
	ID                uuid.UUID   `gorm:"type:uuid;primaryKey"`
	VisitID           string      `gorm:"type:varchar(20);uniqueIndex;not null"`
	MRID              uuid.UUID   `gorm:"column:mr_id;type:uuid;index;not null"`
	DoctorID          uuid.UUID   `gorm:"type:uuid;index;not null"`
	VisitDate         time.Time   `gorm:"index;not null"`
	Purpose           string      `gorm:"type:varchar(255)"`
	ProductsDiscussed []uuid.UUID `gorm:"type:text;serializer:json"`
	SamplesGiven      int         `gorm:"not null;default:0"`
	Notes             string      `gorm:"type:text"`
	Feedback          string      `gorm:"type:text"`
	FollowUpDate      *time.Time
	Location          string     `gorm:"type:varchar(255)"`
	Status            string     `gorm:"type:varchar(20);index;not null"`
	ApprovedBy        *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt        *time.Time
	RejectionReason   string `gorm:"type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (VisitReportModel) TableName() string {
	return "visit_reports"
}

// BeforeCreate issues the primary key.
func (m *VisitReportModel) BeforeCreate(*gorm.DB) error {
	assignID(&m.ID)

	return nil
}
