package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IdentityModel mirrors the 'identities' table.
type IdentityModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID         string     `gorm:"type:varchar(20);uniqueIndex;not null"`
	Name               string     `gorm:"type:varchar(100);not null"`
	Email              string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone              string     `gorm:"type:varchar(32)"`
	PasswordHash       string     `gorm:"type:varchar(255);not null"`
	Role               string     `gorm:"type:varchar(20);index;not null"`
	IsActive           bool       `gorm:"not null"`
	Territory          string     `gorm:"type:varchar(100)"`
	Region             string     `gorm:"type:varchar(100)"`
	City               string     `gorm:"type:varchar(100)"`
	ReportingManagerID *uuid.UUID `gorm:"type:uuid"`
	MustChangePassword bool       `gorm:"not null"`
	LastLoginAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (IdentityModel) TableName() string {
	return "identities"
}

// BeforeCreate issues the primary key.
func (m *IdentityModel) BeforeCreate(*gorm.DB) error {
	assignID(&m.ID)

	return nil
}

// SequenceModel mirrors the 'sequences' table backing business identifiers.
type SequenceModel struct {
	Name  string `gorm:"type:varchar(50);primaryKey"`
	Value int64  `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SequenceModel) TableName() string {
	return "sequences"
}
