package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DoctorModel mirrors the 'doctors' table.
type DoctorModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(150);not null"`
	Specialization string    `gorm:"type:varchar(100);not null"`
	Qualification  string    `gorm:"type:varchar(100)"`
	Hospital       string    `gorm:"type:varchar(150)"`
	Phone          string    `gorm:"type:varchar(32)"`
	Email          string    `gorm:"type:varchar(255)"`
	Address        string    `gorm:"type:text"`
	City           string    `gorm:"type:varchar(100);index"`
	Territory      string    `gorm:"type:varchar(100);index"`
	Category       string    `gorm:"type:varchar(1)"`
	IsActive       bool      `gorm:"not null"`
	CreatedBy      uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Assignments []DoctorAssignmentModel `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (DoctorModel) TableName() string {
	return "doctors"
}

// BeforeCreate issues the primary key.
func (m *DoctorModel) BeforeCreate(*gorm.DB) error {
	assignID(&m.ID)

	return nil
}

// DoctorAssignmentModel mirrors the 'doctor_assignments' join table (doctor -> assigned MR).
type DoctorAssignmentModel struct {
	DoctorID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	MRID      uuid.UUID `gorm:"column:mr_id;type:uuid;primaryKey;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DoctorAssignmentModel) TableName() string {
	return "doctor_assignments"
}

// ProductModel mirrors the 'products' table. Rows are soft-deleted.
type ProductModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductCode    string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	Name           string    `gorm:"type:varchar(150);not null"`
	Category       string    `gorm:"type:varchar(100);index;not null"`
	Composition    string    `gorm:"type:text"`
	Description    string    `gorm:"type:text"`
	Manufacturer   string    `gorm:"type:varchar(150)"`
	MRP            float64   `gorm:"column:mrp;not null"`
	UnitPrice      float64   `gorm:"not null"`
	PackSize       string    `gorm:"type:varchar(50)"`
	IsActive       bool      `gorm:"not null"`
	IsDiscontinued bool      `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// BeforeCreate issues the primary key.
func (m *ProductModel) BeforeCreate(*gorm.DB) error {
	assignID(&m.ID)

	return nil
}
