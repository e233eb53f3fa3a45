package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// DoctorCategory ranks doctors by visit priority.
type DoctorCategory string

const (
	DoctorCategoryA DoctorCategory = "A"
	DoctorCategoryB DoctorCategory = "B"
	DoctorCategoryC DoctorCategory = "C"
)

// Doctor is a prescriber visited by MRs. An MR owns a doctor when listed in AssignedMRs.
type Doctor struct {
	ID             uuid.UUID      `json:"id"`
	Name           string         `json:"name"`
	Specialization string         `json:"specialization"`
	Qualification  string         `json:"qualification,omitempty"`
	Hospital       string         `json:"hospital,omitempty"`
	Phone          string         `json:"phone,omitempty"`
	Email          string         `json:"email,omitempty"`
	Address        string         `json:"address,omitempty"`
	City           string         `json:"city,omitempty"`
	Territory      string         `json:"territory,omitempty"`
	Category       DoctorCategory `json:"category,omitempty"`
	AssignedMRs    []uuid.UUID    `json:"assignedMRs"`
	IsActive       bool           `json:"isActive"`
	CreatedBy      uuid.UUID      `json:"createdBy"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// IsAssignedTo reports whether the MR appears in the assignment list.
func (d *Doctor) IsAssignedTo(mrID uuid.UUID) bool {
	return slices.Contains(d.AssignedMRs, mrID)
}
