package entity

import (
	"time"

	"github.com/google/uuid"
)

// VisitStatus is the review state of a visit report.
type VisitStatus string

const (
	VisitStatusDraft     VisitStatus = "Draft"
	VisitStatusSubmitted VisitStatus = "Submitted"
	VisitStatusApproved  VisitStatus = "Approved"
	VisitStatusRejected  VisitStatus = "Rejected"
)

// IsValid checks if the status is a known value.
func (s VisitStatus) IsValid() bool {
	switch s {
	case VisitStatusDraft, VisitStatusSubmitted, VisitStatusApproved, VisitStatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether only an admin review action can set or leave this status.
func (s VisitStatus) IsTerminal() bool {
	return s == VisitStatusApproved || s == VisitStatusRejected
}

// VisitMutableStatuses are the states in which the owning MR may edit or delete a report.
var VisitMutableStatuses = []string{string(VisitStatusDraft), string(VisitStatusSubmitted)}

// VisitReport records one MR visit to a doctor.
type VisitReport struct {
	ID                uuid.UUID   `json:"id"`
	VisitID           string      `json:"visitId"`
	MRID              uuid.UUID   `json:"mr"`
	DoctorID          uuid.UUID   `json:"doctor"`
	VisitDate         time.Time   `json:"visitDate"`
	Purpose           string      `json:"purpose,omitempty"`
	ProductsDiscussed []uuid.UUID `json:"productsDiscussed"`
	SamplesGiven      int         `json:"samplesGiven"`
	Notes             string      `json:"notes,omitempty"`
	Feedback          string      `json:"feedback,omitempty"`
	FollowUpDate      *time.Time  `json:"followUpDate,omitempty"`
	Location          string      `json:"location,omitempty"`
	Status            VisitStatus `json:"status"`
	ApprovedBy        *uuid.UUID  `json:"approvedBy,omitempty"`
	ApprovedAt        *time.Time  `json:"approvedAt,omitempty"`
	RejectionReason   string      `json:"rejectionReason,omitempty"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}
