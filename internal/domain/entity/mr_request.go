package entity

import (
	"time"

	"github.com/google/uuid"
)

// MRRequestStatus is the processing state of an onboarding request.
type MRRequestStatus string

const (
	MRRequestPending  MRRequestStatus = "pending"
	MRRequestApproved MRRequestStatus = "approved"
	MRRequestRejected MRRequestStatus = "rejected"
)

// IsValid checks if the status is a known value.
func (s MRRequestStatus) IsValid() bool {
	switch s {
	case MRRequestPending, MRRequestApproved, MRRequestRejected:
		return true
	default:
		return false
	}
}

// MRRequest is an application submitted by a prospective MR without an account.
type MRRequest struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	Territory       string          `json:"territory,omitempty"`
	Region          string          `json:"region,omitempty"`
	City            string          `json:"city,omitempty"`
	Qualification   string          `json:"qualification,omitempty"`
	ExperienceYears int             `json:"experienceYears"`
	Message         string          `json:"message,omitempty"`
	Status          MRRequestStatus `json:"status"`
	ProcessedBy     *uuid.UUID      `json:"processedBy,omitempty"`
	ProcessedAt     *time.Time      `json:"processedAt,omitempty"`
	RejectionReason string          `json:"rejectionReason,omitempty"`
	CreatedUserID   *uuid.UUID      `json:"createdUserId,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
