package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivityAction classifies a product activity event.
type ActivityAction string

const (
	ActivityDetailing    ActivityAction = "detailing"
	ActivitySample       ActivityAction = "sample"
	ActivityPrescription ActivityAction = "prescription"
	ActivityFeedback     ActivityAction = "feedback"
)

// IsValid checks if the action is a known value.
func (a ActivityAction) IsValid() bool {
	switch a {
	case ActivityDetailing, ActivitySample, ActivityPrescription, ActivityFeedback:
		return true
	default:
		return false
	}
}

// ProductActivityLog is an append-only event. It is never updated or deleted.
type ProductActivityLog struct {
	ID         uuid.UUID      `json:"id"`
	MRID       uuid.UUID      `json:"mr"`
	ProductID  uuid.UUID      `json:"product"`
	DoctorID   *uuid.UUID     `json:"doctor,omitempty"`
	Action     ActivityAction `json:"action"`
	Quantity   int            `json:"quantity"`
	Notes      string         `json:"notes,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// ActivitySummary is one aggregate row of activity per product and action.
type ActivitySummary struct {
	ProductID     uuid.UUID      `json:"product"`
	Action        ActivityAction `json:"action"`
	Events        int64          `json:"events"`
	TotalQuantity int64          `json:"totalQuantity"`
}
