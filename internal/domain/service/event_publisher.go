package service

import (
	"context"
	"time"
)

// EventType names a workflow event.
type EventType string

const (
	EventVisitApproved      EventType = "visit.approved"
	EventVisitRejected      EventType = "visit.rejected"
	EventOrderStatusChanged EventType = "order.status_changed"
	EventMRRequestApproved  EventType = "mr_request.approved"
	EventMRRequestRejected  EventType = "mr_request.rejected"
)

// WorkflowEvent is published after a workflow action commits.
type WorkflowEvent struct {
	RequestID  string            `json:"request_id,omitempty"` // For distributed tracing
	Type       EventType         `json:"type"`
	ResourceID string            `json:"resource_id"`
	ActorID    string            `json:"actor_id"`
	OwnerID    string            `json:"owner_id,omitempty"`
	Status     string            `json:"status"`
	OccurredAt time.Time         `json:"occurred_at"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends a workflow event. Failures must never undo the committed action.
	Publish(ctx context.Context, event *WorkflowEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
