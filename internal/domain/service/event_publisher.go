package service

import (
	"context"
	"time"
)

// FacilityCreatedEvent is emitted after a facility has been committed, so
// downstream consumers can react without blocking the request.
type FacilityCreatedEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	FacilityID string    `json:"facility_id"`
	Title      string    `json:"title"`
	CreatedAt  time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishFacilityCreated publishes a facility-created event for async processing
	PublishFacilityCreated(ctx context.Context, event *FacilityCreatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
