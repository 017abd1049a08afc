package service

import (
	"context"
	"time"
)

// Reservation event types.
const (
	EventReservationCreated   = "reservation.created"
	EventReservationCancelled = "reservation.cancelled"
)

// ReservationEvent is emitted after a reservation change is persisted.
type ReservationEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	Type          string    `json:"type"`
	ReservationID string    `json:"reservation_id"`
	CustomerID    string    `json:"customer_id"`
	LodgingID     string    `json:"lodging_id"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishReservationEvent publishes a reservation event for downstream consumers.
	PublishReservationEvent(ctx context.Context, event *ReservationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
