package service

import (
	"context"
	"time"
)

// EventTypeReservationStatusChanged is published after a reservation status update commits.
const EventTypeReservationStatusChanged = "reservation.status_changed"

// ReservationEvent describes a change to a reservation for downstream consumers.
type ReservationEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	Type           string    `json:"type"`
	PartnerID      int64     `json:"partner_id"`
	ReservationID  int64     `json:"reservation_id"`
	PreviousStatus string    `json:"previous_status"`
	Status         string    `json:"status"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing domain events to a message queue
type EventPublisher interface {
	// PublishReservationEvent publishes a reservation event
	PublishReservationEvent(ctx context.Context, event *ReservationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
