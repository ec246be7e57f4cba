package repository

import (
	"context"
	"errors"

	"partnerdash/internal/domain/entity"
)

// ErrEventNotFound is returned when an event does not exist for the given partner.
var ErrEventNotFound = errors.New("event not found")

// EventRepository defines event persistence. Every lookup is scoped to the owning partner.
type EventRepository interface {
	// FindByPartner lists a partner's events, newest first.
	FindByPartner(ctx context.Context, partnerID int64) ([]*entity.Event, error)

	// FindOwned retrieves an event only if it belongs to partnerID.
	FindOwned(ctx context.Context, partnerID, eventID int64) (*entity.Event, error)

	// DeleteOwned removes an event only if it belongs to partnerID.
	DeleteOwned(ctx context.Context, partnerID, eventID int64) error

	// CountActive counts the partner's public, approved events.
	CountActive(ctx context.Context, partnerID int64) (int64, error)
}
