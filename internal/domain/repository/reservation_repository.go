package repository

import (
	"context"
	"errors"

	"partnerdash/internal/domain/entity"
)

// ErrReservationNotFound is returned when a reservation does not exist for the given partner.
var ErrReservationNotFound = errors.New("reservation not found")

// ReservationRepository defines reservation persistence, scoped to the owning partner.
type ReservationRepository interface {
	// FindByPartner lists a partner's reservations, newest first.
	FindByPartner(ctx context.Context, partnerID int64) ([]*entity.Reservation, error)

	// FindOwned retrieves a reservation only if it belongs to partnerID.
	FindOwned(ctx context.Context, partnerID, reservationID int64) (*entity.Reservation, error)

	// UpdateStatus sets the status of an owned reservation.
	UpdateStatus(ctx context.Context, partnerID, reservationID int64, status entity.ReservationStatus) error

	// CountByPartner counts all reservations of a partner.
	CountByPartner(ctx context.Context, partnerID int64) (int64, error)
}
