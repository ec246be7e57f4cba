package usecase

import (
	"context"

	"partnerdash/internal/domain/entity"
)

// ReservationUsecase defines operations on a partner's reservations.
type ReservationUsecase interface {
	List(ctx context.Context, partnerID int64) ([]*entity.Reservation, error)
	UpdateStatus(ctx context.Context, partnerID, reservationID int64, status string) (*entity.Reservation, error)
}
