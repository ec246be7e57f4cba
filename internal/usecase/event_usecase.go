package usecase

import (
	"context"

	"partnerdash/internal/domain/entity"
)

// EventUsecase defines operations on a partner's own events.
type EventUsecase interface {
	List(ctx context.Context, partnerID int64) ([]*entity.Event, error)
	Delete(ctx context.Context, partnerID, eventID int64) error
	ShareQR(ctx context.Context, partnerID, eventID int64) ([]byte, error)
}
