package usecase

import (
	"context"

	"partnerdash/internal/domain/entity"
)

// ReviewUsecase lists the reviews customers left for a partner.
type ReviewUsecase interface {
	List(ctx context.Context, partnerID int64) ([]*entity.Review, error)
}
