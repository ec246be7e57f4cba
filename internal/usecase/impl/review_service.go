package impl

import (
	"context"

	"partnerdash/internal/domain/entity"
	"partnerdash/internal/domain/repository"
	"partnerdash/internal/usecase"

	"github.com/pkg/errors"
)

type reviewService struct {
	reviewRepo repository.ReviewRepository
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(reviewRepo repository.ReviewRepository) usecase.ReviewUsecase {
	return &reviewService{reviewRepo: reviewRepo}
}

func (srv *reviewService) List(ctx context.Context, partnerID int64) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.FindByPartner(ctx, partnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}
