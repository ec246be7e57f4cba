package repository

import (
	"context"

	"partnerdash/internal/domain/entity"
)

// ReviewRepository defines read access to partner reviews.
type ReviewRepository interface {
	// FindByPartner lists a partner's reviews, newest first.
	FindByPartner(ctx context.Context, partnerID int64) ([]*entity.Review, error)

	// Summarize returns the review count and average rating of a partner.
	Summarize(ctx context.Context, partnerID int64) (*entity.ReviewSummary, error)
}
