package postgres

import (
	"context"
	"database/sql"

	"partnerdash/internal/domain/entity"
	domainerrors "partnerdash/internal/domain/errors"
	"partnerdash/internal/domain/repository"
	"partnerdash/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// reviewRepository implements the domain ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// FindByPartner lists a partner's reviews, newest first.
func (repo *reviewRepository) FindByPartner(ctx context.Context, partnerID int64) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel
	err := repo.db.WithContext(ctx).
		Where("partner_id = ?", partnerID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&reviewModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, &entity.Review{
			ID:        reviewM.ID,
			PartnerID: reviewM.PartnerID,
			UserName:  reviewM.UserName,
			Rating:    reviewM.Rating,
			Text:      reviewM.Text,
			CreatedAt: reviewM.CreatedAt,
		})
	}

	return reviews, nil
}

// Summarize returns the review count and average rating in one aggregate query.
func (repo *reviewRepository) Summarize(ctx context.Context, partnerID int64) (*entity.ReviewSummary, error) {
	var row struct {
		Count   int64
		Average sql.NullFloat64
	}
	err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("COUNT(id) AS count, AVG(rating) AS average").
		Where("partner_id = ?", partnerID).
		Scan(&row).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to summarize reviews")
	}

	return &entity.ReviewSummary{
		Count:         row.Count,
		AverageRating: row.Average.Float64,
	}, nil
}
