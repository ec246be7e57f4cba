package impl

import (
	"context"
	"testing"

	"partnerdash/internal/domain/entity"
	mockRepo "partnerdash/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewService_List(t *testing.T) {
	ctx := context.Background()
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	reviewRepo.On("FindByPartner", ctx, int64(1)).Return([]*entity.Review{{ID: 1, Rating: 5}}, nil).Once()
	reviewRepo.On("FindByPartner", ctx, int64(2)).Return(nil, errors.New("db down")).Once()

	srv := NewReviewService(reviewRepo)

	reviews, err := srv.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)

	_, err = srv.List(ctx, 2)
	assert.Error(t, err)
}
