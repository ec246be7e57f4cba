package impl

import (
	"context"
	"testing"

	"partnerdash/internal/domain/entity"
	domainerrors "partnerdash/internal/domain/errors"
	"partnerdash/internal/domain/repository"
	mockRepo "partnerdash/internal/mocks/repository"
	mockSvc "partnerdash/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService(t *testing.T) {
	ctx := context.Background()
	eventRepo := mockRepo.NewMockEventRepository(t)
	qr := mockSvc.NewMockQRCodeService(t)
	srv := NewEventService(EventServiceParams{EventRepo: eventRepo, QRService: qr, Logger: newDiscardLogger()})

	t.Run("list", func(t *testing.T) {
		eventRepo.On("FindByPartner", ctx, int64(1)).Return([]*entity.Event{{ID: 9}}, nil).Once()

		events, err := srv.List(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, events, 1)
	})

	t.Run("delete owned", func(t *testing.T) {
		eventRepo.On("DeleteOwned", ctx, int64(1), int64(9)).Return(nil).Once()
		assert.NoError(t, srv.Delete(ctx, 1, 9))
	})

	t.Run("delete foreign", func(t *testing.T) {
		eventRepo.On("DeleteOwned", ctx, int64(1), int64(10)).Return(repository.ErrEventNotFound).Once()
		assert.ErrorIs(t, srv.Delete(ctx, 1, 10), domainerrors.ErrEventNotFound)
	})

	t.Run("qr owned", func(t *testing.T) {
		eventRepo.On("FindOwned", ctx, int64(1), int64(9)).Return(&entity.Event{ID: 9, PartnerID: 1}, nil).Once()
		qr.On("GenerateEventQR", int64(9)).Return([]byte{0x89, 'P', 'N', 'G'}, nil).Once()

		png, err := srv.ShareQR(ctx, 1, 9)
		require.NoError(t, err)
		assert.NotEmpty(t, png)
	})

	t.Run("qr foreign", func(t *testing.T) {
		eventRepo.On("FindOwned", ctx, int64(1), int64(10)).Return(nil, repository.ErrEventNotFound).Once()

		_, err := srv.ShareQR(ctx, 1, 10)
		assert.ErrorIs(t, err, domainerrors.ErrEventNotFound)
	})
}
