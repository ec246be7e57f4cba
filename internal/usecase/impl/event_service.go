package impl

import (
	"context"
	"log/slog"

	deliverycontext "partnerdash/internal/delivery/context"
	"partnerdash/internal/domain/entity"
	domainerrors "partnerdash/internal/domain/errors"
	"partnerdash/internal/domain/repository"
	"partnerdash/internal/domain/service"
	"partnerdash/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type eventService struct {
	eventRepo repository.EventRepository
	qrService service.QRCodeService
	logger    *slog.Logger
}

// EventServiceParams holds dependencies for EventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	EventRepo repository.EventRepository
	QRService service.QRCodeService
	Logger    *slog.Logger
}

// NewEventService is the constructor for eventService.
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		eventRepo: params.EventRepo,
		qrService: params.QRService,
		logger:    params.Logger,
	}
}

func (srv *eventService) List(ctx context.Context, partnerID int64) ([]*entity.Event, error) {
	events, err := srv.eventRepo.FindByPartner(ctx, partnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	return events, nil
}

// Delete removes an owned event. Foreign and missing events are both reported as not found.
func (srv *eventService) Delete(ctx context.Context, partnerID, eventID int64) error {
	if err := srv.eventRepo.DeleteOwned(ctx, partnerID, eventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domainerrors.ErrEventNotFound
		}

		return errors.Wrap(err, "failed to delete event")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Event deleted",
		slog.Int64("partner_id", partnerID),
		slog.Int64("event_id", eventID),
	)

	return nil
}

// ShareQR renders the share code of an owned event.
func (srv *eventService) ShareQR(ctx context.Context, partnerID, eventID int64) ([]byte, error) {
	if _, err := srv.eventRepo.FindOwned(ctx, partnerID, eventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to load event")
	}

	png, err := srv.qrService.GenerateEventQR(eventID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate event QR code")
	}

	return png, nil
}
