package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "partnerdash/internal/delivery/context"
	"partnerdash/internal/domain/entity"
	domainerrors "partnerdash/internal/domain/errors"
	"partnerdash/internal/domain/repository"
	"partnerdash/internal/domain/service"
	"partnerdash/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const publishTimeout = 5 * time.Second

type reservationService struct {
	txManager       repository.TransactionManager
	reservationRepo repository.ReservationRepository
	publisher       service.EventPublisher
	logger          *slog.Logger
	now             func() time.Time
}

// ReservationServiceParams holds dependencies for ReservationService, injected by Fx.
type ReservationServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	ReservationRepo repository.ReservationRepository
	Publisher       service.EventPublisher
	Logger          *slog.Logger
}

// NewReservationService is the constructor for reservationService.
func NewReservationService(params ReservationServiceParams) usecase.ReservationUsecase {
	return &reservationService{
		txManager:       params.TxManager,
		reservationRepo: params.ReservationRepo,
		publisher:       params.Publisher,
		logger:          params.Logger,
		now:             time.Now,
	}
}

func (srv *reservationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *reservationService) List(ctx context.Context, partnerID int64) ([]*entity.Reservation, error) {
	reservations, err := srv.reservationRepo.FindByPartner(ctx, partnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reservations")
	}

	return reservations, nil
}

// UpdateStatus sets the status of an owned reservation. Any status may follow any other.
func (srv *reservationService) UpdateStatus(ctx context.Context, partnerID, reservationID int64, status string) (*entity.Reservation, error) {
	next := entity.ReservationStatus(status)
	if !next.IsValid() {
		return nil, domainerrors.ErrInvalidReservationStatus
	}

	var previous entity.ReservationStatus
	var updated *entity.Reservation
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reservationRepo := repoFactory.ReservationRepo()

		current, err := reservationRepo.FindOwned(ctx, partnerID, reservationID)
		if err != nil {
			return err
		}
		previous = current.Status

		if err := reservationRepo.UpdateStatus(ctx, partnerID, reservationID, next); err != nil {
			return err
		}

		updated, err = reservationRepo.FindOwned(ctx, partnerID, reservationID)

		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return nil, domainerrors.ErrReservationNotFound
		}

		return nil, errors.Wrap(err, "failed to update reservation status")
	}

	srv.log(ctx).Info("Reservation status updated",
		slog.Int64("reservation_id", reservationID),
		slog.String("from", previous.String()),
		slog.String("to", next.String()),
	)

	srv.publishStatusChange(ctx, updated, previous)

	return updated, nil
}

// publishStatusChange notifies downstream consumers. Failures are logged and never reach the caller.
func (srv *reservationService) publishStatusChange(ctx context.Context, reservation *entity.Reservation, previous entity.ReservationStatus) {
	if srv.publisher == nil {
		return
	}

	// The update is committed; a client disconnect should not cancel the notification.
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := &service.ReservationEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		Type:           service.EventTypeReservationStatusChanged,
		PartnerID:      reservation.PartnerID,
		ReservationID:  reservation.ID,
		PreviousStatus: previous.String(),
		Status:         reservation.Status.String(),
		OccurredAt:     srv.now().UTC(),
	}
	if err := srv.publisher.PublishReservationEvent(publishCtx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish reservation event",
			slog.Int64("reservation_id", reservation.ID),
			slog.Any("error", err),
		)
	}
}
