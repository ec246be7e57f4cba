package impl

import (
	"context"
	"log/slog"
	"math"

	deliverycontext "partnerdash/internal/delivery/context"
	"partnerdash/internal/domain/repository"
	"partnerdash/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type dashboardService struct {
	eventRepo       repository.EventRepository
	reservationRepo repository.ReservationRepository
	reviewRepo      repository.ReviewRepository
	logger          *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	EventRepo       repository.EventRepository
	ReservationRepo repository.ReservationRepository
	ReviewRepo      repository.ReviewRepository
	Logger          *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		eventRepo:       params.EventRepo,
		reservationRepo: params.ReservationRepo,
		reviewRepo:      params.ReviewRepo,
		logger:          params.Logger,
	}
}

// Stats counts active events and reservations and summarizes reviews.
func (srv *dashboardService) Stats(ctx context.Context, partnerID int64) (*usecase.DashboardStats, error) {
	events, err := srv.eventRepo.CountActive(ctx, partnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count events")
	}

	reservations, err := srv.reservationRepo.CountByPartner(ctx, partnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count reservations")
	}

	summary, err := srv.reviewRepo.Summarize(ctx, partnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize reviews")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Dashboard stats computed",
		slog.Int64("partner_id", partnerID),
		slog.Int64("events", events),
		slog.Int64("reservations", reservations),
	)

	// TODO: report views and revenue once page views and paid reservations are recorded.
	return &usecase.DashboardStats{
		Reservations: reservations,
		Events:       events,
		Rating:       roundToTenth(summary.AverageRating),
		ReviewsCount: summary.Count,
	}, nil
}

func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
