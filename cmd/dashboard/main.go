package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"partnerdash/config"
	"partnerdash/internal/delivery"
	"partnerdash/internal/delivery/api"
	"partnerdash/internal/delivery/api/middleware"
	"partnerdash/internal/delivery/api/router/handler"
	"partnerdash/internal/infra/auth"
	logs "partnerdash/internal/infra/log"
	"partnerdash/internal/infra/persistence/postgres"
	"partnerdash/internal/infra/pubsub"
	"partnerdash/internal/infra/qrcode"
	"partnerdash/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		newDisplayLocation,
	)
}

// newDisplayLocation resolves the timezone listings are rendered in.
func newDisplayLocation(cfg *config.Config) (*time.Location, error) {
	return cfg.Location()
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewPartnerRepository,
			postgres.NewEventRepository,
			postgres.NewReservationRepository,
			postgres.NewReviewRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPartnerService,
			impl.NewDashboardService,
			impl.NewEventService,
			impl.NewReservationService,
			impl.NewReviewService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewEstablishmentHandler,
			handler.NewEventHandler,
			handler.NewReservationHandler,
			handler.NewReviewHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
