// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"partnerdash/internal/delivery/api/middleware"
	"partnerdash/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler          *handler.AuthHandler
	EstablishmentHandler *handler.EstablishmentHandler
	EventHandler         *handler.EventHandler
	ReservationHandler   *handler.ReservationHandler
	ReviewHandler        *handler.ReviewHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler          *handler.AuthHandler
	establishmentHandler *handler.EstablishmentHandler
	eventHandler         *handler.EventHandler
	reservationHandler   *handler.ReservationHandler
	reviewHandler        *handler.ReviewHandler
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:          params.AuthHandler,
		establishmentHandler: params.EstablishmentHandler,
		eventHandler:         params.EventHandler,
		reservationHandler:   params.ReservationHandler,
		reviewHandler:        params.ReviewHandler,
		authMiddleware:       params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/api/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		// Older dashboard builds post registrations here.
		authGroup.POST("/login/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Everything else under /api is scoped to the authenticated partner.
	apiGroup := e.Group("/api")
	apiGroup.Use(r.authMiddleware.Authenticate)

	establishmentsGroup := apiGroup.Group("/establishments")
	{
		establishmentsGroup.GET("", r.establishmentHandler.Get)
		establishmentsGroup.GET("/stats", r.establishmentHandler.Stats)
	}

	eventsGroup := apiGroup.Group("/events")
	{
		eventsGroup.GET("", r.eventHandler.List)
		eventsGroup.DELETE("/:id", r.eventHandler.Delete)
		eventsGroup.GET("/:id/qr", r.eventHandler.QRCode)
	}

	reservationsGroup := apiGroup.Group("/reservations")
	{
		reservationsGroup.GET("", r.reservationHandler.List)
		reservationsGroup.PUT("/:id", r.reservationHandler.UpdateStatus)
	}

	apiGroup.GET("/reviews", r.reviewHandler.List)
}
