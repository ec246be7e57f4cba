package handler

import (
	"partnerdash/internal/delivery/api/response"
	"partnerdash/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EstablishmentHandler serves the caller's profile and dashboard statistics.
type EstablishmentHandler struct {
	partnerUC   usecase.PartnerUsecase
	dashboardUC usecase.DashboardUsecase
}

// NewEstablishmentHandler is the constructor for EstablishmentHandler, injected by Fx.
func NewEstablishmentHandler(partnerUC usecase.PartnerUsecase, dashboardUC usecase.DashboardUsecase) *EstablishmentHandler {
	return &EstablishmentHandler{partnerUC: partnerUC, dashboardUC: dashboardUC}
}

// Get returns the establishment profile of the caller.
func (h *EstablishmentHandler) Get(c echo.Context) error {
	id, err := partnerID(c)
	if err != nil {
		return err
	}

	partner, err := h.partnerUC.GetEstablishment(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toEstablishmentResponse(partner))
}

// Stats returns the dashboard counters of the caller.
func (h *EstablishmentHandler) Stats(c echo.Context) error {
	id, err := partnerID(c)
	if err != nil {
		return err
	}

	stats, err := h.dashboardUC.Stats(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toStatsResponse(stats))
}
