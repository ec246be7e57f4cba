package handler

import (
	"time"

	"partnerdash/internal/delivery/api/response"
	"partnerdash/internal/domain/entity"
	domainerrors "partnerdash/internal/domain/errors"
	"partnerdash/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type updateReservationRequest struct {
	Status string `json:"status"`
}

// ReservationHandler serves the caller's reservations.
type ReservationHandler struct {
	uc  usecase.ReservationUsecase
	loc *time.Location
}

// NewReservationHandler is the constructor for ReservationHandler, injected by Fx.
func NewReservationHandler(uc usecase.ReservationUsecase, loc *time.Location) *ReservationHandler {
	return &ReservationHandler{uc: uc, loc: loc}
}

// List returns the caller's reservations, newest first.
func (h *ReservationHandler) List(c echo.Context) error {
	id, err := partnerID(c)
	if err != nil {
		return err
	}

	reservations, err := h.uc.List(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, mapSlice(reservations, func(r *entity.Reservation) reservationResponse {
		return toReservationResponse(r, h.loc)
	}))
}

// UpdateStatus changes the status of one of the caller's reservations.
func (h *ReservationHandler) UpdateStatus(c echo.Context) error {
	id, err := partnerID(c)
	if err != nil {
		return err
	}

	reservationID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateReservationRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidReservationStatus
	}

	updated, err := h.uc.UpdateStatus(c.Request().Context(), id, reservationID, req.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toReservationResponse(updated, h.loc))
}
