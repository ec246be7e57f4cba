package handler

import (
	"time"

	"partnerdash/internal/delivery/api/response"
	"partnerdash/internal/domain/entity"
	"partnerdash/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EventHandler serves the caller's events.
type EventHandler struct {
	uc  usecase.EventUsecase
	loc *time.Location
}

// NewEventHandler is the constructor for EventHandler, injected by Fx.
func NewEventHandler(uc usecase.EventUsecase, loc *time.Location) *EventHandler {
	return &EventHandler{uc: uc, loc: loc}
}

// List returns the caller's events, newest first.
func (h *EventHandler) List(c echo.Context) error {
	id, err := partnerID(c)
	if err != nil {
		return err
	}

	events, err := h.uc.List(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, mapSlice(events, func(e *entity.Event) eventResponse {
		return toEventResponse(e, h.loc)
	}))
}

// Delete removes one of the caller's events.
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := partnerID(c)
	if err != nil {
		return err
	}

	eventID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id, eventID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Evento deletado com sucesso")
}

// QRCode returns a PNG share code for one of the caller's events.
func (h *EventHandler) QRCode(c echo.Context) error {
	id, err := partnerID(c)
	if err != nil {
		return err
	}

	eventID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.uc.ShareQR(c.Request().Context(), id, eventID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.PNG(c, png)
}
