package handler

import (
	"partnerdash/internal/delivery/api/response"
	"partnerdash/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReviewHandler serves the reviews left for the caller.
type ReviewHandler struct {
	uc usecase.ReviewUsecase
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

// List returns the caller's reviews, newest first.
func (h *ReviewHandler) List(c echo.Context) error {
	id, err := partnerID(c)
	if err != nil {
		return err
	}

	reviews, err := h.uc.List(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, mapSlice(reviews, toReviewResponse))
}
