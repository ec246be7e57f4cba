// Package handler contains the HTTP handlers of the dashboard API.
package handler

import (
	"strconv"

	deliverycontext "partnerdash/internal/delivery/context"
	domainerrors "partnerdash/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// partnerID returns the authenticated caller. Routes using it sit behind AuthMiddleware.
func partnerID(c echo.Context) (int64, error) {
	id, ok := deliverycontext.GetPartnerID(c)
	if !ok {
		return 0, domainerrors.ErrUnauthenticated
	}

	return id, nil
}

// pathID parses a positive numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrInvalidID
	}

	return id, nil
}
