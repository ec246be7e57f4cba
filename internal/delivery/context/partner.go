package context

import (
	"context"

	"github.com/labstack/echo/v4"
)

// SetPartnerID stores the authenticated partner id in echo.Context and in the request context,
// so usecases and the gorm logger see it too.
func SetPartnerID(c echo.Context, partnerID int64) {
	c.Set(string(keyPartnerID), partnerID)
	c.SetRequest(c.Request().WithContext(WithPartnerID(c.Request().Context(), partnerID)))
}

// GetPartnerID returns the partner id set by the auth middleware.
func GetPartnerID(c echo.Context) (int64, bool) {
	partnerID, ok := c.Get(string(keyPartnerID)).(int64)

	return partnerID, ok && partnerID > 0
}

func WithPartnerID(ctx context.Context, partnerID int64) context.Context {
	return context.WithValue(ctx, keyPartnerID, partnerID)
}

func GetPartnerIDFromContext(ctx context.Context) (int64, bool) {
	return valueOf[int64](ctx, keyPartnerID)
}
