package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestPartnerID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := GetPartnerID(c)
	assert.False(t, ok)

	SetPartnerID(c, 12)

	partnerID, ok := GetPartnerID(c)
	assert.True(t, ok)
	assert.Equal(t, int64(12), partnerID)

	partnerID, ok = GetPartnerIDFromContext(c.Request().Context())
	assert.True(t, ok)
	assert.Equal(t, int64(12), partnerID)
}

func TestRequestIDAndLogger(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetRequestIDFromContext(ctx))

	fallback := slog.Default()
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))

	scoped := fallback.With(slog.String("request_id", "abc"))
	ctx = WithLogger(WithRequestID(ctx, "abc"), scoped)
	assert.Equal(t, "abc", GetRequestIDFromContext(ctx))
	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))
}

func TestSetRequestScope(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	logger := slog.Default().With(slog.String("request_id", "req-1"))

	SetRequestScope(c, "req-1", logger)

	ctx := c.Request().Context()
	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx))
	assert.Equal(t, "req-1", c.Get("request_id"))
	assert.Same(t, logger, GetLoggerOrDefault(ctx, nil))
}
