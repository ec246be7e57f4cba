package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	deliverycontext "partnerdash/internal/delivery/context"
	domainerrors "partnerdash/internal/domain/errors"
	mocksvc "partnerdash/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body["error"]
}

func newTestEcho(logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name       string
		header     string
		setup      func(m *mocksvc.MockTokenService)
		wantStatus int
		wantID     int64
	}{
		{
			name:   "valid bearer token",
			header: "Bearer good",
			setup: func(m *mocksvc.MockTokenService) {
				m.On("Verify", "good").Return(int64(7), true).Once()
			},
			wantStatus: http.StatusOK,
			wantID:     7,
		},
		{
			name:   "scheme is case-insensitive",
			header: "bearer good",
			setup: func(m *mocksvc.MockTokenService) {
				m.On("Verify", "good").Return(int64(9), true).Once()
			},
			wantStatus: http.StatusOK,
			wantID:     9,
		},
		{
			name:       "missing header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty token",
			header:     "Bearer   ",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "rejected token",
			header: "Bearer expired",
			setup: func(m *mocksvc.MockTokenService) {
				m.On("Verify", "expired").Return(int64(0), false).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mocksvc.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}

			handlerRan := false
			e := newTestEcho(logger)
			e.GET("/protected", func(c echo.Context) error {
				handlerRan = true
				id, ok := deliverycontext.GetPartnerID(c)
				require.True(t, ok)
				ctxID, ok := deliverycontext.GetPartnerIDFromContext(c.Request().Context())
				require.True(t, ok)
				assert.Equal(t, id, ctxID)

				return c.String(http.StatusOK, strconv.FormatInt(id, 10))
			}, NewAuthMiddleware(tokenSvc, logger).Authenticate)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.True(t, handlerRan)
				assert.Equal(t, strconv.FormatInt(tt.wantID, 10), rec.Body.String())
			} else {
				assert.False(t, handlerRan)
				assert.Equal(t, "Token inválido", decodeError(t, rec))
			}
		})
	}
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		method      string
		wantStatus  int
		wantMessage string
		wantLogged  bool
	}{
		{
			name:        "app error keeps its message",
			err:         domainerrors.ErrReservationNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "Reserva não encontrada",
		},
		{
			name:        "wrapped app error",
			err:         errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "register"),
			wantStatus:  http.StatusConflict,
			wantMessage: "Email já cadastrado",
		},
		{
			name:        "database fault hides detail",
			err:         domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "find events"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Erro interno do servidor",
			wantLogged:  true,
		},
		{
			name:        "echo http error",
			err:         echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"),
			wantStatus:  http.StatusRequestEntityTooLarge,
			wantMessage: "Request Entity Too Large",
		},
		{
			name:        "echo not found",
			err:         echo.ErrNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "Not Found",
		},
		{
			name:        "unknown error",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Erro interno do servidor",
			wantLogged:  true,
		},
		{
			name:       "head request has no body",
			err:        domainerrors.ErrEventNotFound,
			method:     http.MethodHead,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))
			e := echo.New()

			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			req := httptest.NewRequest(method, "/x", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			NewErrorMiddleware(logger).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeError(t, rec))
				assert.NotContains(t, rec.Body.String(), "connection refused")
				assert.NotContains(t, rec.Body.String(), "boom")
			} else {
				assert.Empty(t, rec.Body.String())
			}
			assert.Equal(t, tt.wantLogged, buf.Len() > 0)
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusAccepted, "done"))

	NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
