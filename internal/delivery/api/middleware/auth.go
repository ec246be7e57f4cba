package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "partnerdash/internal/delivery/context"
	domainerrors "partnerdash/internal/domain/errors"
	"partnerdash/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerScheme = "bearer"

// AuthMiddleware gates protected routes behind a valid session token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate requires `Authorization: Bearer <token>`. A missing header, another scheme and
// a rejected token all produce the same 401, and the handler does not run.
// On success the partner id is available through deliverycontext.GetPartnerID.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			m.reject(c, "missing or malformed authorization header")

			return domainerrors.ErrUnauthenticated
		}

		partnerID, ok := m.tokenSvc.Verify(token)
		if !ok {
			m.reject(c, "token rejected")

			return domainerrors.ErrUnauthenticated
		}

		deliverycontext.SetPartnerID(c, partnerID)

		return next(c)
	}
}

func (m *AuthMiddleware) reject(c echo.Context, reason string) {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Unauthenticated request",
		slog.String("reason", reason),
		slog.String("path", c.Request().URL.Path),
	)
}

// bearerToken extracts the credentials of a Bearer authorization header. The scheme is case-insensitive.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}
