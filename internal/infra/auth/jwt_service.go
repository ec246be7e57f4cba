package auth

import (
	"log/slog"
	"strconv"
	"time"

	"partnerdash/config"
	"partnerdash/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
// The key is captured at construction and never changes for the process lifetime.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config, logger *slog.Logger) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := defaultTokenTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    ttl,
		now:    time.Now,
		logger: logger,
	}, nil
}

// Issue creates a token whose subject is the partner id.
func (s *jwtService) Issue(partnerID int64) (string, error) {
	issuedAt := s.now()
	claims := service.Claims{
		PartnerID: partnerID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(partnerID, 10),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify parses the token, checks the HMAC signature and expiry, and returns the subject.
func (s *jwtService) Verify(tokenString string) (int64, bool) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		// The cause stays server-side.
		s.logger.Debug("Token rejected", slog.Any("error", err))

		return 0, false
	}

	partnerID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || partnerID <= 0 || partnerID != claims.PartnerID {
		s.logger.Debug("Token rejected: subject mismatch", slog.String("subject", claims.Subject))

		return 0, false
	}

	return partnerID, true
}

// TTL returns the configured token lifetime.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
