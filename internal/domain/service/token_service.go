package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the payload of a session token.
type Claims struct {
	PartnerID int64 `json:"userId"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies session tokens.
type TokenService interface {
	// Issue creates a signed token for the partner, expiring after the configured TTL.
	Issue(partnerID int64) (string, error)

	// Verify returns the partner id of a valid token. Every failure cause
	// (malformed, bad signature, expired) yields ok == false.
	Verify(token string) (partnerID int64, ok bool)

	// TTL returns the lifetime of issued tokens.
	TTL() time.Duration
}
