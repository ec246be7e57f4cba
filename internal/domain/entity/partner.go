// Package entity contains the core business objects of the dashboard,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Default coordinates assigned to new partners until they set an address (São Paulo).
const (
	DefaultLatitude  = -23.550000
	DefaultLongitude = -46.633000
)

// Partner is an establishment account. Its ID is the subject of every session token.
type Partner struct {
	ID           int64
	CompanyName  string
	TradeName    *string
	Email        string
	Phone        *string
	PasswordHash string // bcrypt verifier; never rendered or logged
	City         *string
	State        *string
	AddressLine  *string
	Latitude     float64
	Longitude    float64
	IsVerified   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
