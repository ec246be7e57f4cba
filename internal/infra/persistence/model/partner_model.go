// Package model holds the GORM-specific structs mirroring the database tables.
package model

import "time"

// PartnerModel is the GORM-specific struct for the 'partners' table.
type PartnerModel struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	CompanyName  string  `gorm:"size:255;not null"`
	TradeName    *string `gorm:"size:255"`
	Email        string  `gorm:"size:255;not null;uniqueIndex:idx_partners_email"`
	Phone        *string `gorm:"size:50"`
	PasswordHash string  `gorm:"size:255;not null"`
	City         *string `gorm:"size:120"`
	State        *string `gorm:"size:60"`
	AddressLine  *string `gorm:"size:255"`
	Latitude     float64 `gorm:"not null"`
	Longitude    float64 `gorm:"not null"`
	IsVerified   bool    `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PartnerModel) TableName() string {
	return "partners"
}
