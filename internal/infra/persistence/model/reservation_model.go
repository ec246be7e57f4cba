package model

import "time"

// ReservationModel is the GORM-specific struct for the 'reservations' table.
type ReservationModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	PartnerID  int64     `gorm:"not null;index:idx_reservations_partner_created,priority:1"`
	Name       *string   `gorm:"size:255"`
	Phone      *string   `gorm:"size:50"`
	People     int       `gorm:"not null;default:1"`
	ReservedAt time.Time `gorm:"not null"`
	Status     string    `gorm:"size:20;not null;default:pending"`
	Notes      *string   `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"index:idx_reservations_partner_created,priority:2,sort:desc"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReservationModel) TableName() string {
	return "reservations"
}
