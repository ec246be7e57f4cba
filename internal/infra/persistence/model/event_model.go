package model

import "time"

// EventModel is the GORM-specific struct for the 'events' table.
type EventModel struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	PartnerID     int64     `gorm:"not null;index:idx_events_partner_created,priority:1"`
	Title         string    `gorm:"size:255;not null"`
	Description   *string   `gorm:"type:text"`
	StartsAt      time.Time `gorm:"not null"`
	EndsAt        *time.Time
	Category      *string `gorm:"size:100"`
	PriceMinCents *int64
	Visibility    string    `gorm:"size:20;not null;default:private"`
	IsApproved    bool      `gorm:"not null;default:false"`
	CoverImageURL *string   `gorm:"column:cover_image_url;type:text"`
	CreatedAt     time.Time `gorm:"index:idx_events_partner_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}
