package model

import "time"

// ReviewModel is the GORM-specific struct for the 'reviews' table.
type ReviewModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	PartnerID int64     `gorm:"not null;index:idx_reviews_partner_created,priority:1"`
	UserName  string    `gorm:"size:255;not null"`
	Rating    int       `gorm:"not null"`
	Text      *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"index:idx_reviews_partner_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// All lists every model, in dependency order, for schema bootstrapping in tests.
func All() []any {
	return []any{&PartnerModel{}, &EventModel{}, &ReservationModel{}, &ReviewModel{}}
}
