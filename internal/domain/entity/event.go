package entity

import "time"

// Visibility values for events.
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// Event is something a partner promotes (a show, a themed night, a tasting).
type Event struct {
	ID            int64
	PartnerID     int64
	Title         string
	Description   *string
	StartsAt      time.Time
	EndsAt        *time.Time
	Category      *string
	PriceMinCents *int64
	Visibility    string
	IsApproved    bool
	CoverImageURL *string
	CreatedAt     time.Time
}

// IsActive reports whether the event is visible to the public.
func (e *Event) IsActive() bool {
	return e.Visibility == VisibilityPublic && e.IsApproved
}
