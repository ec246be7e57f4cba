package entity

import "time"

// Review is a customer rating of a partner, 1 to 5.
type Review struct {
	ID        int64
	PartnerID int64
	UserName  string
	Rating    int
	Text      *string
	CreatedAt time.Time
}

// ReviewSummary aggregates a partner's reviews.
type ReviewSummary struct {
	Count         int64
	AverageRating float64 // zero when Count is zero
}
