package usecase

import "context"

// DashboardStats is the headline summary shown on the dashboard.
// Views and Revenue have no data source yet and are always zero.
type DashboardStats struct {
	Views        int64
	Reservations int64
	Events       int64
	Rating       float64
	ReviewsCount int64
	Revenue      int64
}

// DashboardUsecase aggregates partner statistics.
type DashboardUsecase interface {
	Stats(ctx context.Context, partnerID int64) (*DashboardStats, error)
}
