package handler

import (
	"time"

	"partnerdash/internal/domain/entity"
	"partnerdash/internal/usecase"
)

const (
	establishmentCategory = "Estabelecimento"
	defaultEventCategory  = "Evento"
	defaultCustomerName   = "Cliente"
	displayTimeLayout     = "15:04"
	reservationDateLayout = "2006-01-02"
)

type partnerSummary struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	TradeName *string `json:"tradeName"`
}

type authResponse struct {
	Token string         `json:"token"`
	User  partnerSummary `json:"user"`
}

type establishmentResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	TradeName *string `json:"tradeName"`
	Category  string  `json:"category"`
	Address   string  `json:"address"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	IsActive  bool    `json:"isActive"`
}

type statsResponse struct {
	Views        int64   `json:"views"`
	Reservations int64   `json:"reservations"`
	Events       int64   `json:"events"`
	Rating       float64 `json:"rating"`
	ReviewsCount int64   `json:"reviewsCount"`
	Revenue      int64   `json:"revenue"`
}

type eventResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	IsActive    bool    `json:"isActive"`
	Image       *string `json:"image"`
}

type reservationResponse struct {
	ID            int64   `json:"id"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Guests        int     `json:"guests"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes"`
}

type reviewResponse struct {
	ID        int64     `json:"id"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Text      *string   `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

func toAuthResponse(out *usecase.AuthOutput) authResponse {
	return authResponse{
		Token: out.Token,
		User: partnerSummary{
			ID:        out.Partner.ID,
			Name:      out.Partner.CompanyName,
			Email:     out.Partner.Email,
			TradeName: out.Partner.TradeName,
		},
	}
}

func toEstablishmentResponse(p *entity.Partner) establishmentResponse {
	return establishmentResponse{
		ID:        p.ID,
		Name:      p.CompanyName,
		TradeName: p.TradeName,
		Category:  establishmentCategory,
		Address:   valueOr(p.AddressLine, ""),
		Phone:     valueOr(p.Phone, ""),
		Email:     p.Email,
		City:      p.City,
		State:     p.State,
		IsActive:  p.IsVerified,
	}
}

func toStatsResponse(s *usecase.DashboardStats) statsResponse {
	return statsResponse{
		Views:        s.Views,
		Reservations: s.Reservations,
		Events:       s.Events,
		Rating:       s.Rating,
		ReviewsCount: s.ReviewsCount,
		Revenue:      s.Revenue,
	}
}

func toEventResponse(e *entity.Event, loc *time.Location) eventResponse {
	var price float64
	if e.PriceMinCents != nil {
		price = float64(*e.PriceMinCents) / 100
	}

	return eventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.StartsAt.UTC().Format(time.RFC3339),
		Time:        e.StartsAt.In(loc).Format(displayTimeLayout),
		Category:    valueOr(e.Category, defaultEventCategory),
		Price:       price,
		IsActive:    e.IsActive(),
		Image:       e.CoverImageURL,
	}
}

func toReservationResponse(r *entity.Reservation, loc *time.Location) reservationResponse {
	reservedAt := r.ReservedAt.In(loc)

	return reservationResponse{
		ID:            r.ID,
		CustomerName:  valueOr(r.Name, defaultCustomerName),
		CustomerEmail: "",
		CustomerPhone: valueOr(r.Phone, ""),
		Date:          reservedAt.Format(reservationDateLayout),
		Time:          reservedAt.Format(displayTimeLayout),
		Guests:        r.People,
		Status:        r.Status.String(),
		Notes:         r.Notes,
	}
}

func toReviewResponse(r *entity.Review) reviewResponse {
	return reviewResponse{
		ID:        r.ID,
		UserName:  r.UserName,
		Rating:    r.Rating,
		Text:      r.Text,
		CreatedAt: r.CreatedAt.UTC(),
	}
}

// mapSlice converts entities to response items, never returning nil so empty lists render as [].
func mapSlice[E, R any](items []E, fn func(E) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}

	return out
}

// valueOr dereferences s, substituting fallback for nil or empty values.
func valueOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}

	return *s
}
