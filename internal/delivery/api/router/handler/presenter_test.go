package handler

import (
	"encoding/json"
	"testing"
	"time"

	"partnerdash/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestToEventResponse(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	e := &entity.Event{
		ID:            3,
		Title:         "Show",
		StartsAt:      time.Date(2024, 1, 15, 2, 5, 0, 0, time.UTC),
		Category:      ptr("Música"),
		PriceMinCents: ptr(int64(1999)),
		Visibility:    entity.VisibilityPublic,
		CoverImageURL: ptr("https://img.example.com/3.png"),
	}

	got := toEventResponse(e, loc)

	assert.Equal(t, "2024-01-15T02:05:00Z", got.Date)
	assert.Equal(t, "23:05", got.Time)
	assert.Equal(t, "Música", got.Category)
	assert.InDelta(t, 19.99, got.Price, 1e-9)
	assert.False(t, got.IsActive)

	e.Category = ptr("")
	e.PriceMinCents = nil
	got = toEventResponse(e, loc)
	assert.Equal(t, "Evento", got.Category)
	assert.Zero(t, got.Price)
}

func TestToReservationResponse(t *testing.T) {
	r := &entity.Reservation{
		ID:         8,
		Name:       ptr("Maria"),
		Phone:      ptr("+55 11 99999-0000"),
		People:     3,
		ReservedAt: time.Date(2024, 3, 9, 19, 45, 0, 0, time.UTC),
		Status:     entity.ReservationCancelled,
	}

	got := toReservationResponse(r, time.UTC)

	assert.Equal(t, reservationResponse{
		ID:            8,
		CustomerName:  "Maria",
		CustomerEmail: "",
		CustomerPhone: "+55 11 99999-0000",
		Date:          "2024-03-09",
		Time:          "19:45",
		Guests:        3,
		Status:        "cancelled",
	}, got)
}

func TestToEstablishmentResponse(t *testing.T) {
	p := &entity.Partner{
		ID:          1,
		CompanyName: "Bar do Zé LTDA",
		Email:       "ze@example.com",
		AddressLine: ptr("Rua Augusta, 100"),
		City:        ptr("São Paulo"),
		IsVerified:  true,
	}

	got := toEstablishmentResponse(p)

	assert.Equal(t, "Bar do Zé LTDA", got.Name)
	assert.Equal(t, "Estabelecimento", got.Category)
	assert.Equal(t, "Rua Augusta, 100", got.Address)
	assert.Equal(t, "", got.Phone)
	assert.True(t, got.IsActive)
}

func TestMapSliceRendersEmptyArray(t *testing.T) {
	out := mapSlice([]*entity.Review(nil), toReviewResponse)

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}
