package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservationStatus_IsValid(t *testing.T) {
	for _, s := range []ReservationStatus{ReservationPending, ReservationConfirmed, ReservationCancelled} {
		assert.True(t, s.IsValid(), s)
	}
	for _, s := range []ReservationStatus{"", "done", "PENDING"} {
		assert.False(t, s.IsValid(), s)
	}
}

func TestEvent_IsActive(t *testing.T) {
	e := &Event{Visibility: VisibilityPublic, IsApproved: true}
	assert.True(t, e.IsActive())

	e.IsApproved = false
	assert.False(t, e.IsActive())

	e = &Event{Visibility: VisibilityPrivate, IsApproved: true}
	assert.False(t, e.IsActive())
}
