package entity

import "time"

// ReservationStatus is the lifecycle state of a table reservation.
// Any status may be set from any other; transitions are not restricted.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// String returns the string representation of the status.
func (s ReservationStatus) String() string {
	return string(s)
}

// IsValid checks if the status is one of the known values.
func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCancelled:
		return true
	default:
		return false
	}
}

// Reservation is a table booking made by a customer at a partner.
type Reservation struct {
	ID         int64
	PartnerID  int64
	Name       *string
	Phone      *string
	People     int
	ReservedAt time.Time
	Status     ReservationStatus
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
