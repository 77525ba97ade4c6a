package domain

import (
	"time"

	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	ReservationStatusReserved  ReservationStatus = "RESERVED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

// Reservation represents a table reservation for one slot on one date
type Reservation struct {
	ID              string
	UserEmail       string
	LocationID      string
	LocationAddress string // denormalized, the availability index is keyed by address
	TableNumber     string
	Date            time.Time // date only, UTC
	TimeFrom        types.TimeOfDay
	TimeTo          types.TimeOfDay
	GuestsNumber    int
	Status          ReservationStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Slot returns the occupied interval
func (r *Reservation) Slot() TimeSlot {
	return TimeSlot{Start: r.TimeFrom, End: r.TimeTo}
}

// IsActive returns true if the reservation still occupies its table
func (r *Reservation) IsActive() bool {
	return r.Status != ReservationStatusCancelled
}

// StartsAt returns the reservation start as an absolute UTC instant
func (r *Reservation) StartsAt() time.Time {
	return r.TimeFrom.OnDate(r.Date)
}

// CanBeCancelled returns true if the reservation is still reserved and has not started yet
func (r *Reservation) CanBeCancelled(now time.Time) bool {
	return r.Status == ReservationStatusReserved && r.StartsAt().After(now)
}

// ActiveReservationsByTable groups active reservations by table number
func ActiveReservationsByTable(reservations []*Reservation) map[string][]*Reservation {
	byTable := make(map[string][]*Reservation)
	for _, r := range reservations {
		if !r.IsActive() {
			continue
		}
		byTable[r.TableNumber] = append(byTable[r.TableNumber], r)
	}
	return byTable
}
