package create_reservation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

// validateRequest разбирает и проверяет поля запроса относительно now (UTC)
func validateRequest(req *Request, now time.Time, limits domain.GuestLimits) (*command, error) {
	if strings.TrimSpace(req.UserEmail) == "" {
		return nil, invalidField("userEmail", "is required")
	}

	locationID := strings.TrimSpace(req.LocationID)
	if locationID == "" {
		return nil, invalidField("locationId", "is required")
	}

	tableNumber := strings.TrimSpace(req.TableNumber)
	if tableNumber == "" {
		return nil, invalidField("tableNumber", "is required")
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, invalidField("date", "must be in yyyy-MM-dd format")
	}
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return nil, invalidField("date", "must not be in the past")
	}

	from, err := types.ParseTimeOfDay(req.TimeFrom)
	if err != nil {
		return nil, invalidField("timeFrom", "must be in HH:mm format")
	}
	to, err := types.ParseTimeOfDay(req.TimeTo)
	if err != nil {
		return nil, invalidField("timeTo", "must be in HH:mm format")
	}
	slot, err := domain.NewTimeSlot(from, to)
	if err != nil {
		return nil, invalidField("timeTo", "must be after timeFrom")
	}
	if from.OnDate(date).Before(now) {
		return nil, invalidField("timeFrom", "must not be in the past")
	}

	guests, err := strconv.Atoi(strings.TrimSpace(req.GuestsNumber))
	if err != nil {
		return nil, invalidField("guestsNumber", "must be an integer")
	}
	if !limits.Contains(guests) {
		return nil, invalidField("guestsNumber", fmt.Sprintf("must be between %d and %d", limits.Min, limits.Max))
	}

	return &command{
		userEmail:   strings.TrimSpace(req.UserEmail),
		locationID:  locationID,
		tableNumber: tableNumber,
		date:        date,
		slot:        slot,
		guests:      guests,
	}, nil
}

// hasConflict проверяет, пересекается ли слот с активным бронированием столика
func hasConflict(slot domain.TimeSlot, tableNumber string, reservations []*domain.Reservation) bool {
	for _, r := range domain.ActiveReservationsByTable(reservations)[tableNumber] {
		if slot.Overlaps(r.Slot()) {
			return true
		}
	}
	return false
}
