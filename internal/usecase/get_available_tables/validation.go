package get_available_tables

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

// validateRequest разбирает и проверяет параметры запроса относительно текущего момента now (UTC)
func validateRequest(req *Request, now time.Time, limits domain.GuestLimits) (*query, error) {
	locationID := strings.TrimSpace(req.LocationID)
	if locationID == "" {
		return nil, invalidField("locationId", "is required")
	}

	if req.Date == "" {
		return nil, invalidField("date", "is required")
	}
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, invalidField("date", fmt.Sprintf("must be in %s format", "yyyy-MM-dd"))
	}
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return nil, invalidField("date", "must not be in the past")
	}

	guests := limits.Min
	if req.Guests != "" {
		guests, err = strconv.Atoi(strings.TrimSpace(req.Guests))
		if err != nil {
			return nil, invalidField("guests", "must be an integer")
		}
		if !limits.Contains(guests) {
			return nil, invalidField("guests", fmt.Sprintf("must be between %d and %d", limits.Min, limits.Max))
		}
	}

	var requested *types.TimeOfDay
	if req.Time != "" {
		t, err := types.ParseTimeOfDay(req.Time)
		if err != nil {
			return nil, invalidField("time", "must be in HH:mm format")
		}
		if t.OnDate(date).Before(now) {
			return nil, invalidField("time", "must not be in the past")
		}
		requested = &t
	}

	return &query{
		locationID: locationID,
		date:       date,
		requested:  requested,
		guests:     guests,
	}, nil
}
