package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

func TestReservation_CanBeCancelled(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	r := &Reservation{
		Date:     date,
		TimeFrom: types.MustParseTimeOfDay("13:30"),
		TimeTo:   types.MustParseTimeOfDay("15:00"),
		Status:   ReservationStatusReserved,
	}

	assert.True(t, r.CanBeCancelled(date.Add(13*time.Hour)))
	assert.False(t, r.CanBeCancelled(date.Add(13*time.Hour+30*time.Minute)), "already started")

	r.Status = ReservationStatusCancelled
	assert.False(t, r.CanBeCancelled(date))
	assert.False(t, r.IsActive())
}

func TestActiveReservationsByTable(t *testing.T) {
	reservations := []*Reservation{
		{ID: "1", TableNumber: "1", Status: ReservationStatusReserved},
		{ID: "2", TableNumber: "2", Status: ReservationStatusCancelled},
		{ID: "3", TableNumber: "1", Status: ReservationStatusReserved},
	}

	byTable := ActiveReservationsByTable(reservations)

	assert.Len(t, byTable["1"], 2)
	assert.Empty(t, byTable["2"])
}

func TestParseDishSort(t *testing.T) {
	s, err := ParseDishSort("price,desc")
	assert.NoError(t, err)
	assert.Equal(t, DishSort{Field: "price", Ascending: false}, s)

	s, err = ParseDishSort("popularity")
	assert.NoError(t, err)
	assert.Equal(t, DishSort{Field: "popularity", Ascending: true}, s)

	_, err = ParseDishSort("name,asc")
	assert.ErrorIs(t, err, ErrInvalidDishSort)

	_, err = ParseDishSort("price,up")
	assert.ErrorIs(t, err, ErrInvalidDishSort)
}

func TestSortDishes(t *testing.T) {
	dishes := []*Dish{
		{ID: "a", Price: 12, Popularity: 5},
		{ID: "b", Price: 8, Popularity: 9},
		{ID: "c", Price: 12, Popularity: 1},
	}

	SortDishes(dishes, DishSort{Field: "price", Ascending: true})
	assert.Equal(t, []string{"b", "a", "c"}, []string{dishes[0].ID, dishes[1].ID, dishes[2].ID})

	SortDishes(dishes, DishSort{Field: "popularity", Ascending: false})
	assert.Equal(t, []string{"b", "a", "c"}, []string{dishes[0].ID, dishes[1].ID, dishes[2].ID})
}

func TestParseDishType(t *testing.T) {
	dt, err := ParseDishType("main_course")
	assert.NoError(t, err)
	assert.Equal(t, DishTypeMainCourse, dt)

	_, err = ParseDishType("SOUP")
	assert.ErrorIs(t, err, ErrInvalidDishType)
}
