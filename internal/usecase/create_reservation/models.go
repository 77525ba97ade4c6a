package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserEmail    string // email из access token
	LocationID   string
	TableNumber  string
	Date         string // YYYY-MM-DD
	TimeFrom     string // HH:MM
	TimeTo       string // HH:MM
	GuestsNumber string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              string
	UserEmail       string
	LocationID      string
	LocationAddress string
	TableNumber     string
	Date            time.Time
	TimeFrom        types.TimeOfDay
	TimeTo          types.TimeOfDay
	GuestsNumber    int
	Status          string
	CreatedAt       time.Time
}

type command struct {
	userEmail   string
	locationID  string
	tableNumber string
	date        time.Time
	slot        domain.TimeSlot
	guests      int
}
