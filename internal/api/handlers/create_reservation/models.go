package create_reservation

import (
	"encoding/json"
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	createReservation "github.com/m04kA/SMC-RestaurantService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model.
// guestsNumber принимается и числом, и строкой.
type CreateReservationRequest struct {
	LocationID   string      `json:"locationId"`
	TableNumber  string      `json:"tableNumber"`
	Date         string      `json:"date"`     // "2026-11-20"
	TimeFrom     string      `json:"timeFrom"` // "13:30"
	TimeTo       string      `json:"timeTo"`   // "15:00"
	GuestsNumber json.Number `json:"guestsNumber"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              string `json:"id"`
	LocationID      string `json:"locationId"`
	LocationAddress string `json:"locationAddress"`
	TableNumber     string `json:"tableNumber"`
	Date            string `json:"date"`
	TimeFrom        string `json:"timeFrom"`
	TimeTo          string `json:"timeTo"`
	GuestsNumber    int    `json:"guestsNumber"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userEmail string) *createReservation.Request {
	return &createReservation.Request{
		UserEmail:    userEmail,
		LocationID:   r.LocationID,
		TableNumber:  r.TableNumber,
		Date:         r.Date,
		TimeFrom:     r.TimeFrom,
		TimeTo:       r.TimeTo,
		GuestsNumber: r.GuestsNumber.String(),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:              resp.ID,
		LocationID:      resp.LocationID,
		LocationAddress: resp.LocationAddress,
		TableNumber:     resp.TableNumber,
		Date:            resp.Date.Format(domain.DateFormat),
		TimeFrom:        resp.TimeFrom.String(),
		TimeTo:          resp.TimeTo.String(),
		GuestsNumber:    resp.GuestsNumber,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
