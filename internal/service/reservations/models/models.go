package models

import (
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID              string    `json:"id"`
	LocationID      string    `json:"locationId"`
	LocationAddress string    `json:"locationAddress"`
	TableNumber     string    `json:"tableNumber"`
	Date            string    `json:"date"`     // "2026-11-20"
	TimeFrom        string    `json:"timeFrom"` // "13:30"
	TimeTo          string    `json:"timeTo"`   // "15:00"
	GuestsNumber    int       `json:"guestsNumber"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:              r.ID,
		LocationID:      r.LocationID,
		LocationAddress: r.LocationAddress,
		TableNumber:     r.TableNumber,
		Date:            r.Date.Format(domain.DateFormat),
		TimeFrom:        r.TimeFrom.String(),
		TimeTo:          r.TimeTo.String(),
		GuestsNumber:    r.GuestsNumber,
		Status:          string(r.Status),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}
	for _, r := range reservations {
		resp.Reservations = append(resp.Reservations, *FromDomainReservation(r))
	}
	return resp
}
