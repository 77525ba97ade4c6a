package create_reservation

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-RestaurantService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidInput         = "invalid reservation data"
	msgLocationNotFound     = "location not found"
	msgTableNotFound        = "table not found"
	msgInsufficientCapacity = "table capacity is less than guests number"
	msgInvalidTimeSlot      = "time range does not match any available slot"
	msgSlotNotAvailable     = "selected time slot is already reserved"
	msgConcurrentReserve    = "table was reserved by another request, please retry"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing claims")
		handlers.RespondUnauthorized(w, "")
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(claims.Email))
	if err != nil {
		var validationErr *createReservation.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /reservations - Invalid field: field=%s, reason=%s", validationErr.Field, validationErr.Reason)
			handlers.RespondBadRequest(w, fmt.Sprintf("invalid field %s: %s", validationErr.Field, validationErr.Reason))

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReservation.ErrInvalidTimeSlot):
			h.logger.Warn("POST /reservations - Invalid time slot: %s-%s", req.TimeFrom, req.TimeTo)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createReservation.ErrInsufficientCapacity):
			h.logger.Warn("POST /reservations - Insufficient capacity: location_id=%s, table=%s, guests=%s",
				req.LocationID, req.TableNumber, req.GuestsNumber)
			handlers.RespondBadRequest(w, msgInsufficientCapacity)

		case errors.Is(err, createReservation.ErrLocationNotFound):
			h.logger.Warn("POST /reservations - Location not found: location_id=%s", req.LocationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, createReservation.ErrTableNotFound):
			h.logger.Warn("POST /reservations - Table not found: location_id=%s, table=%s", req.LocationID, req.TableNumber)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /reservations - Slot not available: location_id=%s, table=%s, date=%s, slot=%s-%s",
				req.LocationID, req.TableNumber, req.Date, req.TimeFrom, req.TimeTo)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createReservation.ErrConcurrentModification):
			h.logger.Warn("POST /reservations - Concurrent reservation: location_id=%s, table=%s, date=%s",
				req.LocationID, req.TableNumber, req.Date)
			handlers.RespondConflict(w, msgConcurrentReserve)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user=%s, error=%v", claims.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: id=%s, user=%s", result.ID, claims.Email)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
