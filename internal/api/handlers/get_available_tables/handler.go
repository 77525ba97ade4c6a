package get_available_tables

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	getAvailableTables "github.com/m04kA/SMC-RestaurantService/internal/usecase/get_available_tables"
)

const (
	msgInvalidInput     = "invalid request parameters"
	msgLocationNotFound = "location not found"
)

type Handler struct {
	useCase GetAvailableTablesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableTablesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tables/available
// Query params: locationId (required), date (required, YYYY-MM-DD), time (HH:MM), guests (1-10)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	useCaseReq := ToUseCaseRequest(q.Get("locationId"), q.Get("date"), q.Get("time"), q.Get("guests"))

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErr *getAvailableTables.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("GET /tables/available - Invalid parameter: field=%s, reason=%s",
				validationErr.Field, validationErr.Reason)
			handlers.RespondBadRequest(w, fmt.Sprintf("invalid parameter %s: %s", validationErr.Field, validationErr.Reason))

		case errors.Is(err, getAvailableTables.ErrInvalidInput):
			h.logger.Warn("GET /tables/available - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailableTables.ErrLocationNotFound):
			h.logger.Warn("GET /tables/available - Location not found: location_id=%s", useCaseReq.LocationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		default:
			h.logger.Error("GET /tables/available - Failed to get tables: location_id=%s, date=%s, error=%v",
				useCaseReq.LocationID, useCaseReq.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /tables/available - Tables retrieved successfully: location_id=%s, date=%s, tables_count=%d",
		useCaseReq.LocationID, useCaseReq.Date, len(response))
	handlers.RespondJSON(w, http.StatusOK, response)
}
