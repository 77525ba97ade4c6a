package get_location_dishes

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/service/locations"
)

const msgLocationNotFound = "location not found"

type Handler struct {
	service LocationService
	logger  Logger
}

func NewHandler(service LocationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/locations/{id}/speciality-dishes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locationID := mux.Vars(r)["id"]

	response, err := h.service.GetSpecialityDishes(r.Context(), locationID)
	if err != nil {
		switch {
		case errors.Is(err, locations.ErrLocationNotFound):
			h.logger.Warn("GET /locations/{id}/speciality-dishes - Location not found: location_id=%s", locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		default:
			h.logger.Error("GET /locations/{id}/speciality-dishes - Failed to get dishes: location_id=%s, error=%v",
				locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /locations/{id}/speciality-dishes - Dishes retrieved successfully: location_id=%s, count=%d",
		locationID, len(response))
	handlers.RespondJSON(w, http.StatusOK, response)
}
