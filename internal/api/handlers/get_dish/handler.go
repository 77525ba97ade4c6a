package get_dish

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/service/dishes"
)

const msgNotFound = "dish not found"

type Handler struct {
	service DishService
	logger  Logger
}

func NewHandler(service DishService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/dishes/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dishID := mux.Vars(r)["id"]

	response, err := h.service.GetByID(r.Context(), dishID)
	if err != nil {
		switch {
		case errors.Is(err, dishes.ErrDishNotFound):
			h.logger.Warn("GET /dishes/{id} - Dish not found: dish_id=%s", dishID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /dishes/{id} - Failed to get dish: dish_id=%s, error=%v", dishID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /dishes/{id} - Dish retrieved successfully: dish_id=%s", dishID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
