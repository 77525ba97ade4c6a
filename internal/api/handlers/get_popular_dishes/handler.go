package get_popular_dishes

import (
	"net/http"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
)

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

// Handle GET /api/v1/dishes/popular
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.GetPopular(r.Context())
	if err != nil {
		h.logger.Error("GET /dishes/popular - Failed to get popular dishes: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /dishes/popular - Dishes retrieved successfully: count=%d", len(response.Dishes))
	handlers.RespondJSON(w, http.StatusOK, response)
}
