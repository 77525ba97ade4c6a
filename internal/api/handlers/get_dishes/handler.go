package get_dishes

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/service/dishes"
	"github.com/m04kA/SMC-RestaurantService/internal/service/dishes/models"
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

// Handle GET /api/v1/dishes
// Query params: dishType (APPETIZER|MAIN_COURSE|DESSERT), sort (price,asc|price,desc|popularity,asc|popularity,desc)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListDishesRequest{
		DishType: strings.TrimSpace(query.Get("dishType")),
		Sort:     strings.TrimSpace(query.Get("sort")),
	}

	response, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, dishes.ErrInvalidInput):
			h.logger.Warn("GET /dishes - Invalid filter: dish_type=%s, sort=%s, error=%v", req.DishType, req.Sort, err)
			handlers.RespondBadRequest(w, strings.TrimPrefix(err.Error(), dishes.ErrInvalidInput.Error()+": "))

		default:
			h.logger.Error("GET /dishes - Failed to get dishes: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /dishes - Dishes retrieved successfully: dish_type=%s, sort=%s, count=%d",
		req.DishType, req.Sort, len(response.Dishes))
	handlers.RespondJSON(w, http.StatusOK, response)
}
