package get_user_reservations

import (
	"net/http"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		h.logger.Warn("GET /reservations - Missing claims")
		handlers.RespondUnauthorized(w, "")
		return
	}

	response, err := h.service.GetUserReservations(r.Context(), claims.Email)
	if err != nil {
		h.logger.Error("GET /reservations - Failed to get reservations: user=%s, error=%v", claims.Email, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations - Reservations retrieved successfully: user=%s, count=%d",
		claims.Email, len(response.Reservations))
	handlers.RespondJSON(w, http.StatusOK, response)
}
