package get_profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	"github.com/m04kA/SMC-RestaurantService/internal/service/users"
)

const msgNotFound = "user not found"

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		h.logger.Warn("GET /users/profile - Missing claims")
		handlers.RespondUnauthorized(w, "")
		return
	}

	response, err := h.service.GetProfile(r.Context(), claims.Email)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("GET /users/profile - User not found: email=%s", claims.Email)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /users/profile - Failed to get profile: email=%s, error=%v", claims.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/profile - Profile retrieved successfully: email=%s", claims.Email)
	handlers.RespondJSON(w, http.StatusOK, response)
}
