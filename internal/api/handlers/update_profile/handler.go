package update_profile

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	"github.com/m04kA/SMC-RestaurantService/internal/service/users"
	"github.com/m04kA/SMC-RestaurantService/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "user not found"
)

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

// Handle PUT /api/v1/users/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		h.logger.Warn("PUT /users/profile - Missing claims")
		handlers.RespondUnauthorized(w, "")
		return
	}

	var req models.UpdateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /users/profile - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	response, err := h.service.UpdateProfile(r.Context(), claims.Email, &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("PUT /users/profile - Invalid input: email=%s, error=%v", claims.Email, err)
			handlers.RespondBadRequest(w, strings.TrimPrefix(err.Error(), users.ErrInvalidInput.Error()+": "))

		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("PUT /users/profile - User not found: email=%s", claims.Email)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /users/profile - Failed to update profile: email=%s, error=%v", claims.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /users/profile - Profile updated successfully: email=%s", claims.Email)
	handlers.RespondJSON(w, http.StatusOK, response)
}
