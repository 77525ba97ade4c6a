package sign_up

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/service/users"
	"github.com/m04kA/SMC-RestaurantService/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgAlreadyExists      = "user with this email already exists"
	msgCreated            = "user registered successfully"
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

// Handle POST /api/v1/auth/sign-up
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/sign-up - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SignUp(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("POST /auth/sign-up - Invalid input: %v", err)
			handlers.RespondBadRequest(w, strings.TrimPrefix(err.Error(), users.ErrInvalidInput.Error()+": "))

		case errors.Is(err, users.ErrUserAlreadyExists):
			h.logger.Warn("POST /auth/sign-up - User already exists")
			handlers.RespondConflict(w, msgAlreadyExists)

		default:
			h.logger.Error("POST /auth/sign-up - Failed to register user: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/sign-up - User registered successfully")
	handlers.RespondJSON(w, http.StatusCreated, handlers.MessageResponse{Message: msgCreated})
}
