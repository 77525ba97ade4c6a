package update_profile

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/service/users/models"
)

type UserService interface {
	UpdateProfile(ctx context.Context, email string, req *models.UpdateProfileRequest) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
