package get_profile

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/service/users/models"
)

type UserService interface {
	GetProfile(ctx context.Context, email string) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
