package sign_in

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/service/users/models"
)

type UserService interface {
	SignIn(ctx context.Context, req *models.SignInRequest) (*models.SignInResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
