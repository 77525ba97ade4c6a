package sign_up

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/service/users/models"
)

type UserService interface {
	SignUp(ctx context.Context, req *models.SignUpRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
