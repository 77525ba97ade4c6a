package get_dish

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/service/dishes/models"
)

type DishService interface {
	GetByID(ctx context.Context, id string) (*models.DishDetailsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
