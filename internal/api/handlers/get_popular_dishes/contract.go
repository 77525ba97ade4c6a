package get_popular_dishes

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/service/dishes/models"
)

type DishService interface {
	GetPopular(ctx context.Context) (*models.DishListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
