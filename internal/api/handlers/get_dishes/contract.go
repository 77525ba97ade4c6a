package get_dishes

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/service/dishes/models"
)

type DishService interface {
	List(ctx context.Context, req *models.ListDishesRequest) (*models.DishListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
