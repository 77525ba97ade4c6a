package get_location_dishes

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/service/locations/models"
)

type LocationService interface {
	GetSpecialityDishes(ctx context.Context, locationID string) ([]models.SpecialityDishResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
