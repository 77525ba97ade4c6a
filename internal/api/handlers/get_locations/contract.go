package get_locations

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/service/locations/models"
)

type LocationService interface {
	List(ctx context.Context) ([]models.LocationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
