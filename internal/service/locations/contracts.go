package locations

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// LocationRepository интерфейс репозитория локаций
type LocationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Location, error)
	GetAll(ctx context.Context) ([]*domain.Location, error)
}

// DishRepository интерфейс репозитория блюд
type DishRepository interface {
	GetByLocation(ctx context.Context, locationID string) ([]*domain.Dish, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
