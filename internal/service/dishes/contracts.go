package dishes

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// DishRepository интерфейс репозитория блюд
type DishRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Dish, error)
	GetAll(ctx context.Context, dishType *domain.DishType) ([]*domain.Dish, error)
	GetPopular(ctx context.Context) ([]*domain.Dish, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
