package get_available_tables

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// LocationRepository интерфейс репозитория локаций
type LocationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Location, error)
}

// TableRepository интерфейс репозитория столиков
type TableRepository interface {
	// GetByLocation возвращает столики локации вместимостью не меньше minCapacity
	GetByLocation(ctx context.Context, locationID string, minCapacity int) ([]*domain.RestaurantTable, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// GetByDateAndLocation возвращает все бронирования адреса на дату, включая отмененные
	GetByDateAndLocation(ctx context.Context, date time.Time, locationAddress string) ([]*domain.Reservation, error)
}

// MetricsRecorder интерфейс для записи бизнес-метрик
type MetricsRecorder interface {
	ObserveAvailableTables(count int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время в UTC
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
