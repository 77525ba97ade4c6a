package create_reservation

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
	GetByNumber(ctx context.Context, locationID, tableNumber string) (*domain.RestaurantTable, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// GetLockVersion возвращает версию блокировки столика на дату (0, если блокировки еще нет)
	GetLockVersion(ctx context.Context, locationID, tableNumber string, date time.Time) (int64, error)
	GetByDateAndLocation(ctx context.Context, date time.Time, locationAddress string) ([]*domain.Reservation, error)
	// Create сохраняет бронирование, если версия блокировки все еще равна expectedVersion
	// и слот столика не занят другим активным бронированием
	Create(ctx context.Context, res *domain.Reservation, expectedVersion int64) error
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
