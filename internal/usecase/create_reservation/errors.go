package create_reservation

import (
	"errors"
	"fmt"
)

var (
	// ErrLocationNotFound возвращается, когда локация не найдена
	ErrLocationNotFound = errors.New("create_reservation: location not found")

	// ErrTableNotFound возвращается, когда столика с таким номером нет в локации
	ErrTableNotFound = errors.New("create_reservation: table not found")

	// ErrInsufficientCapacity возвращается, когда гостей больше, чем мест за столиком
	ErrInsufficientCapacity = errors.New("create_reservation: table capacity is less than guests number")

	// ErrInvalidTimeSlot возвращается, когда время не совпадает ни с одним слотом сетки
	ErrInvalidTimeSlot = errors.New("create_reservation: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда слот пересекается с активным бронированием столика
	ErrSlotNotAvailable = errors.New("create_reservation: slot is not available")

	// ErrConcurrentModification возвращается, когда столик забронировали параллельным запросом
	ErrConcurrentModification = errors.New("create_reservation: table was reserved concurrently")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

// ValidationError ошибка валидации конкретного поля запроса
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrInvalidInput)
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func invalidField(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
