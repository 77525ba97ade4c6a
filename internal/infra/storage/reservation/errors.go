package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrSlotTaken возвращается, когда слот столика уже занят активным бронированием
	ErrSlotTaken = errors.New("reservation.repository: slot already taken")

	// ErrConcurrentModification возвращается, когда столик на дату был изменен другим запросом
	// между чтением версии блокировки и записью
	ErrConcurrentModification = errors.New("reservation.repository: concurrent modification")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("reservation.repository: reservation cannot be cancelled")

	// ErrExecRequest возвращается при ошибке выполнения запроса к DynamoDB
	ErrExecRequest = errors.New("reservation.repository: failed to execute request")

	// ErrMarshal возвращается при ошибке сериализации элемента
	ErrMarshal = errors.New("reservation.repository: failed to marshal item")

	// ErrUnmarshal возвращается при ошибке разбора элемента
	ErrUnmarshal = errors.New("reservation.repository: failed to unmarshal item")
)
