package dishes

import "errors"

var (
	// ErrDishNotFound возвращается, когда блюдо не найдено
	ErrDishNotFound = errors.New("dish not found")

	// ErrInvalidInput возвращается при некорректном типе блюда или сортировке
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
