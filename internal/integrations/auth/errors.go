package auth

import "errors"

var (
	// ErrInvalidToken возвращается, когда токен не прошел проверку (подпись, срок действия, issuer)
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrInvalidCredentials возвращается, когда пароль не совпадает с хешем
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrInternal возвращается при внутренних ошибках подписи или хеширования
	ErrInternal = errors.New("auth: internal error")
)
