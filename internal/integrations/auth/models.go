package auth

import (
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// Claims данные пользователя, которые переносит access token
type Claims struct {
	Subject    string
	GivenName  string
	FamilyName string
	Email      string
	Role       domain.Role
}

// IssuedToken подписанный токен и момент истечения
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}
