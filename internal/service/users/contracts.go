package users

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	userRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/user"
	"github.com/m04kA/SMC-RestaurantService/internal/integrations/auth"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, email string, upd userRepo.ProfileUpdate) (*domain.User, error)
}

// PasswordHasher интерфейс хеширования паролей
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}

// TokenIssuer интерфейс выпуска access token
type TokenIssuer interface {
	Issue(user *domain.User) (*auth.IssuedToken, error)
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

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
