package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	userRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/user"
	"github.com/m04kA/SMC-RestaurantService/internal/integrations/auth"
	"github.com/m04kA/SMC-RestaurantService/internal/service/users/models"
)

// Service сервис регистрации, входа и профиля пользователя
type Service struct {
	userRepo     UserRepository
	hasher       PasswordHasher
	tokens       TokenIssuer
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, hasher PasswordHasher, tokens TokenIssuer, logger Logger) *Service {
	return &Service{
		userRepo:     userRepo,
		hasher:       hasher,
		tokens:       tokens,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// SignUp регистрирует нового посетителя
func (s *Service) SignUp(ctx context.Context, req *models.SignUpRequest) error {
	email := normalizeEmail(req.Email)
	s.logger.Info("SignUp: registering user=%s", email)

	if err := validateName("firstName", req.FirstName); err != nil {
		return err
	}
	if err := validateName("lastName", req.LastName); err != nil {
		return err
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	if err := validatePassword(req.Password); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("SignUp: failed to hash password for user=%s: %v", email, err)
		return fmt.Errorf("%w: SignUp - hash password: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	user := &domain.User{
		Email:        email,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		PasswordHash: hash,
		Role:         domain.RoleCustomer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, userRepo.ErrUserAlreadyExists) {
			s.logger.Warn("SignUp: user=%s already exists", email)
			return ErrUserAlreadyExists
		}
		s.logger.Error("SignUp: repository error for user=%s: %v", email, err)
		return fmt.Errorf("%w: SignUp - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SignUp: successfully registered user=%s", email)
	return nil
}

// SignIn проверяет пароль и выпускает access token
func (s *Service) SignIn(ctx context.Context, req *models.SignInRequest) (*models.SignInResponse, error) {
	email := normalizeEmail(req.Email)
	s.logger.Info("SignIn: user=%s", email)

	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("SignIn: unknown user=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("SignIn: repository error for user=%s: %v", email, err)
		return nil, fmt.Errorf("%w: SignIn - repository error: %v", ErrInternal, err)
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			s.logger.Warn("SignIn: wrong password for user=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("SignIn: failed to compare password for user=%s: %v", email, err)
		return nil, fmt.Errorf("%w: SignIn - compare password: %v", ErrInternal, err)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error("SignIn: failed to issue token for user=%s: %v", email, err)
		return nil, fmt.Errorf("%w: SignIn - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("SignIn: successfully signed in user=%s", email)
	return &models.SignInResponse{
		AccessToken: token.Token,
		Username:    user.FullName(),
		Role:        string(user.Role),
	}, nil
}

// GetProfile возвращает профиль пользователя
func (s *Service) GetProfile(ctx context.Context, email string) (*models.ProfileResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetProfile: user=%s not found", email)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetProfile: repository error for user=%s: %v", email, err)
		return nil, fmt.Errorf("%w: GetProfile - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUser(user), nil
}

// UpdateProfile изменяет имя, фамилию и аватар пользователя
func (s *Service) UpdateProfile(ctx context.Context, email string, req *models.UpdateProfileRequest) (*models.ProfileResponse, error) {
	s.logger.Info("UpdateProfile: updating user=%s", email)

	if err := validateName("firstName", req.FirstName); err != nil {
		return nil, err
	}
	if err := validateName("lastName", req.LastName); err != nil {
		return nil, err
	}

	user, err := s.userRepo.UpdateProfile(ctx, email, userRepo.ProfileUpdate{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		ImageURL:  strings.TrimSpace(req.ImageURL),
		UpdatedAt: s.timeProvider.Now(),
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("UpdateProfile: user=%s not found", email)
			return nil, ErrUserNotFound
		}
		s.logger.Error("UpdateProfile: repository error for user=%s: %v", email, err)
		return nil, fmt.Errorf("%w: UpdateProfile - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateProfile: successfully updated user=%s", email)
	return models.FromDomainUser(user), nil
}
