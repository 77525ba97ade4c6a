package models

import "github.com/m04kA/SMC-RestaurantService/internal/domain"

// SignUpRequest запрос на регистрацию
type SignUpRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// SignInRequest запрос на вход
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInResponse ответ с access token
type SignInResponse struct {
	AccessToken string `json:"accessToken"`
	Username    string `json:"username"`
	Role        string `json:"role"`
}

// UpdateProfileRequest запрос на изменение профиля
type UpdateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	ImageURL  string `json:"imageUrl"`
}

// ProfileResponse данные профиля пользователя
type ProfileResponse struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	ImageURL  string `json:"imageUrl"`
	Role      string `json:"role"`
}

// FromDomainUser конвертирует domain модель в DTO профиля
func FromDomainUser(u *domain.User) *ProfileResponse {
	return &ProfileResponse{
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		ImageURL:  u.ImageURL,
		Role:      string(u.Role),
	}
}
