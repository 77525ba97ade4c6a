package users

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: email is not valid", ErrInvalidInput)
	}
	return nil
}

func validateName(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	if utf8.RuneCountInString(value) > domain.MaxNameLength {
		return fmt.Errorf("%w: %s must be at most %d characters", ErrInvalidInput, field, domain.MaxNameLength)
	}
	return nil
}

// validatePassword проверяет длину и наличие заглавной, строчной буквы, цифры и спецсимвола
func validatePassword(password string) error {
	n := utf8.RuneCountInString(password)
	if n < domain.MinPasswordLength || n > domain.MaxPasswordLength {
		return fmt.Errorf("%w: password must be %d-%d characters long",
			ErrInvalidInput, domain.MinPasswordLength, domain.MaxPasswordLength)
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}
	if !upper || !lower || !digit || !special {
		return fmt.Errorf("%w: password must contain an uppercase letter, a lowercase letter, a digit and a special character",
			ErrInvalidInput)
	}
	return nil
}
