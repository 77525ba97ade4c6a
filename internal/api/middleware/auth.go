package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/integrations/auth"
)

const (
	msgMissingToken = "missing bearer token"
	msgInvalidToken = "invalid or expired token"
)

type contextKey string

const claimsKey contextKey = "auth.claims"

// TokenVerifier проверяет access token и возвращает его claims
type TokenVerifier interface {
	Verify(raw string) (*auth.Claims, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth требует заголовок Authorization: Bearer <token>.
// Claims проверенного токена кладутся в контекст запроса.
func Auth(verifier TokenVerifier, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			scheme, token, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			claims, err := verifier.Verify(strings.TrimSpace(token))
			if err != nil {
				logger.Warn("%s %s - Invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// WithClaims возвращает контекст с claims пользователя
func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetClaims достает claims, положенные Auth
func GetClaims(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok && claims != nil
}
