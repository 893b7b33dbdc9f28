package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mlefevre/quizzlab/internal/apperror"
	"github.com/mlefevre/quizzlab/internal/config"
)

type contextKey string

const claimsContextKey contextKey = "user_claims"

// Middleware authenticates the Authorization: Bearer header and stores the
// token claims in the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := config.WithContext(r.Context())

		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			config.Error(w, r.Context(), &apperror.AuthenticationError{Message: "authentication required"})
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims, err := ValidateJWT(tokenStr)
		if err != nil {
			log.WithError(err).Warn("rejected bearer token")
			msg := "invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "token expired"
			}
			config.Error(w, r.Context(), &apperror.AuthenticationError{Message: msg})
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetUserClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(claimsContextKey).(*Claims)
	if !ok || claims == nil {
		return nil, &apperror.AuthenticationError{Message: "authentication required"}
	}
	return claims, nil
}
