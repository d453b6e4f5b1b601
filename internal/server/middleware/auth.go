// Package middleware provides HTTP middleware for authentication.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

const (
	userIDKey  ContextKey = "userID"
	tokenIDKey ContextKey = "tokenID"
)

// TokenClaims exposes the identifiers the middleware stores on the request.
type TokenClaims interface {
	GetUserID() uuid.UUID
	GetTokenID() string
}

// TokenValidator validates a bearer token and returns its claims. Validation
// includes the session allowlist, so a revoked token fails here.
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenString string) (TokenClaims, error)
}

// Auth creates middleware that validates bearer tokens and adds the user and
// token IDs to the request context.
func Auth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := bearerToken(r)
			if tokenString == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := validator.ValidateToken(r.Context(), tokenString)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.GetUserID())
			ctx = context.WithValue(ctx, tokenIDKey, claims.GetTokenID())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from the Authorization header. The "Bearer"
// prefix is matched case-insensitively.
func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetUserID extracts the authenticated user ID from the request context.
func GetUserID(r *http.Request) (uuid.UUID, error) {
	userID, ok := r.Context().Value(userIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, fmt.Errorf("user ID not found in request context")
	}
	return userID, nil
}

// GetTokenID extracts the token ID of the current session from the request
// context.
func GetTokenID(r *http.Request) (string, error) {
	tokenID, ok := r.Context().Value(tokenIDKey).(string)
	if !ok || tokenID == "" {
		return "", fmt.Errorf("token ID not found in request context")
	}
	return tokenID, nil
}
