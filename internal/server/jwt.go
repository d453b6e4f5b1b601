package server

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jonathan/job-agent/internal/config"
	"github.com/jonathan/job-agent/internal/server/middleware"
)

// Claims represents JWT claims with user ID. The registered ID field (jti)
// keys the session allowlist, so two tokens for the same user revoke
// independently.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}

// GetUserID returns the user ID from the claims.
func (c *Claims) GetUserID() uuid.UUID {
	return c.UserID
}

// GetTokenID returns the token ID (jti) from the claims.
func (c *Claims) GetTokenID() string {
	return c.ID
}

// JWTService provides JWT token generation and validation functionality.
type JWTService struct {
	config *config.JWTConfig
}

// NewJWTService creates a new JWT service with the given configuration.
func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{
		config: cfg,
	}
}

// GenerateToken generates a signed JWT for the given user ID and returns the
// token along with its ID for session registration.
func (s *JWTService) GenerateToken(userID uuid.UUID) (token string, tokenID string, err error) {
	now := time.Now()
	tokenID = uuid.New().String()

	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL())),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, tokenID, nil
}

// ParseToken validates a JWT's signature and time bounds and returns the
// claims. It does not consult the session allowlist.
func (s *JWTService) ParseToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token string is empty")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("token has no ID")
	}

	return claims, nil
}

// Sessions is the allowlist half of the session store the validator needs.
type Sessions interface {
	Create(ctx context.Context, tokenID string, userID uuid.UUID) error
	UserID(ctx context.Context, tokenID string) (uuid.UUID, bool, error)
	Revoke(ctx context.Context, tokenID string) error
}

// sessionValidator checks both the token signature and the session
// allowlist, so logout actually revokes access before expiry.
type sessionValidator struct {
	jwt      *JWTService
	sessions Sessions
}

// NewTokenValidator returns a middleware.TokenValidator that accepts only
// tokens with a live session.
func NewTokenValidator(jwtService *JWTService, sessions Sessions) middleware.TokenValidator {
	return &sessionValidator{jwt: jwtService, sessions: sessions}
}

func (v *sessionValidator) ValidateToken(ctx context.Context, tokenString string) (middleware.TokenClaims, error) {
	claims, err := v.jwt.ParseToken(tokenString)
	if err != nil {
		return nil, err
	}

	userID, ok, err := v.sessions.UserID(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check session: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("session revoked or expired")
	}
	if userID != claims.UserID {
		return nil, fmt.Errorf("session does not match token")
	}

	return claims, nil
}
