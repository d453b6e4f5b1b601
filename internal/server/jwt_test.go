package server

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-agent/internal/config"
)

func testJWTService(secret string) *JWTService {
	return NewJWTService(&config.JWTConfig{Secret: secret, ExpirationHours: 1})
}

func TestGenerateToken_RoundTrip(t *testing.T) {
	service := testJWTService("test-secret")
	userID := uuid.New()

	token, tokenID, err := service.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, tokenID)

	claims, err := service.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.GetUserID())
	assert.Equal(t, tokenID, claims.GetTokenID())
}

func TestGenerateToken_UniqueIDs(t *testing.T) {
	service := testJWTService("test-secret")
	userID := uuid.New()

	_, first, err := service.GenerateToken(userID)
	require.NoError(t, err)
	_, second, err := service.GenerateToken(userID)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, _, err := testJWTService("secret-a").GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = testJWTService("secret-b").ParseToken(token)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	service := testJWTService("test-secret")

	claims := &Claims{
		UserID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = service.ParseToken(token)
	assert.Error(t, err)
}

func TestParseToken_MissingTokenID(t *testing.T) {
	service := testJWTService("test-secret")

	claims := &Claims{
		UserID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = service.ParseToken(token)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	service := testJWTService("test-secret")

	for _, token := range []string{"", "not.a.token", "a.b"} {
		_, err := service.ParseToken(token)
		assert.Error(t, err, "token %q", token)
	}
}

func TestSessionValidator(t *testing.T) {
	service := testJWTService("test-secret")
	sessions := newFakeSessions()
	validator := NewTokenValidator(service, sessions)
	ctx := context.Background()

	userID := uuid.New()
	token, tokenID, err := service.GenerateToken(userID)
	require.NoError(t, err)

	// Signed but never registered: rejected.
	_, err = validator.ValidateToken(ctx, token)
	assert.Error(t, err)

	require.NoError(t, sessions.Create(ctx, tokenID, userID))
	claims, err := validator.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.GetUserID())

	// Revoked afterwards: rejected again.
	require.NoError(t, sessions.Revoke(ctx, tokenID))
	_, err = validator.ValidateToken(ctx, token)
	assert.Error(t, err)
}

func TestSessionValidator_UserMismatch(t *testing.T) {
	service := testJWTService("test-secret")
	sessions := newFakeSessions()
	validator := NewTokenValidator(service, sessions)
	ctx := context.Background()

	token, tokenID, err := service.GenerateToken(uuid.New())
	require.NoError(t, err)
	require.NoError(t, sessions.Create(ctx, tokenID, uuid.New()))

	_, err = validator.ValidateToken(ctx, token)
	assert.Error(t, err)
}
