package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClaims struct {
	userID  uuid.UUID
	tokenID string
}

func (c *stubClaims) GetUserID() uuid.UUID { return c.userID }
func (c *stubClaims) GetTokenID() string   { return c.tokenID }

type stubValidator struct {
	claims *stubClaims
	err    error
}

func (v *stubValidator) ValidateToken(_ context.Context, tokenString string) (TokenClaims, error) {
	if v.err != nil {
		return nil, v.err
	}
	if tokenString != "valid-token" {
		return nil, fmt.Errorf("unexpected token: %s", tokenString)
	}
	return v.claims, nil
}

func TestAuth_ValidToken(t *testing.T) {
	userID := uuid.New()
	validator := &stubValidator{claims: &stubClaims{userID: userID, tokenID: "tok-1"}}

	var gotUser uuid.UUID
	var gotToken string
	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		gotUser, err = GetUserID(r)
		require.NoError(t, err)
		gotToken, err = GetTokenID(r)
		require.NoError(t, err)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, gotUser)
	assert.Equal(t, "tok-1", gotToken)
}

func TestAuth_RejectsBadHeaders(t *testing.T) {
	validator := &stubValidator{claims: &stubClaims{userID: uuid.New(), tokenID: "tok-1"}}
	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	cases := []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"no scheme", "valid-token"},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"empty token", "Bearer "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuth_CaseInsensitiveBearer(t *testing.T) {
	validator := &stubValidator{claims: &stubClaims{userID: uuid.New(), tokenID: "tok-1"}}
	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "bearer valid-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_RejectsInvalidToken(t *testing.T) {
	validator := &stubValidator{err: fmt.Errorf("token revoked")}
	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetUserID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	_, err := GetUserID(req)
	assert.Error(t, err)
}
