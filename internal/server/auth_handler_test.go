package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-agent/internal/db"
)

func TestRegister_CreatesUserAndSession(t *testing.T) {
	ts := newTestServer(t)

	userID, token := ts.register(t, "jordan@example.com", "hunter2hunter2")
	require.NotEmpty(t, token)

	// The token is immediately usable.
	rec := ts.do(t, http.MethodGet, "/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var me db.User
	decodeBody(t, rec, &me)
	assert.Equal(t, userID, me.ID)
	assert.Equal(t, "jordan@example.com", me.Email)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "jordan@example.com", "hunter2hunter2")

	rec := ts.do(t, http.MethodPost, "/auth/register", "", RegisterRequest{
		Email:    "jordan@example.com",
		FullName: "Other User",
		Password: "hunter2hunter2",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegister_Validation(t *testing.T) {
	ts := newTestServer(t)

	cases := []struct {
		name string
		req  RegisterRequest
	}{
		{"bad email", RegisterRequest{Email: "not-an-email", FullName: "A", Password: "hunter2hunter2"}},
		{"missing name", RegisterRequest{Email: "a@example.com", Password: "hunter2hunter2"}},
		{"short password", RegisterRequest{Email: "a@example.com", FullName: "A", Password: "short"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := ts.do(t, http.MethodPost, "/auth/register", "", tc.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestLogin_RoundTrip(t *testing.T) {
	ts := newTestServer(t)
	userID, _ := ts.register(t, "jordan@example.com", "hunter2hunter2")

	rec := ts.do(t, http.MethodPost, "/auth/login", "", LoginRequest{
		Email:    "jordan@example.com",
		Password: "hunter2hunter2",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, userID, resp.User.ID)
	assert.NotEmpty(t, resp.Token)
	assert.Empty(t, resp.User.PasswordHash, "password hash must not serialize")
}

func TestLogin_WrongPassword(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "jordan@example.com", "hunter2hunter2")

	rec := ts.do(t, http.MethodPost, "/auth/login", "", LoginRequest{
		Email:    "jordan@example.com",
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "jordan@example.com", "hunter2hunter2")

	wrongPw := ts.do(t, http.MethodPost, "/auth/login", "", LoginRequest{
		Email:    "jordan@example.com",
		Password: "wrong-password",
	})
	unknown := ts.do(t, http.MethodPost, "/auth/login", "", LoginRequest{
		Email:    "nobody@example.com",
		Password: "hunter2hunter2",
	})

	assert.Equal(t, wrongPw.Code, unknown.Code)
	assert.Equal(t, wrongPw.Body.String(), unknown.Body.String())
}

func TestLogout_RevokesSession(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.register(t, "jordan@example.com", "hunter2hunter2")

	rec := ts.do(t, http.MethodPost, "/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// The token still has a valid signature but its session is gone.
	rec = ts.do(t, http.MethodGet, "/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessions_IndependentPerLogin(t *testing.T) {
	ts := newTestServer(t)
	_, first := ts.register(t, "jordan@example.com", "hunter2hunter2")

	rec := ts.do(t, http.MethodPost, "/auth/login", "", LoginRequest{
		Email:    "jordan@example.com",
		Password: "hunter2hunter2",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp LoginResponse
	decodeBody(t, rec, &resp)
	second := resp.Token

	// Logging out one session leaves the other alive.
	rec = ts.do(t, http.MethodPost, "/auth/logout", first, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, http.StatusUnauthorized, ts.do(t, http.MethodGet, "/auth/me", first, nil).Code)
	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/auth/me", second, nil).Code)
}
