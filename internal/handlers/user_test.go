package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"health-monitoring-backend/internal/dto"
)

func strPtr(s string) *string   { return &s }
func intPtr(i int) *int         { return &i }
func f64Ptr(f float64) *float64 { return &f }

func TestGetUser(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(1, "alice", "a@x.com", "$2a$12$notarealhash")

	rec := env.do(t, http.MethodGet, "/user/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, "a@x.com", body["email"])

	// The stored hash never leaves the process.
	assert.NotContains(t, body, "password")
	assert.NotContains(t, rec.Body.String(), "$2a$12$")
}

func TestGetUserNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/user/99", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody[dto.ErrorResponse](t, rec)
	assert.Equal(t, "user not found", body.Error)
}

func TestGetProfile(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(1, "alice", "a@x.com", "hash")
	env.users.users[1].FullName = strPtr("Alice Example")
	env.users.users[1].Age = intPtr(34)

	rec := env.do(t, http.MethodGet, "/userinfo/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	profile := decodeBody[dto.ProfileResponse](t, rec)
	require.NotNil(t, profile.FullName)
	assert.Equal(t, "Alice Example", *profile.FullName)
	require.NotNil(t, profile.Age)
	assert.Equal(t, 34, *profile.Age)

	// Identity fields stay out of the profile subset.
	assert.NotContains(t, rec.Body.String(), "username")
	assert.NotContains(t, rec.Body.String(), "email")
}

func TestGetProfileNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/userinfo/99", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[dto.ErrorResponse](t, rec)
	assert.Equal(t, "User not found", body.Error)
}

func TestUpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(1, "alice", "a@x.com", "hash")

	rec := env.do(t, http.MethodPut, "/userinfo/1", dto.ProfileUpdateRequest{
		FullName:   strPtr("Alice Example"),
		Age:        intPtr(34),
		Gender:     strPtr("female"),
		Height:     f64Ptr(168.5),
		Weight:     f64Ptr(61.2),
		OngoingMed: strPtr("lisinopril"),
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "Alice Example", body["full_name"])
	assert.Equal(t, float64(34), body["age"])
	assert.NotContains(t, body, "password")

	// The fake store reflects the update.
	require.NotNil(t, env.users.users[1].OngoingMed)
	assert.Equal(t, "lisinopril", *env.users.users[1].OngoingMed)
}

func TestUpdateProfileNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPut, "/userinfo/99", dto.ProfileUpdateRequest{
		FullName: strPtr("Nobody"),
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[dto.ErrorResponse](t, rec)
	assert.Equal(t, "User not found", body.Error)
}

func TestGetUserInvalidID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/user/abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
