package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"health-monitoring-backend/internal/dto"
	"health-monitoring-backend/internal/middleware"
)

func TestSignUpThenSignIn(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/signup", dto.SignUpRequest{
		Username: "alice", Email: "a@x.com", Password: "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	msg := decodeBody[dto.MessageResponse](t, rec)
	assert.Equal(t, "User has been registered successfully", msg.Message)

	rec = env.do(t, http.MethodPost, "/signin", dto.SignInRequest{
		Username: "alice", Password: "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[dto.SignInResponse](t, rec)
	assert.True(t, resp.Auth)
	require.NotNil(t, resp.Token)

	// The token must decode back to the registration identity.
	claims, err := middleware.ValidateToken(*resp.Token, env.jwtCfg)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.ID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestSignUpDuplicate(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/signup", dto.SignUpRequest{
		Username: "alice", Email: "a@x.com", Password: "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPost, "/signup", dto.SignUpRequest{
		Username: "alice", Email: "other@x.com", Password: "secret123",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	msg := decodeBody[dto.MessageResponse](t, rec)
	assert.Equal(t, "Username or email already exist", msg.Message)

	// No second row was created.
	assert.Len(t, env.users.users, 1)
}

func TestSignInWrongPassword(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/signup", dto.SignUpRequest{
		Username: "alice", Email: "a@x.com", Password: "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPost, "/signin", dto.SignInRequest{
		Username: "alice", Password: "wrong-password",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeBody[dto.SignInResponse](t, rec)
	assert.False(t, resp.Auth)
	assert.Nil(t, resp.Token)
}

func TestSignInUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/signin", dto.SignInRequest{
		Username: "nobody", Password: "whatever",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	msg := decodeBody[dto.MessageResponse](t, rec)
	assert.Equal(t, "Incorrect username or email", msg.Message)
}

func TestSignInByEmail(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/signup", dto.SignUpRequest{
		Username: "alice", Email: "a@x.com", Password: "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPost, "/signin", dto.SignInRequest{
		Email: "a@x.com", Password: "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[dto.SignInResponse](t, rec)
	assert.True(t, resp.Auth)
	assert.NotNil(t, resp.Token)
}

func TestSignUpMissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/signup", dto.SignUpRequest{Username: "alice"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, env.users.users)
}
