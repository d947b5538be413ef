package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestAuthService(userRepo *stubUserRepo) AuthService {
	return NewAuthService(userRepo, testSecret, time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())
	ctx := context.Background()

	user, err := svc.Register(ctx, "ada", "hunter2", strPtr("ada@example.com"), strPtr("Ada Lovelace"))
	require.NoError(t, err)
	assert.Equal(t, "ada", user.Username)
	assert.Empty(t, user.PasswordHash)

	token, err := svc.Login(ctx, "ada", "hunter2")
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "ada", claims.Subject)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "ada", "hunter2", nil, nil)
	require.NoError(t, err)

	_, err = svc.Register(ctx, "ada", "other", nil, nil)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginFailures(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "ada", "hunter2", nil, nil)
	require.NoError(t, err)

	_, err = svc.Login(ctx, "ada", "wrong")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, err = svc.Login(ctx, "nobody", "hunter2")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, err = svc.Login(ctx, "", "")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestCurrentUser(t *testing.T) {
	userRepo := newStubUserRepo()
	svc := newTestAuthService(userRepo)
	ctx := context.Background()

	_, err := svc.Register(ctx, "ada", "hunter2", nil, nil)
	require.NoError(t, err)

	user, err := svc.CurrentUser(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, "ada", user.Username)
	assert.Empty(t, user.PasswordHash)

	_, err = svc.CurrentUser(ctx, "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCurrentUserDisabled(t *testing.T) {
	userRepo := newStubUserRepo()
	svc := newTestAuthService(userRepo)
	ctx := context.Background()

	_, err := svc.Register(ctx, "ada", "hunter2", nil, nil)
	require.NoError(t, err)

	stored := userRepo.users["ada"]
	stored.Disabled = true
	userRepo.users["ada"] = stored

	_, err = svc.CurrentUser(ctx, "ada")
	assert.ErrorIs(t, err, ErrUserDisabled)
}
