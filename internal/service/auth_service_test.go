package service

import (
	"alcyxob/fitness-tracker/internal/repository/memory"
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestAuthService_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(memory.NewUserRepository(), testSecret, time.Hour)

	token, user, err := svc.Register(ctx, "Alice", " Alice@Example.com ", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Empty(t, user.PasswordHash)

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, TokenIssuer, claims.Issuer)

	token, logged, err := svc.Login(ctx, "alice@example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, logged.ID)
	assert.Empty(t, logged.PasswordHash)
}

func TestAuthService_RegisterErrors(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(memory.NewUserRepository(), testSecret, time.Hour)

	_, _, err := svc.Register(ctx, "", "a@b.c", "pw")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, _, err = svc.Register(ctx, "A", "a@b.c", "pw")
	require.NoError(t, err)
	_, _, err = svc.Register(ctx, "A", "A@B.C", "pw")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_LoginFailures(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(memory.NewUserRepository(), testSecret, time.Hour)
	_, _, err := svc.Register(ctx, "A", "a@b.c", "right")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "a@b.c", "wrong")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	_, _, err = svc.Login(ctx, "nobody@b.c", "right")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	_, _, err = svc.Login(ctx, "", "")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestAuthService_GetProfile(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(memory.NewUserRepository(), testSecret, time.Hour)
	_, user, err := svc.Register(ctx, "A", "a@b.c", "pw")
	require.NoError(t, err)

	got, err := svc.GetProfile(ctx, user.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)
	assert.Empty(t, got.PasswordHash)

	_, err = svc.GetProfile(ctx, "000000000000000000000000")
	assert.EqualError(t, err, "User not found")

	_, err = svc.GetProfile(ctx, "bad")
	var invalid *InvalidIDError
	assert.ErrorAs(t, err, &invalid)
}

func TestNewAuthService_EmptySecretPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewAuthService(memory.NewUserRepository(), "", time.Hour)
	})
}
