package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagmantra/tagmantra/backend/internal/auth"
	"github.com/tagmantra/tagmantra/backend/internal/domain"
	"github.com/tagmantra/tagmantra/backend/internal/service"
)

func testTokens() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", fixedNow)
}

func TestAuthService_Register(t *testing.T) {
	var storedHash string
	users := &mockUserRepo{
		create: func(_ context.Context, email, name, passwordHash string) (domain.User, error) {
			storedHash = passwordHash
			return domain.User{ID: uuid.New(), Email: email, Name: name}, nil
		},
	}

	svc := service.NewAuthService(users, testTokens())

	user, token, err := svc.Register(context.Background(), "  Asha@Example.COM ", "Asha", "secret123")

	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email, "email is lowercased and trimmed")
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "secret123", storedHash, "password must be stored hashed")
	assert.True(t, auth.CheckPassword(storedHash, "secret123"))
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	svc := service.NewAuthService(&mockUserRepo{}, testTokens())

	_, _, err := svc.Register(context.Background(), "asha@example.com", "Asha", "abc")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc := service.NewAuthService(&mockUserRepo{}, testTokens())

	_, _, err := svc.Register(context.Background(), "", "Asha", "secret123")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	users := &mockUserRepo{
		create: func(context.Context, string, string, string) (domain.User, error) {
			return domain.User{}, domain.ErrConflict
		},
	}

	svc := service.NewAuthService(users, testTokens())

	_, _, err := svc.Register(context.Background(), "asha@example.com", "Asha", "secret123")

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAuthService_Login(t *testing.T) {
	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	users := &mockUserRepo{
		getByEmail: func(_ context.Context, email string) (domain.User, error) {
			assert.Equal(t, "asha@example.com", email)
			return domain.User{ID: uuid.New(), Email: email, PasswordHash: hash}, nil
		},
	}

	svc := service.NewAuthService(users, testTokens())

	user, token, err := svc.Login(context.Background(), "Asha@Example.com", "secret123")

	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.NotEmpty(t, token)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	users := &mockUserRepo{
		getByEmail: func(context.Context, string) (domain.User, error) {
			return domain.User{}, domain.ErrNotFound
		},
	}

	svc := service.NewAuthService(users, testTokens())

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "secret123")

	// Unknown email and wrong password are indistinguishable to the caller.
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	users := &mockUserRepo{
		getByEmail: func(_ context.Context, email string) (domain.User, error) {
			return domain.User{Email: email, PasswordHash: hash}, nil
		},
	}

	svc := service.NewAuthService(users, testTokens())

	_, _, err = svc.Login(context.Background(), "asha@example.com", "wrong-password")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc := service.NewAuthService(&mockUserRepo{}, testTokens())

	_, _, err := svc.Login(context.Background(), "asha@example.com", "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}
