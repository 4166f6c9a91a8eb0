package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/tagmantra/tagmantra/backend/internal/auth"
	"github.com/tagmantra/tagmantra/backend/internal/domain"
	"github.com/tagmantra/tagmantra/backend/internal/repo"
)

// minPasswordLength is the shortest password Register accepts.
const minPasswordLength = 6

// AuthService implements registration and login.
type AuthService struct {
	users  repo.UserRepo
	tokens *auth.TokenManager
}

// NewAuthService constructs an AuthService backed by the provided user repo
// and token manager.
func NewAuthService(users repo.UserRepo, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a user and returns the record plus an issued token.
// Returns domain.ErrValidation on missing fields or a short password and
// domain.ErrConflict when the email is already registered.
func (s *AuthService) Register(ctx context.Context, email, name, password string) (domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || name == "" || password == "" {
		return domain.User{}, "", fmt.Errorf("%w: email, name, and password are required", domain.ErrValidation)
	}
	if len(password) < minPasswordLength {
		return domain.User{}, "", fmt.Errorf("%w: password must be at least %d characters long", domain.ErrValidation, minPasswordLength)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Register: %w", err)
	}

	user, err := s.users.Create(ctx, email, name, hash)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Register: %w", err)
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Name)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Register: %w", err)
	}
	return user, token, nil
}

// Login verifies credentials and returns the user plus a fresh token.
// Returns domain.ErrUnauthorized for an unknown email or a wrong password,
// without distinguishing the two.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	if email == "" || password == "" {
		return domain.User{}, "", fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}

	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Login: %w", domain.ErrUnauthorized)
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Login: %w", domain.ErrUnauthorized)
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Name)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Login: %w", err)
	}
	return user, token, nil
}
