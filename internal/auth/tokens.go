// Package auth provides JWT token issuance/validation, password hashing, and
// the HTTP middleware that attaches a caller identity to the request context.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned when a presented token fails validation for any
// reason (bad signature, expired, malformed claims).
var ErrInvalidToken = errors.New("invalid token")

// tokenTTL is how long an issued token stays valid.
const tokenTTL = 7 * 24 * time.Hour

// Claims are the JWT claims carried by an issued token.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates HMAC-signed JWTs.
type TokenManager struct {
	secret []byte
	now    func() time.Time
}

// NewTokenManager constructs a TokenManager signing with secret.
// now may be nil for the wall clock.
func NewTokenManager(secret string, now func() time.Time) *TokenManager {
	if now == nil {
		now = time.Now
	}
	return &TokenManager{secret: []byte(secret), now: now}
}

// Issue signs a token identifying the given user.
func (m *TokenManager) Issue(userID uuid.UUID, email, name string) (string, error) {
	issued := m.now()
	claims := Claims{
		UserID: userID.String(),
		Email:  email,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("auth.TokenManager.Issue: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a token string, returning the caller's user ID.
func (m *TokenManager) Validate(tokenStr string) (uuid.UUID, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return userID, nil
}
