package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ctxKey is unexported so only this package can place values under it.
type ctxKey struct{}

// UserID extracts the authenticated caller's ID from the request context.
// The second return is false for anonymous requests.
func UserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ctxKey{}).(uuid.UUID)
	return id, ok
}

// WithUserID returns a context carrying the given caller identity.
// Exposed for handler tests.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// Identify returns a middleware that validates a bearer token when one is
// present and attaches the caller's ID to the request context. Requests
// without a token, or with an invalid one, pass through anonymously —
// individual handlers decide whether identity is required.
func Identify(tokens *TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := bearerToken(r); token != "" {
				if id, err := tokens.Validate(token); err == nil {
					r = r.WithContext(WithUserID(r.Context(), id))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer x" header.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
