package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tagmantra/tagmantra/backend/internal/domain"
)

// respondError maps a service error onto the HTTP taxonomy:
// validation 400, unauthorized 401, not found 404, conflict 409, anything
// else a generic 500. Unexpected faults are logged with their full wrap
// chain; callers only ever see the generic message.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, validationMessage(err))
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "authentication required")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "already exists")
	default:
		slog.ErrorContext(r.Context(), "internal error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// validationMessage extracts the human-readable part from a wrapped
// validation error, e.g.
// "validation error: invalid platform \"snapchat\"" → "invalid platform \"snapchat\"".
func validationMessage(err error) string {
	msg := err.Error()
	const marker = "validation error: "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
