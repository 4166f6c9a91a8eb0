package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/tagmantra/tagmantra/backend/internal/auth"
	"github.com/tagmantra/tagmantra/backend/internal/domain"
)

// generateRequest is the POST /hashtags/generate body.
// The two include flags default to true when omitted, matching the defaults
// callers rely on.
type generateRequest struct {
	Content              string `json:"content"`
	Platform             string `json:"platform"`
	Category             string `json:"category"`
	Count                int    `json:"count"`
	IncludeTrending      *bool  `json:"includeTrending"`
	IncludeIndianContext *bool  `json:"includeIndianContext"`
}

// GenerateHashtags handles POST /hashtags/generate.
// Identity is optional: an authenticated caller additionally gets an
// analytics record for the run.
func (s *Server) GenerateHashtags(w http.ResponseWriter, r *http.Request) {
	var body generateRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req := domain.GenerationRequest{
		Content:              body.Content,
		Platform:             domain.Platform(body.Platform),
		Category:             domain.Category(body.Category),
		Count:                body.Count,
		IncludeTrending:      boolOr(body.IncludeTrending, true),
		IncludeIndianContext: boolOr(body.IncludeIndianContext, true),
	}

	var userID *uuid.UUID
	if id, ok := auth.UserID(r.Context()); ok {
		userID = &id
	}

	result, err := s.generate.Generate(r.Context(), req, userID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// boolOr returns *b, or def when b is nil.
func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
