package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/tagmantra/tagmantra/backend/internal/auth"
	"github.com/tagmantra/tagmantra/backend/internal/domain"
)

// saveSetRequest is the POST /hashtags/save body.
type saveSetRequest struct {
	Name     string   `json:"name"`
	Hashtags []string `json:"hashtags"`
	Platform string   `json:"platform"`
	Category string   `json:"category"`
}

// SaveSet handles POST /hashtags/save. Requires authentication.
func (s *Server) SaveSet(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var body saveSetRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	set := domain.SavedHashtagSet{
		Name:     body.Name,
		Hashtags: body.Hashtags,
		Platform: domain.Platform(body.Platform),
		Category: domain.Category(body.Category),
	}
	result, err := s.saved.Save(r.Context(), userID, set)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":    "hashtag set saved",
		"hashtagSet": result,
	})
}

// ListSets handles GET /hashtags/save. Requires authentication.
func (s *Server) ListSets(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	sets, err := s.saved.List(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"savedHashtags": sets})
}

// DeleteSet handles DELETE /hashtags/save?id=. Requires authentication.
func (s *Server) DeleteSet(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	setID, err := uuid.Parse(r.URL.Query().Get("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "hashtag set id is required")
		return
	}

	if err := s.saved.Delete(r.Context(), userID, setID); err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "hashtag set deleted"})
}
