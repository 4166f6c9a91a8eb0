package handler

import (
	"net/http"
	"time"
)

// Seed handles POST /seed, the development-only sample data load.
// Outside development mode it refuses with 403.
func (s *Server) Seed(w http.ResponseWriter, r *http.Request) {
	if !s.devMode {
		writeError(w, http.StatusForbidden, "seeding is not allowed outside development")
		return
	}

	hashtags, festivals, err := s.seeder.Run(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "database seeded",
		"hashtags":  hashtags,
		"festivals": festivals,
		"timestamp": time.Now().UTC(),
	})
}
