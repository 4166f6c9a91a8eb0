package handler

import (
	"net/http"
	"strconv"

	"github.com/tagmantra/tagmantra/backend/internal/domain"
)

// trendingLimitMax caps the ?limit= parameter on the trending dashboard.
const trendingLimitMax = 50

// GetTrending handles GET /hashtags/trending?platform=&limit=.
// The platform defaults to instagram; the limit defaults to 20.
func (s *Server) GetTrending(w http.ResponseWriter, r *http.Request) {
	platform := domain.Platform(r.URL.Query().Get("platform"))
	if platform == "" {
		platform = domain.PlatformInstagram
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	limit = domain.ClampLimit(limit, 20, trendingLimitMax)

	overview, err := s.trending.Overview(r.Context(), platform, limit)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}
