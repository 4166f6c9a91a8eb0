package handler

import (
	"net/http"
	"time"

	"github.com/tagmantra/tagmantra/backend/internal/domain"
)

// liveResponse is the body for live cache reads.
type liveResponse struct {
	Hashtags    []domain.LiveSample `json:"hashtags"`
	Platform    string              `json:"platform"`
	LastUpdated time.Time           `json:"lastUpdated"`
	Source      string              `json:"source"`
	Count       int                 `json:"count"`
}

// GetLive handles GET /hashtags/live?platform=&refresh=.
// An empty platform returns the union across all four platforms;
// refresh=true forces a refetch before responding.
func (s *Server) GetLive(w http.ResponseWriter, r *http.Request) {
	platform := domain.Platform(r.URL.Query().Get("platform"))
	if platform != "" && !platform.Valid() {
		writeError(w, http.StatusBadRequest, "invalid platform")
		return
	}

	var samples []domain.LiveSample
	if r.URL.Query().Get("refresh") == "true" {
		samples = s.live.Refresh(r.Context(), platform)
	} else {
		samples = s.live.GetAll(r.Context(), platform)
	}

	writeJSON(w, http.StatusOK, liveResponse{
		Hashtags:    samples,
		Platform:    platformKey(platform),
		LastUpdated: time.Now(),
		Source:      "live_api",
		Count:       len(samples),
	})
}

// livePostRequest is the POST /hashtags/live body.
type livePostRequest struct {
	Action   string `json:"action"`
	Platform string `json:"platform"`
	Content  string `json:"content"`
}

// PostLive handles POST /hashtags/live.
// action=refresh refetches the platform's trends; action=suggest returns
// content-based suggestions from the current trending list.
func (s *Server) PostLive(w http.ResponseWriter, r *http.Request) {
	var body livePostRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	platform := domain.Platform(body.Platform)
	if platform != "" && !platform.Valid() {
		writeError(w, http.StatusBadRequest, "invalid platform")
		return
	}

	switch body.Action {
	case "refresh":
		samples := s.live.Refresh(r.Context(), platform)
		writeJSON(w, http.StatusOK, map[string]any{
			"success":  true,
			"message":  "hashtags refreshed",
			"hashtags": samples,
			"count":    len(samples),
		})
	case "suggest":
		suggestions := s.live.Suggest(r.Context(), body.Content, platform)
		writeJSON(w, http.StatusOK, map[string]any{
			"success":     true,
			"suggestions": suggestions,
			"count":       len(suggestions),
		})
	default:
		writeError(w, http.StatusBadRequest, "invalid action")
	}
}

// platformKey renders the platform for response bodies, with "all" for the
// unfiltered union.
func platformKey(p domain.Platform) string {
	if p == "" {
		return "all"
	}
	return string(p)
}
