package domain

import "time"

// SampleSource records where a live trending sample came from.
type SampleSource string

const (
	SourceAPI      SampleSource = "api"
	SourceFallback SampleSource = "fallback"
)

// LiveSample is one trending hashtag observation held in the live cache.
// Samples are ephemeral: each refresh cycle replaces the previous set for a
// platform; only their side-effect writes into the catalog persist.
type LiveSample struct {
	Tag        string       `json:"tag"`
	Platform   Platform     `json:"platform"`
	Popularity int          `json:"popularity"`
	Trending   bool         `json:"trending"`
	UsageCount int          `json:"usageCount"`
	Timestamp  time.Time    `json:"timestamp"`
	Source     SampleSource `json:"source"`
}
