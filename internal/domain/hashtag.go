package domain

import "time"

// Hashtag is a catalog record for a single tag.
// Tag is the unique key, always lowercase. Popularity is a 0-100 score.
// UsageCount increments every time generation returns the tag.
type Hashtag struct {
	Tag           string     `json:"tag"`
	Category      Category   `json:"category"`
	Platforms     []Platform `json:"platforms"`
	Popularity    int        `json:"popularity"`
	Trending      bool       `json:"trending"`
	IndianContext bool       `json:"indianContext"`
	Language      string     `json:"language"`
	UsageCount    int        `json:"usageCount"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// HashtagFilter selects base-pool candidates for generation.
// AllowIndian widens the indian_context restriction when the submitted
// content itself reads as Indian.
type HashtagFilter struct {
	Category    Category
	Platform    Platform
	Language    string
	AllowIndian bool
	Limit       int
}
