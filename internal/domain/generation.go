package domain

// DefaultGenerationCount is the hashtag count used when a generation request
// omits the count field. The effective count is still clamped to the
// platform's cap.
const DefaultGenerationCount = 20

// GenerationRequest carries a validated hashtag-generation request from the
// HTTP layer to the service layer.
type GenerationRequest struct {
	Content              string
	Platform             Platform
	Category             Category
	Count                int
	IncludeTrending      bool
	IncludeIndianContext bool
}

// GenerationResult is the outcome of one generation run.
// Trending and IndianContext report the separately-queried candidate lists,
// not the members of the merged final list; callers use them as supplementary
// display buckets.
type GenerationResult struct {
	Hashtags      []string `json:"hashtags"`
	Trending      []string `json:"trending"`
	IndianContext []string `json:"indianContext"`
	TotalCount    int      `json:"totalCount"`
	Platform      Platform `json:"platform"`
	Category      Category `json:"category"`
}
