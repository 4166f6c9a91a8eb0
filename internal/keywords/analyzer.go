package keywords

import "strings"

// Analysis is the result of scanning free-text content for Indian context.
type Analysis struct {
	HasIndianContext  bool     `json:"hasIndianContext"`
	DetectedKeywords  []string `json:"detectedKeywords"`
	SuggestedHashtags []string `json:"suggestedHashtags"`
}

// AnalyzeIndianContext scans content for Indian festival, city, culture, and
// identity keywords by substring containment. Suggested hashtags are
// deduplicated preserving first-appearance order. Empty content yields an
// all-false, all-empty result.
func AnalyzeIndianContext(content string) Analysis {
	lower := strings.ToLower(content)

	var detected []string
	var suggested []string

	for _, kw := range festivalKeywordOrder {
		if strings.Contains(lower, kw) {
			detected = append(detected, kw)
			suggested = append(suggested, festivalHashtags[kw]...)
		}
	}
	for _, kw := range cityKeywordOrder {
		if strings.Contains(lower, kw) {
			detected = append(detected, kw)
			suggested = append(suggested, cityHashtags[kw]...)
		}
	}
	for _, kw := range cultureKeywordOrder {
		if strings.Contains(lower, kw) {
			detected = append(detected, kw)
			suggested = append(suggested, cultureHashtags[kw]...)
		}
	}
	for _, kw := range generalIndianTerms {
		if strings.Contains(lower, kw) {
			detected = append(detected, kw)
			suggested = append(suggested, indianTrendingHashtags...)
		}
	}

	return Analysis{
		HasIndianContext:  len(detected) > 0,
		DetectedKeywords:  detected,
		SuggestedHashtags: Dedupe(suggested),
	}
}

// Keyword iteration orders. Go map iteration is randomized, so scans walk
// fixed slices to keep DetectedKeywords ordering stable across calls.
var (
	festivalKeywordOrder = []string{"diwali", "holi", "dussehra", "eid", "christmas", "republicday", "independenceday"}
	cityKeywordOrder     = []string{"mumbai", "delhi", "bangalore", "chennai", "kolkata", "hyderabad", "pune"}
	cultureKeywordOrder  = []string{"bollywood", "cricket", "food", "languages", "traditions"}
)

// Dedupe removes duplicate tags preserving first-seen order.
// It always returns a non-nil slice so callers can safely range over it.
func Dedupe(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
