package keywords

import (
	"strings"

	"github.com/tagmantra/tagmantra/backend/internal/domain"
)

// GeneratePlatformHashtags is the offline counterpart of the store-backed
// generation engine: it mixes 60% base hashtags, 20% trending keywords, and
// 20% Indian-context keywords by count, deduplicates preserving first-seen
// order, and truncates to the platform cap. Each bucket contributes
// floor(cap*fraction) entries at most.
func GeneratePlatformHashtags(platform domain.Platform, count int, base, trending, indian []string) []string {
	max := platform.MaxHashtags()
	if count > 0 && count < max {
		max = count
	}

	mixed := make([]string, 0, max)
	mixed = append(mixed, head(base, max*6/10)...)
	mixed = append(mixed, head(trending, max*2/10)...)
	mixed = append(mixed, head(indian, max*2/10)...)

	unique := Dedupe(mixed)
	if len(unique) > max {
		unique = unique[:max]
	}
	return unique
}

// ContentBasedHashtags builds suggestions from the static tables alone:
// the platform's category keywords, Indian-context matches in the content,
// current-month festival bundles mentioned in the content, and the platform's
// trending terms. The month is 1-12.
func ContentBasedHashtags(content string, category domain.Category, platform domain.Platform, month int) []string {
	lower := strings.ToLower(content)
	strategy := Strategies[platform]

	var suggestions []string
	suggestions = append(suggestions, strategy.Categories[category]...)

	analysis := AnalyzeIndianContext(content)
	if analysis.HasIndianContext {
		suggestions = append(suggestions, analysis.SuggestedHashtags...)
	}

	for _, festival := range monthFestivals[month] {
		if strings.Contains(lower, festival) {
			suggestions = append(suggestions, festivalHashtags[festival]...)
		}
	}

	suggestions = append(suggestions, strategy.Trending...)
	return Dedupe(suggestions)
}

// head returns at most n leading elements of s.
func head(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
