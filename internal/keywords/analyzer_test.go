package keywords_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagmantra/tagmantra/backend/internal/keywords"
)

func TestAnalyzeIndianContext_Festival(t *testing.T) {
	got := keywords.AnalyzeIndianContext("Celebrating Diwali with the whole family!")

	assert.True(t, got.HasIndianContext)
	assert.Contains(t, got.DetectedKeywords, "diwali")
	assert.Contains(t, got.SuggestedHashtags, "festivaloflights")
	assert.Contains(t, got.SuggestedHashtags, "rangoli")
}

func TestAnalyzeIndianContext_City(t *testing.T) {
	got := keywords.AnalyzeIndianContext("Street food tour through Mumbai")

	assert.True(t, got.HasIndianContext)
	assert.Contains(t, got.DetectedKeywords, "mumbai")
	assert.Contains(t, got.SuggestedHashtags, "cityofdreams")
}

func TestAnalyzeIndianContext_CaseInsensitive(t *testing.T) {
	got := keywords.AnalyzeIndianContext("BOLLYWOOD dance practice")

	assert.True(t, got.HasIndianContext)
	assert.Contains(t, got.DetectedKeywords, "bollywood")
}

func TestAnalyzeIndianContext_MultipleKeywords(t *testing.T) {
	got := keywords.AnalyzeIndianContext("Watching cricket in Delhi during Holi")

	require.True(t, got.HasIndianContext)
	// Scan order is festivals, then cities, then culture terms.
	assert.Equal(t, []string{"holi", "delhi", "cricket"}, got.DetectedKeywords)
}

func TestAnalyzeIndianContext_NoMatch(t *testing.T) {
	got := keywords.AnalyzeIndianContext("Sunset photography on the beach")

	assert.False(t, got.HasIndianContext)
	assert.Empty(t, got.DetectedKeywords)
	assert.Empty(t, got.SuggestedHashtags)
}

func TestAnalyzeIndianContext_Empty(t *testing.T) {
	got := keywords.AnalyzeIndianContext("")

	assert.False(t, got.HasIndianContext)
	assert.Empty(t, got.DetectedKeywords)
}

func TestAnalyzeIndianContext_SuggestionsDeduplicated(t *testing.T) {
	// "republicday" and "independenceday" share most of their bundles.
	got := keywords.AnalyzeIndianContext("republicday and independenceday parades")

	seen := map[string]int{}
	for _, tag := range got.SuggestedHashtags {
		seen[tag]++
	}
	for tag, n := range seen {
		assert.Equal(t, 1, n, "tag %q appears %d times", tag, n)
	}
}

func TestDedupe_PreservesFirstSeenOrder(t *testing.T) {
	got := keywords.Dedupe([]string{"a", "b", "a", "c", "b", "d"})

	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
}

func TestDedupe_EmptyInputReturnsNonNil(t *testing.T) {
	got := keywords.Dedupe(nil)

	require.NotNil(t, got)
	assert.Empty(t, got)
}
