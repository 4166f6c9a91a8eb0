package live

import (
	"math/rand/v2"
	"time"

	"github.com/tagmantra/tagmantra/backend/internal/domain"
)

// Static per-platform word lists substituted when no trending source is
// configured or an upstream fetch fails.
var fallbackTags = map[domain.Platform][]string{
	domain.PlatformTwitter: {
		"india", "news", "trending", "viral", "breaking", "update", "live",
		"cricket", "ipl", "bollywood", "politics", "business", "technology",
		"startup", "entrepreneur", "marketing", "socialmedia", "digital",
		"innovation", "ai", "tech", "fintech", "edtech", "healthtech",
	},
	domain.PlatformInstagram: {
		"lifestyle", "fashion", "food", "travel", "fitness", "beauty",
		"photography", "art", "music", "nature", "love", "happy",
		"instagood", "photooftheday", "beautiful", "cute", "selfie",
		"summer", "instadaily", "friends", "family", "fun", "style",
		"smile", "foodie", "delicious", "recipe", "cooking", "restaurant",
	},
	domain.PlatformYouTube: {
		"youtube", "video", "vlog", "tutorial", "review", "gaming",
		"music", "entertainment", "comedy", "tech", "education",
		"cooking", "fitness", "travel", "lifestyle", "beauty",
		"fashion", "reaction", "challenge", "prank", "funny",
		"trending", "viral", "new", "latest", "hot", "popular",
	},
	domain.PlatformFacebook: {
		"news", "india", "politics", "sports", "entertainment",
		"business", "technology", "health", "education", "lifestyle",
		"food", "travel", "fashion", "beauty", "fitness",
		"music", "movies", "books", "gaming", "art", "culture",
		"community", "friends", "family", "memories", "life",
	},
}

// fallbackBand holds the randomization ranges for synthetic sample scores.
type fallbackBand struct {
	popMin, popSpread     int
	usageMin, usageSpread int
}

var fallbackBands = map[domain.Platform]fallbackBand{
	domain.PlatformTwitter:   {popMin: 60, popSpread: 40, usageMin: 1000, usageSpread: 50000},
	domain.PlatformInstagram: {popMin: 60, popSpread: 40, usageMin: 5000, usageSpread: 100000},
	domain.PlatformYouTube:   {popMin: 60, popSpread: 40, usageMin: 1000, usageSpread: 20000},
	domain.PlatformFacebook:  {popMin: 70, popSpread: 30, usageMin: 500, usageSpread: 10000},
}

// FallbackSamples returns the static word list for platform as live samples,
// each with a popularity score and usage count randomized within the
// platform's band and Source set to fallback.
func FallbackSamples(platform domain.Platform, now time.Time) []domain.LiveSample {
	band := fallbackBands[platform]
	tags := fallbackTags[platform]

	samples := make([]domain.LiveSample, len(tags))
	for i, tag := range tags {
		samples[i] = domain.LiveSample{
			Tag:        tag,
			Platform:   platform,
			Popularity: band.popMin + rand.IntN(band.popSpread),
			Trending:   true,
			UsageCount: band.usageMin + rand.IntN(band.usageSpread),
			Timestamp:  now,
			Source:     domain.SourceFallback,
		}
	}
	return samples
}
