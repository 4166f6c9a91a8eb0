// Package keywords holds the static keyword tables behind content analysis
// and offline hashtag generation: per-platform category strategies, trending
// terms, and the Indian-context keyword maps.
package keywords

import "github.com/tagmantra/tagmantra/backend/internal/domain"

// Strategy is the static hashtag strategy for one platform: keyword lists per
// content category plus a list of generic trending terms.
type Strategy struct {
	Categories map[domain.Category][]string
	Trending   []string
}

// Strategies maps each platform to its hashtag strategy.
// Categories not present in a platform's map simply contribute no base
// keywords to offline generation.
var Strategies = map[domain.Platform]Strategy{
	domain.PlatformInstagram: {
		Categories: map[domain.Category][]string{
			"lifestyle": {"lifestyle", "life", "daily", "motivation", "inspiration", "selfie", "photography"},
			"business":  {"business", "entrepreneur", "startup", "marketing", "brand", "success", "growth"},
			"food":      {"food", "foodie", "delicious", "recipe", "cooking", "restaurant", "tasty"},
			"travel":    {"travel", "wanderlust", "adventure", "explore", "vacation", "tourism", "journey"},
			"fashion":   {"fashion", "style", "outfit", "trendy", "clothing", "designer", "beauty"},
			"fitness":   {"fitness", "workout", "gym", "health", "exercise", "training", "wellness"},
		},
		Trending: []string{"viral", "trending", "popular", "fyp", "explore", "discover", "new"},
	},
	domain.PlatformFacebook: {
		Categories: map[domain.Category][]string{
			"lifestyle": {"lifestyle", "life", "family", "friends", "community"},
			"business":  {"business", "entrepreneur", "marketing", "brand", "networking"},
			"food":      {"food", "recipe", "cooking", "restaurant", "dining"},
			"travel":    {"travel", "vacation", "tourism", "adventure", "explore"},
			"fashion":   {"fashion", "style", "clothing", "beauty", "trends"},
			"fitness":   {"fitness", "health", "wellness", "exercise", "training"},
		},
		Trending: []string{"trending", "popular", "viral", "news", "update"},
	},
	domain.PlatformYouTube: {
		Categories: map[domain.Category][]string{
			"lifestyle": {"lifestyle", "vlog", "daily", "routine", "life", "personal"},
			"business":  {"business", "entrepreneur", "marketing", "tutorial", "education"},
			"food":      {"food", "cooking", "recipe", "tutorial", "review", "taste"},
			"travel":    {"travel", "vlog", "adventure", "tourism", "explore", "journey"},
			"fashion":   {"fashion", "style", "haul", "review", "beauty", "makeup"},
			"fitness":   {"fitness", "workout", "tutorial", "health", "training", "gym"},
		},
		Trending: []string{"trending", "viral", "popular", "new", "latest", "hot"},
	},
	domain.PlatformTwitter: {
		Categories: map[domain.Category][]string{
			"lifestyle": {"lifestyle", "life", "daily", "thoughts", "mood", "personal"},
			"business":  {"business", "entrepreneur", "startup", "marketing", "brand", "growth"},
			"food":      {"food", "foodie", "delicious", "recipe", "cooking", "tasty"},
			"travel":    {"travel", "wanderlust", "adventure", "explore", "vacation", "tourism"},
			"fashion":   {"fashion", "style", "outfit", "beauty", "trends", "ootd"},
			"fitness":   {"fitness", "workout", "health", "wellness", "training", "gym"},
		},
		Trending: []string{"trending", "viral", "breaking", "news", "update", "hot"},
	},
}

// festivalHashtags maps an Indian festival keyword to its hashtag bundle.
var festivalHashtags = map[string][]string{
	"diwali":          {"diwali", "festivaloflights", "deepavali", "indianfestival", "celebration", "lights", "rangoli"},
	"holi":            {"holi", "festivalofcolors", "colorful", "spring", "celebration", "fun", "colors"},
	"dussehra":        {"dussehra", "vijayadashami", "victory", "goodoverevil", "celebration", "indianfestival"},
	"eid":             {"eid", "eidmubarak", "ramadan", "festival", "celebration", "muslimfestival"},
	"christmas":       {"christmas", "xmas", "festival", "celebration", "joy", "peace"},
	"republicday":     {"republicday", "india", "patriotic", "freedom", "independence", "proudindian"},
	"independenceday": {"independenceday", "india", "patriotic", "freedom", "independence", "proudindian"},
}

// cityHashtags maps an Indian city keyword to its hashtag bundle.
var cityHashtags = map[string][]string{
	"mumbai":    {"mumbai", "bombay", "cityofdreams", "financialcapital", "bollywood"},
	"delhi":     {"delhi", "capital", "newdelhi", "history", "culture", "politics"},
	"bangalore": {"bangalore", "bengaluru", "siliconvalley", "tech", "startup", "it"},
	"chennai":   {"chennai", "madras", "tamilnadu", "culture", "tradition", "south"},
	"kolkata":   {"kolkata", "calcutta", "bengal", "culture", "literature", "art"},
	"hyderabad": {"hyderabad", "nawab", "biryani", "tech", "culture", "heritage"},
	"pune":      {"pune", "punekar", "education", "culture", "heritage", "maharashtra"},
}

// cultureHashtags maps an Indian culture keyword to its hashtag bundle.
var cultureHashtags = map[string][]string{
	"bollywood":  {"bollywood", "hindi", "movies", "entertainment", "cinema", "actors"},
	"cricket":    {"cricket", "ipl", "bcci", "sports", "india", "teamindia"},
	"food":       {"indianfood", "spicy", "curry", "biryani", "dal", "roti", "naan"},
	"languages":  {"hindi", "tamil", "telugu", "bengali", "marathi", "gujarati", "punjabi"},
	"traditions": {"tradition", "culture", "heritage", "indian", "values", "customs"},
}

// generalIndianTerms are identity words that mark content as Indian even when
// no festival, city, or culture keyword appears.
var generalIndianTerms = []string{"india", "indian", "desi", "bharat", "hindustan"}

// indianTrendingHashtags is the generic bundle appended when a general Indian
// identity term matches.
var indianTrendingHashtags = []string{"indian", "india", "desi", "bharat", "hindustan", "proudindian"}

// monthFestivals maps a calendar month (1-12) to the festival keywords
// typically falling in it. Consulted by content-based suggestion to pull in
// seasonal bundles.
var monthFestivals = map[int][]string{
	1:  {"newyear", "republicday"},
	2:  {"valentinesday"},
	3:  {"holi", "holy"},
	4:  {"easter", "ramnavami"},
	5:  {"labourday"},
	6:  {"eid"},
	7:  {"independenceday"},
	8:  {"rakhi", "raksha"},
	9:  {"ganesh", "ganpati"},
	10: {"dussehra", "navratri"},
	11: {"diwali", "deepavali"},
	12: {"christmas", "xmas"},
}
