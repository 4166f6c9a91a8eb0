// Package seed provides the development sample dataset: a starter hashtag
// catalog and the Indian festival calendar.
package seed

import (
	"time"

	"github.com/tagmantra/tagmantra/backend/internal/domain"
)

var allPlatforms = []domain.Platform{
	domain.PlatformInstagram, domain.PlatformFacebook, domain.PlatformYouTube, domain.PlatformTwitter,
}

var noYouTube = []domain.Platform{
	domain.PlatformInstagram, domain.PlatformFacebook, domain.PlatformTwitter,
}

// tag is a compact row for the seed table below.
func tag(t string, category domain.Category, platforms []domain.Platform, popularity int, trending, indian bool, usage int) domain.Hashtag {
	return domain.Hashtag{
		Tag:           t,
		Category:      category,
		Platforms:     platforms,
		Popularity:    popularity,
		Trending:      trending,
		IndianContext: indian,
		Language:      "en",
		UsageCount:    usage,
	}
}

// Hashtags returns the sample catalog.
func Hashtags() []domain.Hashtag {
	return []domain.Hashtag{
		// Lifestyle
		tag("lifestyle", "lifestyle", allPlatforms, 95, true, false, 1500),
		tag("life", "lifestyle", allPlatforms, 90, true, false, 1200),
		tag("daily", "lifestyle", noYouTube, 85, false, false, 800),
		tag("motivation", "lifestyle", allPlatforms, 88, true, false, 1000),
		tag("inspiration", "lifestyle", allPlatforms, 87, false, false, 900),
		tag("selfie", "lifestyle", noYouTube, 92, true, false, 1100),
		tag("photography", "lifestyle", allPlatforms, 89, false, false, 950),

		// Business
		tag("business", "business", allPlatforms, 93, true, false, 1300),
		tag("entrepreneur", "business", allPlatforms, 91, true, false, 1200),
		tag("startup", "business", allPlatforms, 88, false, false, 1000),
		tag("marketing", "business", allPlatforms, 90, true, false, 1100),
		tag("brand", "business", allPlatforms, 87, false, false, 900),
		tag("success", "business", allPlatforms, 89, false, false, 950),
		tag("growth", "business", allPlatforms, 86, false, false, 850),

		// Food
		tag("food", "food", allPlatforms, 96, true, false, 1600),
		tag("foodie", "food", noYouTube, 94, true, false, 1400),
		tag("delicious", "food", allPlatforms, 92, false, false, 1200),
		tag("recipe", "food", allPlatforms, 90, true, false, 1100),
		tag("cooking", "food", allPlatforms, 88, false, false, 1000),
		tag("restaurant", "food", noYouTube, 85, false, false, 800),
		tag("tasty", "food", noYouTube, 87, false, false, 900),

		// Travel
		tag("travel", "travel", allPlatforms, 95, true, false, 1500),
		tag("wanderlust", "travel", noYouTube, 89, false, false, 1000),
		tag("adventure", "travel", allPlatforms, 87, false, false, 900),
		tag("explore", "travel", allPlatforms, 91, true, false, 1200),
		tag("vacation", "travel", noYouTube, 85, false, false, 800),
		tag("tourism", "travel", allPlatforms, 83, false, false, 700),
		tag("journey", "travel", allPlatforms, 86, false, false, 850),

		// Indian identity
		tag("india", "lifestyle", allPlatforms, 98, true, true, 2000),
		tag("indian", "lifestyle", allPlatforms, 96, true, true, 1800),
		tag("desi", "lifestyle", noYouTube, 92, true, true, 1400),
		tag("bharat", "lifestyle", allPlatforms, 89, false, true, 1000),
		tag("hindustan", "lifestyle", noYouTube, 87, false, true, 900),
		tag("proudindian", "lifestyle", allPlatforms, 94, true, true, 1300),

		// Indian cities
		tag("mumbai", "travel", allPlatforms, 93, true, true, 1200),
		tag("delhi", "travel", allPlatforms, 91, true, true, 1100),
		tag("bangalore", "travel", allPlatforms, 89, false, true, 1000),
		tag("chennai", "travel", noYouTube, 85, false, true, 800),
		tag("kolkata", "travel", noYouTube, 83, false, true, 700),
		tag("hyderabad", "travel", noYouTube, 81, false, true, 600),
		tag("pune", "travel", noYouTube, 79, false, true, 500),

		// Entertainment
		tag("bollywood", "entertainment", allPlatforms, 95, true, true, 1500),
		tag("hindi", "entertainment", allPlatforms, 90, false, true, 1100),
		tag("movies", "entertainment", allPlatforms, 88, false, false, 1000),
		tag("entertainment", "entertainment", allPlatforms, 86, false, false, 900),
		tag("cinema", "entertainment", noYouTube, 84, false, false, 800),
		tag("actors", "entertainment", noYouTube, 82, false, false, 700),

		// Sports
		tag("cricket", "sports", allPlatforms, 97, true, true, 1700),
		tag("ipl", "sports", allPlatforms, 94, true, true, 1400),
		tag("bcci", "sports", noYouTube, 88, false, true, 1000),
		tag("sports", "sports", allPlatforms, 85, false, false, 900),
		tag("teamindia", "sports", allPlatforms, 92, true, true, 1200),

		// Indian food
		tag("indianfood", "food", allPlatforms, 96, true, true, 1500),
		tag("spicy", "food", noYouTube, 89, false, true, 1000),
		tag("curry", "food", noYouTube, 87, false, true, 900),
		tag("biryani", "food", allPlatforms, 93, true, true, 1300),
		tag("dal", "food", noYouTube, 81, false, true, 600),
		tag("roti", "food", noYouTube, 79, false, true, 500),
		tag("naan", "food", noYouTube, 77, false, true, 400),
	}
}

// festival is a compact row for the calendar below.
func festival(name, date, description string, hashtags ...string) domain.Festival {
	d, _ := time.Parse("2006-01-02", date)
	return domain.Festival{Name: name, Date: d, Hashtags: hashtags, Description: description, Active: true}
}

// Festivals returns the Indian festival calendar.
func Festivals() []domain.Festival {
	return []domain.Festival{
		festival("Diwali", "2025-10-20", "The festival of lights celebrated across India",
			"diwali", "festivaloflights", "deepavali", "indianfestival", "celebration", "lights", "rangoli", "laxmi", "festival"),
		festival("Holi", "2026-03-04", "The festival of colors marking the arrival of spring",
			"holi", "festivalofcolors", "colorful", "spring", "celebration", "fun", "colors", "festival", "indianfestival"),
		festival("Dussehra", "2025-10-02", "Celebration of victory of good over evil",
			"dussehra", "vijayadashami", "victory", "goodoverevil", "celebration", "indianfestival", "ramayana", "festival"),
		festival("Eid", "2026-03-20", "Islamic festival marking the end of Ramadan",
			"eid", "eidmubarak", "ramadan", "festival", "celebration", "muslimfestival", "islamic"),
		festival("Christmas", "2025-12-25", "Christian festival celebrating the birth of Jesus Christ",
			"christmas", "xmas", "festival", "celebration", "joy", "peace", "christianfestival"),
		festival("Republic Day", "2026-01-26", "Commemoration of the adoption of the Indian constitution",
			"republicday", "india", "patriotic", "freedom", "independence", "proudindian"),
		festival("Independence Day", "2026-08-15", "Celebration of India's independence",
			"independenceday", "india", "patriotic", "freedom", "independence", "proudindian"),
		festival("Navratri", "2025-09-22", "Nine nights of dance and devotion",
			"navratri", "garba", "dandiya", "celebration", "indianfestival", "festival"),
		festival("Ganesh Chaturthi", "2026-09-14", "Festival honouring the god Ganesha",
			"ganesh", "ganpati", "ganeshchaturthi", "bappa", "celebration", "indianfestival"),
		festival("Raksha Bandhan", "2026-08-28", "Celebration of the bond between brothers and sisters",
			"rakhi", "rakshabandhan", "siblings", "celebration", "indianfestival"),
	}
}
