package domain

// Category classifies a hashtag by content niche.
// The set mirrors the catalog's category enumeration; anything outside it is
// rejected at the validation boundary.
type Category string

// validCategories is the exhaustive category set accepted by the catalog.
var validCategories = map[Category]bool{
	"lifestyle": true, "business": true, "food": true, "travel": true,
	"fashion": true, "beauty": true, "fitness": true, "technology": true,
	"education": true, "entertainment": true, "news": true, "sports": true,
	"health": true, "finance": true, "real-estate": true, "automotive": true,
	"photography": true, "art": true, "music": true, "books": true,
	"gaming": true, "parenting": true, "wedding": true, "festival": true,
	"culture": true, "politics": true, "environment": true,
}

// Valid reports whether c is a known catalog category.
func (c Category) Valid() bool {
	return validCategories[c]
}

// DashboardCategories are the categories shown on the trending dashboard,
// each with its top-5 popular hashtags.
var DashboardCategories = []Category{
	"lifestyle", "business", "food", "travel", "fashion", "beauty", "fitness",
}
