package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tagmantra/tagmantra/backend/internal/domain"
	"github.com/tagmantra/tagmantra/backend/internal/repo"
)

// popularPerCategory is how many hashtags each dashboard category shows.
const popularPerCategory = 5

// TrendingOverview is the trending dashboard payload: the platform's current
// trending hashtags, active festivals in the next 30 days, and the most
// popular hashtags per dashboard category.
type TrendingOverview struct {
	Trending          []domain.Hashtag  `json:"trending"`
	Festivals         []domain.Festival `json:"festivals"`
	PopularByCategory []CategoryPopular `json:"popularByCategory"`
	Platform          domain.Platform   `json:"platform"`
	LastUpdated       time.Time         `json:"lastUpdated"`
}

// CategoryPopular groups a category's top hashtags for the dashboard.
type CategoryPopular struct {
	Category domain.Category  `json:"category"`
	Hashtags []domain.Hashtag `json:"hashtags"`
}

// TrendingService assembles the trending dashboard.
type TrendingService struct {
	hashtags  repo.HashtagRepo
	festivals repo.FestivalRepo
	now       func() time.Time
}

// NewTrendingService constructs a TrendingService backed by the provided
// repos. now may be nil for the wall clock.
func NewTrendingService(hashtags repo.HashtagRepo, festivals repo.FestivalRepo, now func() time.Time) *TrendingService {
	if now == nil {
		now = time.Now
	}
	return &TrendingService{hashtags: hashtags, festivals: festivals, now: now}
}

// Overview returns the trending dashboard for a platform.
// Returns domain.ErrValidation for an unknown platform.
// Dashboard categories with no hashtags are omitted from the result.
func (s *TrendingService) Overview(ctx context.Context, platform domain.Platform, limit int) (TrendingOverview, error) {
	if !platform.Valid() {
		return TrendingOverview{}, fmt.Errorf("%w: invalid platform %q", domain.ErrValidation, platform)
	}

	trending, err := s.hashtags.Trending(ctx, platform, limit)
	if err != nil {
		return TrendingOverview{}, fmt.Errorf("service.TrendingService.Overview: %w", err)
	}

	from := truncateToDay(s.now())
	festivals, err := s.festivals.Upcoming(ctx, from, from.Add(domain.FestivalWindow))
	if err != nil {
		return TrendingOverview{}, fmt.Errorf("service.TrendingService.Overview: %w", err)
	}

	popular := []CategoryPopular{}
	for _, category := range domain.DashboardCategories {
		hashtags, err := s.hashtags.PopularByCategory(ctx, category, platform, popularPerCategory)
		if err != nil {
			return TrendingOverview{}, fmt.Errorf("service.TrendingService.Overview: %w", err)
		}
		if len(hashtags) == 0 {
			continue
		}
		popular = append(popular, CategoryPopular{Category: category, Hashtags: hashtags})
	}

	return TrendingOverview{
		Trending:          trending,
		Festivals:         festivals,
		PopularByCategory: popular,
		Platform:          platform,
		LastUpdated:       s.now(),
	}, nil
}
