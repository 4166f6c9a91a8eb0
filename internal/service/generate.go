// Package service contains the business logic for the hashtag API.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tagmantra/tagmantra/backend/internal/domain"
	"github.com/tagmantra/tagmantra/backend/internal/keywords"
	"github.com/tagmantra/tagmantra/backend/internal/repo"
)

// GenerateService implements the store-backed hashtag generation engine.
// It merges base-pool, trending, Indian-context, and festival hashtags into a
// deduplicated, platform-capped result, and bumps usage counts as a side
// effect.
type GenerateService struct {
	hashtags  repo.HashtagRepo
	festivals repo.FestivalRepo
	analytics repo.AnalyticsRepo
	now       func() time.Time
}

// NewGenerateService constructs a GenerateService backed by the provided
// repos. now may be nil for the wall clock; tests pin it to exercise the
// festival window.
func NewGenerateService(hashtags repo.HashtagRepo, festivals repo.FestivalRepo, analytics repo.AnalyticsRepo, now func() time.Time) *GenerateService {
	if now == nil {
		now = time.Now
	}
	return &GenerateService{hashtags: hashtags, festivals: festivals, analytics: analytics, now: now}
}

// Generate runs one generation request. userID is nil for anonymous callers;
// when present, an analytics event is recorded.
// Returns domain.ErrValidation for missing fields or an unknown platform or
// category.
func (s *GenerateService) Generate(ctx context.Context, req domain.GenerationRequest, userID *uuid.UUID) (domain.GenerationResult, error) {
	if err := validateGeneration(req); err != nil {
		return domain.GenerationResult{}, err
	}

	count := req.Count
	if count <= 0 {
		count = domain.DefaultGenerationCount
	}
	capped := count
	if max := req.Platform.MaxHashtags(); capped > max {
		capped = max
	}

	analysis := keywords.AnalyzeIndianContext(req.Content)

	base, err := s.hashtags.QueryByFilter(ctx, domain.HashtagFilter{
		Category:    req.Category,
		Platform:    req.Platform,
		Language:    "en",
		AllowIndian: analysis.HasIndianContext,
		Limit:       count * 2,
	})
	if err != nil {
		return domain.GenerationResult{}, fmt.Errorf("service.GenerateService.Generate: %w", err)
	}

	trendingTags := []string{}
	if req.IncludeTrending {
		trending, err := s.hashtags.Trending(ctx, req.Platform, 10)
		if err != nil {
			return domain.GenerationResult{}, fmt.Errorf("service.GenerateService.Generate: %w", err)
		}
		trendingTags = tagsOf(trending)
	}

	indianTags := []string{}
	if req.IncludeIndianContext && analysis.HasIndianContext {
		indian, err := s.hashtags.IndianContext(ctx, req.Platform, 8)
		if err != nil {
			return domain.GenerationResult{}, fmt.Errorf("service.GenerateService.Generate: %w", err)
		}
		indianTags = tagsOf(indian)
	}

	from := truncateToDay(s.now())
	festivals, err := s.festivals.Upcoming(ctx, from, from.Add(domain.FestivalWindow))
	if err != nil {
		return domain.GenerationResult{}, fmt.Errorf("service.GenerateService.Generate: %w", err)
	}

	// Priority order: base pool, trending, Indian context, festivals.
	merged := make([]string, 0, len(base)+len(trendingTags)+len(indianTags))
	merged = append(merged, tagsOf(base)...)
	merged = append(merged, trendingTags...)
	merged = append(merged, indianTags...)
	for _, f := range festivals {
		merged = append(merged, f.Hashtags...)
	}

	final := keywords.Dedupe(merged)
	if len(final) > capped {
		final = final[:capped]
	}

	if err := s.hashtags.IncrementUsage(ctx, final); err != nil {
		return domain.GenerationResult{}, fmt.Errorf("service.GenerateService.Generate: %w", err)
	}

	if userID != nil {
		event := domain.AnalyticsEvent{
			UserID:       userID,
			Action:       domain.ActionGenerate,
			Platform:     req.Platform,
			Category:     req.Category,
			HashtagCount: len(final),
			Timestamp:    s.now(),
		}
		if err := s.analytics.Insert(ctx, event); err != nil {
			return domain.GenerationResult{}, fmt.Errorf("service.GenerateService.Generate: %w", err)
		}
	}

	return domain.GenerationResult{
		Hashtags:      final,
		Trending:      trendingTags,
		IndianContext: indianTags,
		TotalCount:    len(final),
		Platform:      req.Platform,
		Category:      req.Category,
	}, nil
}

// validateGeneration enforces the request contract: all three core fields
// present, platform and category from their enumerated sets.
func validateGeneration(req domain.GenerationRequest) error {
	if req.Content == "" || req.Platform == "" || req.Category == "" {
		return fmt.Errorf("%w: content, platform, and category are required", domain.ErrValidation)
	}
	if !req.Platform.Valid() {
		return fmt.Errorf("%w: invalid platform %q", domain.ErrValidation, req.Platform)
	}
	if !req.Category.Valid() {
		return fmt.Errorf("%w: invalid category %q", domain.ErrValidation, req.Category)
	}
	return nil
}

// tagsOf projects catalog records to their tags.
func tagsOf(hashtags []domain.Hashtag) []string {
	tags := make([]string, len(hashtags))
	for i, h := range hashtags {
		tags[i] = h.Tag
	}
	return tags
}

// truncateToDay returns t at midnight in its own location.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
