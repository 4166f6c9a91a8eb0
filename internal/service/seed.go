package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tagmantra/tagmantra/backend/internal/domain"
	"github.com/tagmantra/tagmantra/backend/internal/repo"
	"github.com/tagmantra/tagmantra/backend/internal/seed"
)

// SeedService loads the sample dataset into the catalog.
// Intended for development environments only; the handler enforces that.
type SeedService struct {
	hashtags  repo.HashtagRepo
	festivals repo.FestivalRepo
}

// NewSeedService constructs a SeedService backed by the provided repos.
func NewSeedService(hashtags repo.HashtagRepo, festivals repo.FestivalRepo) *SeedService {
	return &SeedService{hashtags: hashtags, festivals: festivals}
}

// Run inserts the sample hashtags and festivals. Hashtags that already exist
// are skipped, so re-running against a seeded database is harmless.
// Returns the number of hashtags and festivals inserted.
func (s *SeedService) Run(ctx context.Context) (hashtags, festivals int, err error) {
	for _, h := range seed.Hashtags() {
		if err := s.hashtags.Insert(ctx, h); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				continue
			}
			return hashtags, festivals, fmt.Errorf("service.SeedService.Run: %w", err)
		}
		hashtags++
	}
	for _, f := range seed.Festivals() {
		if err := s.festivals.Insert(ctx, f); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				continue
			}
			return hashtags, festivals, fmt.Errorf("service.SeedService.Run: %w", err)
		}
		festivals++
	}
	return hashtags, festivals, nil
}
