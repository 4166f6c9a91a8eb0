package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tagmantra/tagmantra/backend/internal/domain"
	"github.com/tagmantra/tagmantra/backend/internal/repo"
)

// SavedSetService implements the CRUD logic for a user's saved hashtag sets.
// Every operation verifies the owning user record still exists, so a deleted
// account surfaces as not-found rather than an empty success.
type SavedSetService struct {
	users     repo.UserRepo
	analytics repo.AnalyticsRepo
	now       func() time.Time
}

// NewSavedSetService constructs a SavedSetService backed by the provided repos.
func NewSavedSetService(users repo.UserRepo, analytics repo.AnalyticsRepo, now func() time.Time) *SavedSetService {
	if now == nil {
		now = time.Now
	}
	return &SavedSetService{users: users, analytics: analytics, now: now}
}

// Save validates and persists a named hashtag set for the user.
// Returns domain.ErrValidation on bad input, domain.ErrNotFound if the user
// record is gone, and domain.ErrConflict if the user already has a set with
// that name.
func (s *SavedSetService) Save(ctx context.Context, userID uuid.UUID, set domain.SavedHashtagSet) (domain.SavedHashtagSet, error) {
	if set.Name == "" || set.Platform == "" || set.Category == "" {
		return domain.SavedHashtagSet{}, fmt.Errorf("%w: name, hashtags, platform, and category are required", domain.ErrValidation)
	}
	if len(set.Hashtags) == 0 {
		return domain.SavedHashtagSet{}, fmt.Errorf("%w: hashtags must be a non-empty list", domain.ErrValidation)
	}
	if !set.Platform.Valid() {
		return domain.SavedHashtagSet{}, fmt.Errorf("%w: invalid platform %q", domain.ErrValidation, set.Platform)
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return domain.SavedHashtagSet{}, fmt.Errorf("service.SavedSetService.Save: %w", err)
	}

	set.UserID = userID
	result, err := s.users.AddSavedSet(ctx, set)
	if err != nil {
		return domain.SavedHashtagSet{}, fmt.Errorf("service.SavedSetService.Save: %w", err)
	}

	event := domain.AnalyticsEvent{
		UserID:       &userID,
		Action:       domain.ActionSave,
		Platform:     set.Platform,
		Category:     set.Category,
		HashtagCount: len(set.Hashtags),
		Timestamp:    s.now(),
	}
	if err := s.analytics.Insert(ctx, event); err != nil {
		return domain.SavedHashtagSet{}, fmt.Errorf("service.SavedSetService.Save: %w", err)
	}

	return result, nil
}

// List returns all of the user's saved sets, newest first.
// Returns domain.ErrNotFound if the user record is gone.
func (s *SavedSetService) List(ctx context.Context, userID uuid.UUID) ([]domain.SavedHashtagSet, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("service.SavedSetService.List: %w", err)
	}
	sets, err := s.users.ListSavedSets(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.SavedSetService.List: %w", err)
	}
	return sets, nil
}

// Delete removes one saved set owned by the user.
// Returns domain.ErrNotFound if the user record or the set does not exist.
func (s *SavedSetService) Delete(ctx context.Context, userID, setID uuid.UUID) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return fmt.Errorf("service.SavedSetService.Delete: %w", err)
	}
	if err := s.users.DeleteSavedSet(ctx, userID, setID); err != nil {
		return fmt.Errorf("service.SavedSetService.Delete: %w", err)
	}
	return nil
}
