package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tagmantra/tagmantra/backend/internal/domain"
	"github.com/tagmantra/tagmantra/backend/internal/repo"
)

// Hand-written test doubles for the repo interfaces.
// Each method is a function field — set only the ones your test needs.
// This is idiomatic Go: no mock generation library required for simple cases.

type mockHashtagRepo struct {
	queryByFilter     func(ctx context.Context, f domain.HashtagFilter) ([]domain.Hashtag, error)
	trending          func(ctx context.Context, platform domain.Platform, limit int) ([]domain.Hashtag, error)
	indianContext     func(ctx context.Context, platform domain.Platform, limit int) ([]domain.Hashtag, error)
	popularByCategory func(ctx context.Context, category domain.Category, platform domain.Platform, limit int) ([]domain.Hashtag, error)
	incrementUsage    func(ctx context.Context, tags []string) error
	upsertLive        func(ctx context.Context, sample domain.LiveSample) error
	insert            func(ctx context.Context, h domain.Hashtag) error
}

func (m *mockHashtagRepo) QueryByFilter(ctx context.Context, f domain.HashtagFilter) ([]domain.Hashtag, error) {
	return m.queryByFilter(ctx, f)
}
func (m *mockHashtagRepo) Trending(ctx context.Context, platform domain.Platform, limit int) ([]domain.Hashtag, error) {
	return m.trending(ctx, platform, limit)
}
func (m *mockHashtagRepo) IndianContext(ctx context.Context, platform domain.Platform, limit int) ([]domain.Hashtag, error) {
	return m.indianContext(ctx, platform, limit)
}
func (m *mockHashtagRepo) PopularByCategory(ctx context.Context, category domain.Category, platform domain.Platform, limit int) ([]domain.Hashtag, error) {
	return m.popularByCategory(ctx, category, platform, limit)
}
func (m *mockHashtagRepo) IncrementUsage(ctx context.Context, tags []string) error {
	return m.incrementUsage(ctx, tags)
}
func (m *mockHashtagRepo) UpsertLive(ctx context.Context, sample domain.LiveSample) error {
	return m.upsertLive(ctx, sample)
}
func (m *mockHashtagRepo) Insert(ctx context.Context, h domain.Hashtag) error {
	return m.insert(ctx, h)
}

var _ repo.HashtagRepo = (*mockHashtagRepo)(nil)

type mockFestivalRepo struct {
	upcoming func(ctx context.Context, from, to time.Time) ([]domain.Festival, error)
	insert   func(ctx context.Context, f domain.Festival) error
}

func (m *mockFestivalRepo) Upcoming(ctx context.Context, from, to time.Time) ([]domain.Festival, error) {
	return m.upcoming(ctx, from, to)
}
func (m *mockFestivalRepo) Insert(ctx context.Context, f domain.Festival) error {
	return m.insert(ctx, f)
}

var _ repo.FestivalRepo = (*mockFestivalRepo)(nil)

type mockUserRepo struct {
	create         func(ctx context.Context, email, name, passwordHash string) (domain.User, error)
	getByID        func(ctx context.Context, id uuid.UUID) (domain.User, error)
	getByEmail     func(ctx context.Context, email string) (domain.User, error)
	addSavedSet    func(ctx context.Context, set domain.SavedHashtagSet) (domain.SavedHashtagSet, error)
	listSavedSets  func(ctx context.Context, userID uuid.UUID) ([]domain.SavedHashtagSet, error)
	deleteSavedSet func(ctx context.Context, userID, setID uuid.UUID) error
}

func (m *mockUserRepo) Create(ctx context.Context, email, name, passwordHash string) (domain.User, error) {
	return m.create(ctx, email, name, passwordHash)
}
func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return m.getByID(ctx, id)
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return m.getByEmail(ctx, email)
}
func (m *mockUserRepo) AddSavedSet(ctx context.Context, set domain.SavedHashtagSet) (domain.SavedHashtagSet, error) {
	return m.addSavedSet(ctx, set)
}
func (m *mockUserRepo) ListSavedSets(ctx context.Context, userID uuid.UUID) ([]domain.SavedHashtagSet, error) {
	return m.listSavedSets(ctx, userID)
}
func (m *mockUserRepo) DeleteSavedSet(ctx context.Context, userID, setID uuid.UUID) error {
	return m.deleteSavedSet(ctx, userID, setID)
}

var _ repo.UserRepo = (*mockUserRepo)(nil)

type mockAnalyticsRepo struct {
	insert func(ctx context.Context, event domain.AnalyticsEvent) error
}

func (m *mockAnalyticsRepo) Insert(ctx context.Context, event domain.AnalyticsEvent) error {
	return m.insert(ctx, event)
}

var _ repo.AnalyticsRepo = (*mockAnalyticsRepo)(nil)

// ---- shared fixtures -------------------------------------------------------

// catalogTags wraps bare tags in minimal catalog records.
func catalogTags(tags ...string) []domain.Hashtag {
	hashtags := make([]domain.Hashtag, len(tags))
	for i, tag := range tags {
		hashtags[i] = domain.Hashtag{Tag: tag, Category: "lifestyle", Popularity: 50}
	}
	return hashtags
}

// emptyHashtagRepo returns a mock whose query methods all return nothing.
func emptyHashtagRepo() *mockHashtagRepo {
	return &mockHashtagRepo{
		queryByFilter: func(context.Context, domain.HashtagFilter) ([]domain.Hashtag, error) {
			return nil, nil
		},
		trending: func(context.Context, domain.Platform, int) ([]domain.Hashtag, error) {
			return nil, nil
		},
		indianContext: func(context.Context, domain.Platform, int) ([]domain.Hashtag, error) {
			return nil, nil
		},
		popularByCategory: func(context.Context, domain.Category, domain.Platform, int) ([]domain.Hashtag, error) {
			return nil, nil
		},
		incrementUsage: func(context.Context, []string) error { return nil },
	}
}

// emptyFestivalRepo returns a mock with no upcoming festivals.
func emptyFestivalRepo() *mockFestivalRepo {
	return &mockFestivalRepo{
		upcoming: func(context.Context, time.Time, time.Time) ([]domain.Festival, error) {
			return nil, nil
		},
	}
}
