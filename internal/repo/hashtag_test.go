package repo_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagmantra/tagmantra/backend/internal/domain"
	"github.com/tagmantra/tagmantra/backend/internal/repo"
	"github.com/tagmantra/tagmantra/backend/testutil"
)

// newTestTx opens a transaction against the test database that is rolled
// back when the test finishes, giving free per-test isolation.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		// Rollback discards all changes made during the test — no cleanup SQL needed.
		_ = tx.Rollback(context.Background())
	})
	return tx
}

func newHashtagRepo(t *testing.T) repo.HashtagRepo {
	t.Helper()
	return repo.NewHashtagRepo(newTestTx(t))
}

// hashtagFixture returns a catalog record with sensible defaults.
// Callers override individual fields as needed.
func hashtagFixture(tag string) domain.Hashtag {
	return domain.Hashtag{
		Tag:        tag,
		Category:   "fitness",
		Platforms:  []domain.Platform{domain.PlatformInstagram, domain.PlatformTwitter},
		Popularity: 50,
		Language:   "en",
	}
}

func mustInsert(t *testing.T, r repo.HashtagRepo, hashtags ...domain.Hashtag) {
	t.Helper()
	for _, h := range hashtags {
		require.NoError(t, r.Insert(context.Background(), h))
	}
}

func TestHashtagRepo_QueryByFilter(t *testing.T) {
	r := newHashtagRepo(t)
	ctx := context.Background()

	low := hashtagFixture("gymlife")
	low.Popularity = 40
	high := hashtagFixture("fitnessfreak")
	high.Popularity = 90
	other := hashtagFixture("foodie")
	other.Category = "food"
	mustInsert(t, r, low, high, other)

	got, err := r.QueryByFilter(ctx, domain.HashtagFilter{
		Category: "fitness",
		Platform: domain.PlatformInstagram,
		Language: "en",
		Limit:    10,
	})

	require.NoError(t, err)
	require.Len(t, got, 2, "other categories are excluded")
	assert.Equal(t, "fitnessfreak", got[0].Tag, "ordered by popularity descending")
	assert.Equal(t, "gymlife", got[1].Tag)
}

func TestHashtagRepo_QueryByFilter_IndianContextGate(t *testing.T) {
	r := newHashtagRepo(t)
	ctx := context.Background()

	plain := hashtagFixture("gymlife")
	indian := hashtagFixture("desifitness")
	indian.IndianContext = true
	mustInsert(t, r, plain, indian)

	filter := domain.HashtagFilter{
		Category: "fitness",
		Platform: domain.PlatformInstagram,
		Language: "en",
		Limit:    10,
	}

	got, err := r.QueryByFilter(ctx, filter)
	require.NoError(t, err)
	require.Len(t, got, 1, "indian-context rows are hidden by default")
	assert.Equal(t, "gymlife", got[0].Tag)

	filter.AllowIndian = true
	got, err = r.QueryByFilter(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, got, 2, "AllowIndian widens the filter")
}

func TestHashtagRepo_QueryByFilter_PlatformMembership(t *testing.T) {
	r := newHashtagRepo(t)
	ctx := context.Background()

	h := hashtagFixture("gymlife")
	h.Platforms = []domain.Platform{domain.PlatformTwitter}
	mustInsert(t, r, h)

	got, err := r.QueryByFilter(ctx, domain.HashtagFilter{
		Category: "fitness",
		Platform: domain.PlatformInstagram,
		Language: "en",
		Limit:    10,
	})

	require.NoError(t, err)
	assert.Empty(t, got, "platform must be a member of the platforms array")
}

func TestHashtagRepo_Trending(t *testing.T) {
	r := newHashtagRepo(t)
	ctx := context.Background()

	hot := hashtagFixture("viralreel")
	hot.Trending = true
	hot.Popularity = 95
	cold := hashtagFixture("gymlife")
	mustInsert(t, r, hot, cold)

	got, err := r.Trending(ctx, domain.PlatformInstagram, 10)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "viralreel", got[0].Tag)
	assert.True(t, got[0].Trending)
}

func TestHashtagRepo_IndianContext(t *testing.T) {
	r := newHashtagRepo(t)
	ctx := context.Background()

	indian := hashtagFixture("proudindian")
	indian.IndianContext = true
	plain := hashtagFixture("gymlife")
	mustInsert(t, r, indian, plain)

	got, err := r.IndianContext(ctx, domain.PlatformInstagram, 10)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "proudindian", got[0].Tag)
}

func TestHashtagRepo_IncrementUsage(t *testing.T) {
	r := newHashtagRepo(t)
	ctx := context.Background()

	mustInsert(t, r, hashtagFixture("gymlife"), hashtagFixture("fitnessfreak"))

	require.NoError(t, r.IncrementUsage(ctx, []string{"gymlife", "fitnessfreak"}))
	require.NoError(t, r.IncrementUsage(ctx, []string{"gymlife"}))

	got, err := r.QueryByFilter(ctx, domain.HashtagFilter{
		Category: "fitness",
		Platform: domain.PlatformInstagram,
		Language: "en",
		Limit:    10,
	})
	require.NoError(t, err)
	counts := map[string]int{}
	for _, h := range got {
		counts[h.Tag] = h.UsageCount
	}
	assert.Equal(t, 2, counts["gymlife"])
	assert.Equal(t, 1, counts["fitnessfreak"])
}

func TestHashtagRepo_IncrementUsage_EmptyList(t *testing.T) {
	r := newHashtagRepo(t)

	assert.NoError(t, r.IncrementUsage(context.Background(), nil))
}

func TestHashtagRepo_UpsertLive_InsertsNewTag(t *testing.T) {
	r := newHashtagRepo(t)
	ctx := context.Background()

	err := r.UpsertLive(ctx, domain.LiveSample{
		Tag:        "ipl2025",
		Platform:   domain.PlatformTwitter,
		Popularity: 88,
		Trending:   true,
		UsageCount: 12000,
	})
	require.NoError(t, err)

	got, err := r.Trending(ctx, domain.PlatformTwitter, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ipl2025", got[0].Tag)
	assert.Equal(t, domain.Category("entertainment"), got[0].Category)
	assert.Equal(t, 88, got[0].Popularity)
}

func TestHashtagRepo_UpsertLive_AppendsPlatform(t *testing.T) {
	r := newHashtagRepo(t)
	ctx := context.Background()

	sample := domain.LiveSample{
		Tag:        "ipl2025",
		Platform:   domain.PlatformTwitter,
		Popularity: 88,
		Trending:   true,
	}
	require.NoError(t, r.UpsertLive(ctx, sample))

	sample.Platform = domain.PlatformYouTube
	sample.Popularity = 91
	require.NoError(t, r.UpsertLive(ctx, sample))

	// Same platform again must not duplicate the array member.
	require.NoError(t, r.UpsertLive(ctx, sample))

	got, err := r.Trending(ctx, domain.PlatformYouTube, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.ElementsMatch(t, []domain.Platform{domain.PlatformTwitter, domain.PlatformYouTube}, got[0].Platforms)
	assert.Equal(t, 91, got[0].Popularity, "upsert overwrites popularity")
}

func TestHashtagRepo_Insert_DuplicateTag(t *testing.T) {
	r := newHashtagRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Insert(ctx, hashtagFixture("gymlife")))

	err := r.Insert(ctx, hashtagFixture("gymlife"))
	assert.ErrorIs(t, err, domain.ErrConflict)
}
