package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tagmantra/tagmantra/backend/internal/domain"
)

// HashtagRepo defines the persistence operations for the hashtag catalog.
// The generation path reads via the query methods and writes usage counts;
// the live cache writes via UpsertLive.
type HashtagRepo interface {
	// QueryByFilter returns base-pool candidates matching the filter,
	// ordered by popularity descending then usage_count descending.
	// Hashtags flagged indianContext are included only when AllowIndian.
	QueryByFilter(ctx context.Context, f domain.HashtagFilter) ([]domain.Hashtag, error)

	// Trending returns up to limit hashtags flagged trending for the
	// platform, ordered by popularity descending then usage_count descending.
	Trending(ctx context.Context, platform domain.Platform, limit int) ([]domain.Hashtag, error)

	// IndianContext returns up to limit hashtags flagged indianContext for
	// the platform, ordered by popularity descending.
	IndianContext(ctx context.Context, platform domain.Platform, limit int) ([]domain.Hashtag, error)

	// PopularByCategory returns the most popular hashtags in a category for
	// the platform, ordered by popularity descending then usage_count descending.
	PopularByCategory(ctx context.Context, category domain.Category, platform domain.Platform, limit int) ([]domain.Hashtag, error)

	// IncrementUsage adds 1 to usage_count for every listed tag.
	IncrementUsage(ctx context.Context, tags []string) error

	// UpsertLive inserts or updates a catalog row from a live trending
	// sample, keyed by tag. On update the sample's platform is appended to
	// the platforms set if absent.
	UpsertLive(ctx context.Context, sample domain.LiveSample) error

	// Insert creates a catalog row as-is. Used by seeding.
	// Returns domain.ErrConflict if the tag already exists.
	Insert(ctx context.Context, h domain.Hashtag) error
}

// pgHashtagRepo is the Postgres implementation of HashtagRepo.
type pgHashtagRepo struct {
	db db
}

// NewHashtagRepo constructs a HashtagRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewHashtagRepo(db db) HashtagRepo {
	return &pgHashtagRepo{db: db}
}

const hashtagColumns = `tag, category, platforms, popularity, trending, indian_context, language, usage_count, created_at, updated_at`

// QueryByFilter selects generation base-pool candidates.
func (r *pgHashtagRepo) QueryByFilter(ctx context.Context, f domain.HashtagFilter) ([]domain.Hashtag, error) {
	const q = `
		SELECT ` + hashtagColumns + `
		FROM hashtags
		WHERE category = @category
		  AND @platform = ANY(platforms)
		  AND language = @language
		  AND (indian_context = false OR @allow_indian)
		ORDER BY popularity DESC, usage_count DESC
		LIMIT @limit`

	args := pgx.NamedArgs{
		"category":     f.Category,
		"platform":     f.Platform,
		"language":     f.Language,
		"allow_indian": f.AllowIndian,
		"limit":        f.Limit,
	}
	return r.queryHashtags(ctx, "QueryByFilter", q, args)
}

// Trending selects hashtags currently flagged trending for a platform.
func (r *pgHashtagRepo) Trending(ctx context.Context, platform domain.Platform, limit int) ([]domain.Hashtag, error) {
	const q = `
		SELECT ` + hashtagColumns + `
		FROM hashtags
		WHERE trending = true
		  AND @platform = ANY(platforms)
		  AND language = 'en'
		ORDER BY popularity DESC, usage_count DESC
		LIMIT @limit`

	return r.queryHashtags(ctx, "Trending", q, pgx.NamedArgs{"platform": platform, "limit": limit})
}

// IndianContext selects hashtags flagged for Indian cultural context.
func (r *pgHashtagRepo) IndianContext(ctx context.Context, platform domain.Platform, limit int) ([]domain.Hashtag, error) {
	const q = `
		SELECT ` + hashtagColumns + `
		FROM hashtags
		WHERE indian_context = true
		  AND @platform = ANY(platforms)
		  AND language = 'en'
		ORDER BY popularity DESC
		LIMIT @limit`

	return r.queryHashtags(ctx, "IndianContext", q, pgx.NamedArgs{"platform": platform, "limit": limit})
}

// PopularByCategory selects the top hashtags of one category for the
// trending dashboard.
func (r *pgHashtagRepo) PopularByCategory(ctx context.Context, category domain.Category, platform domain.Platform, limit int) ([]domain.Hashtag, error) {
	const q = `
		SELECT ` + hashtagColumns + `
		FROM hashtags
		WHERE category = @category
		  AND @platform = ANY(platforms)
		  AND language = 'en'
		ORDER BY popularity DESC, usage_count DESC
		LIMIT @limit`

	args := pgx.NamedArgs{"category": category, "platform": platform, "limit": limit}
	return r.queryHashtags(ctx, "PopularByCategory", q, args)
}

// IncrementUsage bumps usage_count for every tag in the final generation list.
func (r *pgHashtagRepo) IncrementUsage(ctx context.Context, tags []string) error {
	if len(tags) == 0 {
		return nil
	}
	const q = `
		UPDATE hashtags
		SET usage_count = usage_count + 1, updated_at = now()
		WHERE tag = ANY(@tags)`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"tags": tags}); err != nil {
		return fmt.Errorf("repo.HashtagRepo.IncrementUsage: %w", err)
	}
	return nil
}

// UpsertLive writes a live trending sample into the catalog. The ON CONFLICT
// branch overwrites popularity/trending/usage_count and appends the sample's
// platform to the platforms array when it is not yet a member.
func (r *pgHashtagRepo) UpsertLive(ctx context.Context, sample domain.LiveSample) error {
	const q = `
		INSERT INTO hashtags (tag, category, platforms, popularity, trending, indian_context, language, usage_count)
		VALUES (@tag, 'entertainment', ARRAY[@platform]::text[], @popularity, @trending, false, 'en', @usage_count)
		ON CONFLICT (tag) DO UPDATE SET
			popularity  = EXCLUDED.popularity,
			trending    = EXCLUDED.trending,
			usage_count = EXCLUDED.usage_count,
			platforms   = CASE
				WHEN @platform = ANY(hashtags.platforms) THEN hashtags.platforms
				ELSE array_append(hashtags.platforms, @platform)
			END,
			updated_at = now()`

	args := pgx.NamedArgs{
		"tag":         sample.Tag,
		"platform":    string(sample.Platform),
		"popularity":  sample.Popularity,
		"trending":    sample.Trending,
		"usage_count": sample.UsageCount,
	}
	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("repo.HashtagRepo.UpsertLive: %w", err)
	}
	return nil
}

// Insert creates a new catalog row. Seeding-only.
func (r *pgHashtagRepo) Insert(ctx context.Context, h domain.Hashtag) error {
	const q = `
		INSERT INTO hashtags (tag, category, platforms, popularity, trending, indian_context, language, usage_count)
		VALUES (@tag, @category, @platforms, @popularity, @trending, @indian_context, @language, @usage_count)`

	args := pgx.NamedArgs{
		"tag":            h.Tag,
		"category":       h.Category,
		"platforms":      platformStrings(h.Platforms),
		"popularity":     h.Popularity,
		"trending":       h.Trending,
		"indian_context": h.IndianContext,
		"language":       h.Language,
		"usage_count":    h.UsageCount,
	}
	if _, err := r.db.Exec(ctx, q, args); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("repo.HashtagRepo.Insert: %w", domain.ErrConflict)
		}
		return fmt.Errorf("repo.HashtagRepo.Insert: %w", err)
	}
	return nil
}

// queryHashtags runs a multi-row hashtag query and scans the results.
func (r *pgHashtagRepo) queryHashtags(ctx context.Context, op, q string, args pgx.NamedArgs) ([]domain.Hashtag, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.HashtagRepo.%s: %w", op, err)
	}
	defer rows.Close()

	hashtags := []domain.Hashtag{}
	for rows.Next() {
		h, err := scanHashtag(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.HashtagRepo.%s: scan: %w", op, err)
		}
		hashtags = append(hashtags, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.HashtagRepo.%s: rows: %w", op, err)
	}
	return hashtags, nil
}

// scanHashtag maps a single database row into a domain.Hashtag.
func scanHashtag(s scanner) (domain.Hashtag, error) {
	var (
		h         domain.Hashtag
		platforms []string
	)
	err := s.Scan(&h.Tag, &h.Category, &platforms, &h.Popularity, &h.Trending,
		&h.IndianContext, &h.Language, &h.UsageCount, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Hashtag{}, domain.ErrNotFound
		}
		return domain.Hashtag{}, err
	}
	h.Platforms = make([]domain.Platform, len(platforms))
	for i, p := range platforms {
		h.Platforms[i] = domain.Platform(p)
	}
	return h, nil
}

// platformStrings converts typed platforms to the text[] representation.
func platformStrings(platforms []domain.Platform) []string {
	out := make([]string, len(platforms))
	for i, p := range platforms {
		out[i] = string(p)
	}
	return out
}
