package live

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/tagmantra/tagmantra/backend/internal/domain"
)

// KeyAll is the cache key for the unfiltered union across all platforms.
const KeyAll = "all"

// DefaultTTL is how long a cache entry stays fresh after a refresh.
const DefaultTTL = 5 * time.Minute

// CatalogWriter persists live samples into the hashtag catalog.
// The cache treats persistence as best-effort: failures are logged, never
// surfaced to readers.
type CatalogWriter interface {
	UpsertLive(ctx context.Context, sample domain.LiveSample) error
}

// Cache is a time-expiring cache of live trending samples keyed by platform
// (or KeyAll for the union). It is constructed once by the composition root
// and shared by reference across request handlers.
//
// Concurrent reads of the same expired key may each trigger a refresh; the
// later write wins. Refreshes are idempotent within a freshness window, so
// the redundancy is an accepted inefficiency rather than a correctness issue.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry

	ttl      time.Duration
	fetchers map[domain.Platform]Fetcher
	catalog  CatalogWriter
	now      func() time.Time
	log      *slog.Logger
}

type cacheEntry struct {
	samples   []domain.LiveSample
	refreshed time.Time
}

// NewCache constructs a Cache over the given fetchers.
// ttl <= 0 falls back to DefaultTTL. catalog may be nil to disable the
// write-back path (used by tests). now may be nil for the wall clock.
func NewCache(ttl time.Duration, fetchers []Fetcher, catalog CatalogWriter, now func() time.Time, log *slog.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = slog.Default()
	}
	byPlatform := make(map[domain.Platform]Fetcher, len(fetchers))
	for _, f := range fetchers {
		byPlatform[f.Platform()] = f
	}
	return &Cache{
		entries:  make(map[string]cacheEntry),
		ttl:      ttl,
		fetchers: byPlatform,
		catalog:  catalog,
		now:      now,
		log:      log,
	}
}

// GetAll returns the fresh sample list for platform, refreshing first if the
// entry is missing or expired. An empty platform means the union across all
// platforms.
func (c *Cache) GetAll(ctx context.Context, platform domain.Platform) []domain.LiveSample {
	key := cacheKey(platform)

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if ok && c.now().Sub(entry.refreshed) < c.ttl {
		return entry.samples
	}
	return c.Refresh(ctx, platform)
}

// Refresh refetches the samples for platform (or all platforms when empty),
// persists them into the catalog, replaces the cache entry, and returns the
// new sample list. A failure in one platform's fetch does not block the rest.
func (c *Cache) Refresh(ctx context.Context, platform domain.Platform) []domain.LiveSample {
	var samples []domain.LiveSample
	for _, p := range c.scope(platform) {
		fetcher, ok := c.fetchers[p]
		if !ok {
			continue
		}
		fetched := fetcher.Fetch(ctx)
		c.log.Debug("fetched live trends", "platform", p, "count", len(fetched))
		samples = append(samples, fetched...)
	}

	c.persist(ctx, samples)

	key := cacheKey(platform)
	c.mu.Lock()
	c.entries[key] = cacheEntry{samples: samples, refreshed: c.now()}
	c.mu.Unlock()

	return samples
}

// Suggest filters the current trending list down to entries relevant to
// content: the tag appears in the content, the tag contains the content's
// first word, or the tag's popularity exceeds 80. At most 10 tags.
func (c *Cache) Suggest(ctx context.Context, content string, platform domain.Platform) []string {
	trending := c.GetAll(ctx, platform)
	lower := strings.ToLower(content)
	firstWord := ""
	if fields := strings.Fields(lower); len(fields) > 0 {
		firstWord = fields[0]
	}

	suggestions := make([]string, 0, 10)
	for _, sample := range trending {
		tag := strings.ToLower(sample.Tag)
		if strings.Contains(lower, tag) ||
			(firstWord != "" && strings.Contains(tag, firstWord)) ||
			sample.Popularity > 80 {
			suggestions = append(suggestions, sample.Tag)
			if len(suggestions) == 10 {
				break
			}
		}
	}
	return suggestions
}

// persist upserts each sample into the catalog. Best-effort: a failed write
// logs and moves on.
func (c *Cache) persist(ctx context.Context, samples []domain.LiveSample) {
	if c.catalog == nil {
		return
	}
	for _, sample := range samples {
		if err := c.catalog.UpsertLive(ctx, sample); err != nil {
			c.log.Warn("live sample catalog write failed", "tag", sample.Tag, "error", err)
		}
	}
}

// scope returns the platforms covered by a cache key.
func (c *Cache) scope(platform domain.Platform) []domain.Platform {
	if platform == "" {
		return domain.Platforms
	}
	return []domain.Platform{platform}
}

func cacheKey(platform domain.Platform) string {
	if platform == "" {
		return KeyAll
	}
	return string(platform)
}
