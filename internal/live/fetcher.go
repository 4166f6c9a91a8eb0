// Package live implements the live trending cache: per-platform fetchers that
// pull trending hashtags from upstream APIs (degrading to static fallback
// lists), and a time-expiring in-process cache over their results.
package live

import (
	"context"
	"log/slog"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/tagmantra/tagmantra/backend/internal/domain"
)

// Fetcher obtains the current trending samples for one platform.
// Implementations never fail: upstream errors degrade to fallback data.
type Fetcher interface {
	Platform() domain.Platform
	Fetch(ctx context.Context) []domain.LiveSample
}

// indiaWOEID is the Yahoo Where-On-Earth ID for India, used by the Twitter
// trends endpoint.
const indiaWOEID = "23424848"

// TwitterFetcher pulls Indian trending topics from the Twitter v2 API using
// bearer-token auth. Without a token it serves fallback data.
type TwitterFetcher struct {
	client *resty.Client
	bearer string
	now    func() time.Time
	log    *slog.Logger
}

// NewTwitterFetcher constructs a TwitterFetcher. An empty bearer token is a
// normal condition: every Fetch then returns fallback samples.
func NewTwitterFetcher(bearer string, log *slog.Logger) *TwitterFetcher {
	c := resty.New().
		SetBaseURL("https://api.twitter.com/2").
		SetHeader("Content-Type", "application/json").
		SetTimeout(10 * time.Second)
	return &TwitterFetcher{client: c, bearer: bearer, now: time.Now, log: log}
}

func (f *TwitterFetcher) Platform() domain.Platform { return domain.PlatformTwitter }

// twitterTrendsResponse mirrors the v2 trends-by-WOEID payload shape.
type twitterTrendsResponse []struct {
	Trends []struct {
		Name        string `json:"name"`
		TweetVolume int    `json:"tweet_volume"`
	} `json:"trends"`
}

// Fetch returns Twitter's current Indian trends, or fallback data when the
// token is missing, the request fails, or the payload is empty.
func (f *TwitterFetcher) Fetch(ctx context.Context) []domain.LiveSample {
	if f.bearer == "" {
		f.log.Info("twitter bearer token not configured, using fallback data")
		return FallbackSamples(domain.PlatformTwitter, f.now())
	}

	var payload twitterTrendsResponse
	resp, err := f.client.R().
		SetContext(ctx).
		SetAuthToken(f.bearer).
		SetResult(&payload).
		Get("/trends/by/woeid/" + indiaWOEID)
	if err != nil {
		f.log.Warn("twitter trends fetch failed", "error", err)
		return FallbackSamples(domain.PlatformTwitter, f.now())
	}
	if !resp.IsSuccess() {
		f.log.Warn("twitter trends fetch failed", "status", resp.StatusCode())
		return FallbackSamples(domain.PlatformTwitter, f.now())
	}
	if len(payload) == 0 || len(payload[0].Trends) == 0 {
		f.log.Info("twitter trends response empty, using fallback data")
		return FallbackSamples(domain.PlatformTwitter, f.now())
	}

	now := f.now()
	samples := make([]domain.LiveSample, 0, len(payload[0].Trends))
	for _, trend := range payload[0].Trends {
		samples = append(samples, domain.LiveSample{
			Tag:        strings.TrimPrefix(trend.Name, "#"),
			Platform:   domain.PlatformTwitter,
			Popularity: popularityFromVolume(trend.TweetVolume),
			Trending:   true,
			UsageCount: trend.TweetVolume,
			Timestamp:  now,
			Source:     domain.SourceAPI,
		})
	}
	return samples
}

// popularityFromVolume normalizes a raw tweet volume onto the 0-100
// popularity scale with a logarithmic transform. Zero volume means the
// upstream omitted the figure; score 50 in that case.
func popularityFromVolume(volume int) int {
	if volume <= 0 {
		return 50
	}
	score := math.Log10(float64(volume)+1) * 20
	return int(math.Min(100, math.Max(0, score)))
}

// YouTubeFetcher derives trending hashtags from the titles and descriptions
// of India's most popular videos via the YouTube Data API.
type YouTubeFetcher struct {
	client *resty.Client
	apiKey string
	now    func() time.Time
	log    *slog.Logger
}

// NewYouTubeFetcher constructs a YouTubeFetcher. An empty API key is a normal
// condition: every Fetch then returns fallback samples.
func NewYouTubeFetcher(apiKey string, log *slog.Logger) *YouTubeFetcher {
	c := resty.New().
		SetBaseURL("https://www.googleapis.com/youtube/v3").
		SetTimeout(10 * time.Second)
	return &YouTubeFetcher{client: c, apiKey: apiKey, now: time.Now, log: log}
}

func (f *YouTubeFetcher) Platform() domain.Platform { return domain.PlatformYouTube }

// youtubeSearchResponse mirrors the slice of the search payload we read.
type youtubeSearchResponse struct {
	Items []struct {
		Snippet struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		} `json:"snippet"`
	} `json:"items"`
}

var hashtagPattern = regexp.MustCompile(`#\w+`)

// Fetch extracts #word tokens from the fetched video set, ranks them by
// frequency, and returns the top 20 as samples. Any failure or an empty
// result degrades to fallback data.
func (f *YouTubeFetcher) Fetch(ctx context.Context) []domain.LiveSample {
	if f.apiKey == "" {
		f.log.Info("youtube api key not configured, using fallback data")
		return FallbackSamples(domain.PlatformYouTube, f.now())
	}

	var payload youtubeSearchResponse
	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part":       "snippet",
			"chart":      "mostPopular",
			"regionCode": "IN",
			"maxResults": "50",
			"key":        f.apiKey,
		}).
		SetResult(&payload).
		Get("/search")
	if err != nil {
		f.log.Warn("youtube trends fetch failed", "error", err)
		return FallbackSamples(domain.PlatformYouTube, f.now())
	}
	if !resp.IsSuccess() {
		f.log.Warn("youtube trends fetch failed", "status", resp.StatusCode())
		return FallbackSamples(domain.PlatformYouTube, f.now())
	}

	counts := map[string]int{}
	for _, item := range payload.Items {
		text := item.Snippet.Title + " " + item.Snippet.Description
		for _, match := range hashtagPattern.FindAllString(text, -1) {
			counts[strings.TrimPrefix(match, "#")]++
		}
	}
	if len(counts) == 0 {
		f.log.Info("no hashtags found in youtube videos, using fallback data")
		return FallbackSamples(domain.PlatformYouTube, f.now())
	}

	type tagCount struct {
		tag   string
		count int
	}
	ranked := make([]tagCount, 0, len(counts))
	for tag, count := range counts {
		ranked = append(ranked, tagCount{tag, count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].tag < ranked[j].tag
	})
	if len(ranked) > 20 {
		ranked = ranked[:20]
	}

	now := f.now()
	samples := make([]domain.LiveSample, len(ranked))
	for i, tc := range ranked {
		popularity := tc.count * 5
		if popularity > 100 {
			popularity = 100
		}
		samples[i] = domain.LiveSample{
			Tag:        tc.tag,
			Platform:   domain.PlatformYouTube,
			Popularity: popularity,
			Trending:   true,
			UsageCount: tc.count,
			Timestamp:  now,
			Source:     domain.SourceAPI,
		}
	}
	return samples
}

// StaticFetcher serves fallback data for platforms with no programmatic
// trending source (instagram, facebook).
type StaticFetcher struct {
	platform domain.Platform
	now      func() time.Time
}

// NewStaticFetcher constructs a fallback-only fetcher for platform.
func NewStaticFetcher(platform domain.Platform) *StaticFetcher {
	return &StaticFetcher{platform: platform, now: time.Now}
}

func (f *StaticFetcher) Platform() domain.Platform { return f.platform }

func (f *StaticFetcher) Fetch(ctx context.Context) []domain.LiveSample {
	return FallbackSamples(f.platform, f.now())
}
