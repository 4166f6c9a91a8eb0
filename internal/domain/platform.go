// Package domain contains the core data types for the hashtag suggestion API.
// This package has zero external dependencies and is imported by every other
// internal package (keywords, live, repo, service, handler).
package domain

// Platform identifies one of the supported social networks.
// Each platform carries a hard cap on how many hashtags a post can use.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformYouTube   Platform = "youtube"
	PlatformTwitter   Platform = "twitter"
)

// Platforms lists every supported platform in the order the live cache
// collects them when no single platform is requested.
var Platforms = []Platform{PlatformTwitter, PlatformInstagram, PlatformYouTube, PlatformFacebook}

// platformCaps maps each platform to its hashtag-count hard cap.
var platformCaps = map[Platform]int{
	PlatformInstagram: 30,
	PlatformFacebook:  10,
	PlatformYouTube:   15,
	PlatformTwitter:   5,
}

// Valid reports whether p is one of the four supported platforms.
func (p Platform) Valid() bool {
	_, ok := platformCaps[p]
	return ok
}

// MaxHashtags returns the hashtag-count cap for the platform.
// It returns 0 for an unknown platform; callers must validate first.
func (p Platform) MaxHashtags() int {
	return platformCaps[p]
}
