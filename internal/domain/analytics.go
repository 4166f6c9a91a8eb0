package domain

import (
	"time"

	"github.com/google/uuid"
)

// AnalyticsAction names a user action recorded for usage analytics.
type AnalyticsAction string

const (
	ActionGenerate AnalyticsAction = "generate"
	ActionSave     AnalyticsAction = "save"
)

// AnalyticsEvent is an append-only usage record. UserID is nil for anonymous
// generation requests, which are not recorded.
type AnalyticsEvent struct {
	UserID       *uuid.UUID      `json:"userId,omitempty"`
	Action       AnalyticsAction `json:"action"`
	Platform     Platform        `json:"platform"`
	Category     Category        `json:"category"`
	HashtagCount int             `json:"hashtagCount"`
	Timestamp    time.Time       `json:"timestamp"`
}
