package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tagmantra/tagmantra/backend/internal/domain"
)

// AnalyticsRepo defines the append-only store for usage analytics events.
type AnalyticsRepo interface {
	// Insert appends one analytics event.
	Insert(ctx context.Context, event domain.AnalyticsEvent) error
}

// pgAnalyticsRepo is the Postgres implementation of AnalyticsRepo.
type pgAnalyticsRepo struct {
	db db
}

// NewAnalyticsRepo constructs an AnalyticsRepo backed by the provided db connection.
func NewAnalyticsRepo(db db) AnalyticsRepo {
	return &pgAnalyticsRepo{db: db}
}

// Insert appends an analytics event row.
func (r *pgAnalyticsRepo) Insert(ctx context.Context, event domain.AnalyticsEvent) error {
	const q = `
		INSERT INTO analytics_events (user_id, action, platform, category, hashtag_count, timestamp)
		VALUES (@user_id, @action, @platform, @category, @hashtag_count, @timestamp)`

	args := pgx.NamedArgs{
		"user_id":       event.UserID, // nil becomes NULL
		"action":        event.Action,
		"platform":      event.Platform,
		"category":      event.Category,
		"hashtag_count": event.HashtagCount,
		"timestamp":     event.Timestamp,
	}
	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("repo.AnalyticsRepo.Insert: %w", err)
	}
	return nil
}
