package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tagmantra/tagmantra/backend/internal/domain"
)

// FestivalRepo defines the persistence operations for festival records.
type FestivalRepo interface {
	// Upcoming returns active festivals whose date falls within [from, to],
	// ordered by date ascending.
	Upcoming(ctx context.Context, from, to time.Time) ([]domain.Festival, error)

	// Insert creates a festival record. Seeding-only.
	// Returns domain.ErrConflict if a festival with that name exists.
	Insert(ctx context.Context, f domain.Festival) error
}

// pgFestivalRepo is the Postgres implementation of FestivalRepo.
type pgFestivalRepo struct {
	db db
}

// NewFestivalRepo constructs a FestivalRepo backed by the provided db connection.
func NewFestivalRepo(db db) FestivalRepo {
	return &pgFestivalRepo{db: db}
}

// Upcoming selects active festivals inside the date window.
func (r *pgFestivalRepo) Upcoming(ctx context.Context, from, to time.Time) ([]domain.Festival, error) {
	const q = `
		SELECT id, name, date, hashtags, description, active
		FROM festivals
		WHERE date >= @from AND date <= @to AND active = true
		ORDER BY date`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"from": from, "to": to})
	if err != nil {
		return nil, fmt.Errorf("repo.FestivalRepo.Upcoming: %w", err)
	}
	defer rows.Close()

	festivals := []domain.Festival{}
	for rows.Next() {
		var f domain.Festival
		if err := rows.Scan(&f.ID, &f.Name, &f.Date, &f.Hashtags, &f.Description, &f.Active); err != nil {
			return nil, fmt.Errorf("repo.FestivalRepo.Upcoming: scan: %w", err)
		}
		festivals = append(festivals, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.FestivalRepo.Upcoming: rows: %w", err)
	}
	return festivals, nil
}

// Insert creates a new festival record.
func (r *pgFestivalRepo) Insert(ctx context.Context, f domain.Festival) error {
	const q = `
		INSERT INTO festivals (name, date, hashtags, description, active)
		VALUES (@name, @date, @hashtags, @description, @active)`

	args := pgx.NamedArgs{
		"name":        f.Name,
		"date":        f.Date,
		"hashtags":    f.Hashtags,
		"description": f.Description,
		"active":      f.Active,
	}
	if _, err := r.db.Exec(ctx, q, args); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("repo.FestivalRepo.Insert: %w", domain.ErrConflict)
		}
		return fmt.Errorf("repo.FestivalRepo.Insert: %w", err)
	}
	return nil
}
