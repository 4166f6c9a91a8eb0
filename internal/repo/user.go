package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tagmantra/tagmantra/backend/internal/domain"
)

// UserRepo defines the persistence operations for users and their saved
// hashtag sets.
type UserRepo interface {
	// Create inserts a new user and returns the persisted record.
	// Returns domain.ErrConflict if the email is already registered.
	Create(ctx context.Context, email, name, passwordHash string) (domain.User, error)

	// GetByID retrieves a user by primary key.
	// Returns domain.ErrNotFound if no such user exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)

	// GetByEmail retrieves a user by email.
	// Returns domain.ErrNotFound if no such user exists.
	GetByEmail(ctx context.Context, email string) (domain.User, error)

	// AddSavedSet persists a named hashtag set for a user.
	// Returns domain.ErrConflict if the user already has a set with that name.
	AddSavedSet(ctx context.Context, set domain.SavedHashtagSet) (domain.SavedHashtagSet, error)

	// ListSavedSets returns all of a user's saved sets, newest first.
	ListSavedSets(ctx context.Context, userID uuid.UUID) ([]domain.SavedHashtagSet, error)

	// DeleteSavedSet removes one saved set owned by userID.
	// Returns domain.ErrNotFound if no such set exists for that user.
	DeleteSavedSet(ctx context.Context, userID, setID uuid.UUID) error
}

// pgUserRepo is the Postgres implementation of UserRepo.
type pgUserRepo struct {
	db db
}

// NewUserRepo constructs a UserRepo backed by the provided db connection.
func NewUserRepo(db db) UserRepo {
	return &pgUserRepo{db: db}
}

// Create inserts a new user row and returns the full persisted record.
func (r *pgUserRepo) Create(ctx context.Context, email, name, passwordHash string) (domain.User, error) {
	const q = `
		INSERT INTO users (email, name, password_hash)
		VALUES (@email, @name, @password_hash)
		RETURNING id, email, name, password_hash, created_at, updated_at`

	args := pgx.NamedArgs{"email": email, "name": name, "password_hash": passwordHash}
	row := r.db.QueryRow(ctx, q, args)
	user, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, fmt.Errorf("repo.UserRepo.Create: %w", domain.ErrConflict)
		}
		return domain.User{}, fmt.Errorf("repo.UserRepo.Create: %w", err)
	}
	return user, nil
}

// GetByID retrieves a user by primary key.
func (r *pgUserRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	const q = `
		SELECT id, email, name, password_hash, created_at, updated_at
		FROM users
		WHERE id = @id`

	user, err := scanUser(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByID: %w", err)
	}
	return user, nil
}

// GetByEmail retrieves a user by email.
func (r *pgUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	const q = `
		SELECT id, email, name, password_hash, created_at, updated_at
		FROM users
		WHERE email = @email`

	user, err := scanUser(r.db.QueryRow(ctx, q, pgx.NamedArgs{"email": email}))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByEmail: %w", err)
	}
	return user, nil
}

// AddSavedSet inserts a saved hashtag set. The (user_id, name) unique
// constraint enforces per-user name uniqueness.
func (r *pgUserRepo) AddSavedSet(ctx context.Context, set domain.SavedHashtagSet) (domain.SavedHashtagSet, error) {
	const q = `
		INSERT INTO saved_hashtag_sets (user_id, name, hashtags, platform, category)
		VALUES (@user_id, @name, @hashtags, @platform, @category)
		RETURNING id, user_id, name, hashtags, platform, category, created_at`

	args := pgx.NamedArgs{
		"user_id":  set.UserID,
		"name":     set.Name,
		"hashtags": set.Hashtags,
		"platform": set.Platform,
		"category": set.Category,
	}
	row := r.db.QueryRow(ctx, q, args)
	result, err := scanSavedSet(row)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.SavedHashtagSet{}, fmt.Errorf("repo.UserRepo.AddSavedSet: %w", domain.ErrConflict)
		}
		return domain.SavedHashtagSet{}, fmt.Errorf("repo.UserRepo.AddSavedSet: %w", err)
	}
	return result, nil
}

// ListSavedSets returns a user's saved sets ordered by creation time descending.
func (r *pgUserRepo) ListSavedSets(ctx context.Context, userID uuid.UUID) ([]domain.SavedHashtagSet, error) {
	const q = `
		SELECT id, user_id, name, hashtags, platform, category, created_at
		FROM saved_hashtag_sets
		WHERE user_id = @user_id
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.UserRepo.ListSavedSets: %w", err)
	}
	defer rows.Close()

	sets := []domain.SavedHashtagSet{}
	for rows.Next() {
		set, err := scanSavedSet(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.UserRepo.ListSavedSets: scan: %w", err)
		}
		sets = append(sets, set)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.UserRepo.ListSavedSets: rows: %w", err)
	}
	return sets, nil
}

// DeleteSavedSet removes exactly one saved set owned by userID.
func (r *pgUserRepo) DeleteSavedSet(ctx context.Context, userID, setID uuid.UUID) error {
	const q = `
		DELETE FROM saved_hashtag_sets
		WHERE id = @id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": setID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("repo.UserRepo.DeleteSavedSet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.UserRepo.DeleteSavedSet: %w", domain.ErrNotFound)
	}
	return nil
}

// scanUser maps a single database row into a domain.User.
func scanUser(s scanner) (domain.User, error) {
	var (
		u  domain.User
		id pgtype.UUID
	)
	err := s.Scan(&id, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	u.ID = uuid.UUID(id.Bytes)
	return u, nil
}

// scanSavedSet maps a single database row into a domain.SavedHashtagSet.
func scanSavedSet(s scanner) (domain.SavedHashtagSet, error) {
	var (
		set        domain.SavedHashtagSet
		id, userID pgtype.UUID
	)
	err := s.Scan(&id, &userID, &set.Name, &set.Hashtags, &set.Platform, &set.Category, &set.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.SavedHashtagSet{}, domain.ErrNotFound
		}
		return domain.SavedHashtagSet{}, err
	}
	set.ID = uuid.UUID(id.Bytes)
	set.UserID = uuid.UUID(userID.Bytes)
	return set, nil
}
