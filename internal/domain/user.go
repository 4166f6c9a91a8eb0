package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. PasswordHash is a bcrypt digest and never
// leaves the repo/service layers.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// SavedHashtagSet is a named hashtag list a user has persisted.
// Name is unique within the owning user's collection.
type SavedHashtagSet struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"-"`
	Name      string    `json:"name"`
	Hashtags  []string  `json:"hashtags"`
	Platform  Platform  `json:"platform"`
	Category  Category  `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}
