package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account that owns history records.
type User struct {
	ID               uuid.UUID
	Email            string
	DisplayName      *string
	PasswordHash     string
	EmailConfirmedAt *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsConfirmed returns true once the user's email has been confirmed.
func (u *User) IsConfirmed() bool {
	return u.EmailConfirmedAt != nil
}

// HasDisplayName returns true if a non-empty display name is set.
func (u *User) HasDisplayName() bool {
	return u.DisplayName != nil && *u.DisplayName != ""
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

// EmailConfirmation is a single-use token sent to a newly registered address.
type EmailConfirmation struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	TokenHash  string
	ExpiresAt  time.Time
	CreatedAt  time.Time
	ConsumedAt *time.Time
}

// IsUsable returns true if the confirmation is neither consumed nor expired.
func (c *EmailConfirmation) IsUsable(now time.Time) bool {
	return c.ConsumedAt == nil && !c.ExpiresAt.Before(now)
}
