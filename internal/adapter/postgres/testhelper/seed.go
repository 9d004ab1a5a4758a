package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/viovio/internal/domain"
)

// SeedUser inserts a confirmed account with a unique email. The password hash
// is not a valid bcrypt hash, so the account cannot sign in.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	id := uuid.New()
	user := domain.User{
		ID:               id,
		Email:            "learner-" + id.String()[:8] + "@example.com",
		PasswordHash:     "not-a-bcrypt-hash",
		EmailConfirmedAt: &now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, password_hash, email_confirmed_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.PasswordHash, user.EmailConfirmedAt, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed user: %v", err)
	}
	return user
}

// SeedHistory inserts a bare history row for userID and returns its id.
// createdAt controls the row's position in the newest-first listing.
func SeedHistory(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, word, meaning string, createdAt time.Time) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO user_history (user_id, word, meaning, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $4) RETURNING id`,
		userID, word, meaning, createdAt,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: seed history %q: %v", word, err)
	}
	return id
}
