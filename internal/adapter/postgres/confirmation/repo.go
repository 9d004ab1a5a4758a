// Package confirmation implements the EmailConfirmation repository using PostgreSQL.
package confirmation

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/viovio/internal/adapter/postgres"
	"github.com/heartmarshall/viovio/internal/domain"
)

const (
	table  = "email_confirmations"
	entity = "email_confirmation"
)

// Repo provides email confirmation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new confirmation repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID         uuid.UUID  `db:"id"`
	UserID     uuid.UUID  `db:"user_id"`
	TokenHash  string     `db:"token_hash"`
	ExpiresAt  time.Time  `db:"expires_at"`
	CreatedAt  time.Time  `db:"created_at"`
	ConsumedAt *time.Time `db:"consumed_at"`
}

// Create stores a new confirmation. ID and CreatedAt are filled in on success.
func (r *Repo) Create(ctx context.Context, c *domain.EmailConfirmation) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "token_hash", "expires_at").
		Values(c.UserID, c.TokenHash, c.ExpiresAt).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert query: %w", err)
	}

	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&c.ID, &c.CreatedAt); err != nil {
		return postgres.MapError(err, entity, uuid.Nil)
	}
	return nil
}

// GetByHash returns an unconsumed, unexpired confirmation.
// Returns domain.ErrNotFound otherwise.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.EmailConfirmation, error) {
	query, args, err := postgres.Builder().
		Select("id", "user_id", "token_hash", "expires_at", "created_at", "consumed_at").
		From(table).
		Where(squirrel.Eq{"token_hash": tokenHash, "consumed_at": nil}).
		Where("expires_at > now()").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}

	return &domain.EmailConfirmation{
		ID:         rw.ID,
		UserID:     rw.UserID,
		TokenHash:  rw.TokenHash,
		ExpiresAt:  rw.ExpiresAt,
		CreatedAt:  rw.CreatedAt,
		ConsumedAt: rw.ConsumedAt,
	}, nil
}

// Consume marks the confirmation used. A confirmation can be consumed once;
// a second call returns domain.ErrNotFound.
func (r *Repo) Consume(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Update(table).
		Set("consumed_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "consumed_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build consume query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// DeleteExpired removes expired or consumed confirmations and returns the count.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Or{
			squirrel.Expr("expires_at <= now()"),
			squirrel.NotEq{"consumed_at": nil},
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, entity, uuid.Nil)
	}
	return int(tag.RowsAffected()), nil
}
