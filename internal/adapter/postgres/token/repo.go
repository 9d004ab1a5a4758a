// Package token implements the RefreshToken repository using PostgreSQL.
package token

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
	table  = "refresh_tokens"
	entity = "refresh_token"
)

// Repo provides refresh-token persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new token repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	TokenHash string     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	CreatedAt time.Time  `db:"created_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}

// Create inserts a new refresh token. ID and CreatedAt are filled in on success.
func (r *Repo) Create(ctx context.Context, token *domain.RefreshToken) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "token_hash", "expires_at").
		Values(token.UserID, token.TokenHash, token.ExpiresAt).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert query: %w", err)
	}

	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&token.ID, &token.CreatedAt); err != nil {
		return postgres.MapError(err, entity, uuid.Nil)
	}
	return nil
}

// GetByHash returns an active (non-revoked, non-expired) refresh token by its hash.
// Returns domain.ErrNotFound if the token does not exist, is revoked, or is expired.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	query, args, err := postgres.Builder().
		Select("id", "user_id", "token_hash", "expires_at", "created_at", "revoked_at").
		From(table).
		Where(squirrel.Eq{"token_hash": tokenHash, "revoked_at": nil}).
		Where("expires_at > now()").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}

	return &domain.RefreshToken{
		ID:        rw.ID,
		UserID:    rw.UserID,
		TokenHash: rw.TokenHash,
		ExpiresAt: rw.ExpiresAt,
		CreatedAt: rw.CreatedAt,
		RevokedAt: rw.RevokedAt,
	}, nil
}

// RevokeByID revokes an active refresh token by setting revoked_at.
// Returns domain.ErrNotFound if the token does not exist or was already
// revoked, so two concurrent rotations of one token cannot both succeed.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	n, err := r.revoke(ctx, squirrel.Eq{"id": id, "revoked_at": nil}, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// RevokeAllByUser revokes all active refresh tokens for the given user.
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	_, err := r.revoke(ctx, squirrel.Eq{"user_id": userID, "revoked_at": nil}, uuid.Nil)
	return err
}

func (r *Repo) revoke(ctx context.Context, where squirrel.Eq, id uuid.UUID) (int64, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("revoked_at", squirrel.Expr("now()")).
		Where(where).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build revoke query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, entity, id)
	}
	return tag.RowsAffected(), nil
}

// DeleteExpired removes all expired or revoked tokens from the database.
// Returns the count of deleted tokens.
// May delete many records; does not use a transaction.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Or{
			squirrel.Expr("expires_at <= now()"),
			squirrel.NotEq{"revoked_at": nil},
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
