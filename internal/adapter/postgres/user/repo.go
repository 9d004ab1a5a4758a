// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/viovio/internal/adapter/postgres"
	"github.com/heartmarshall/viovio/internal/domain"
)

const table = "users"

var userColumns = []string{
	"id", "email", "password_hash", "display_name", "email_confirmed_at", "created_at", "updated_at",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID               uuid.UUID  `db:"id"`
	Email            string     `db:"email"`
	PasswordHash     string     `db:"password_hash"`
	DisplayName      *string    `db:"display_name"`
	EmailConfirmedAt *time.Time `db:"email_confirmed_at"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, id)
}

// GetByEmail returns a user by (already lowercased) email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email}, uuid.Nil)
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Eq, id uuid.UUID) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Select(userColumns...).
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	u := toDomain(rw)
	return &u, nil
}

// Create inserts a new user and returns the persisted domain.User.
// Returns domain.ErrAlreadyExists if the email is taken.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(userColumns...).
		Values(u.ID, u.Email, u.PasswordHash, u.DisplayName, u.EmailConfirmedAt, u.CreatedAt, u.UpdatedAt).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	created := toDomain(rw)
	return &created, nil
}

// UpdateDisplayName sets display_name and returns the updated user.
func (r *Repo) UpdateDisplayName(ctx context.Context, id uuid.UUID, name string) (*domain.User, error) {
	return r.update(ctx, id, map[string]any{"display_name": name})
}

// MarkConfirmed sets email_confirmed_at if it is not set yet.
func (r *Repo) MarkConfirmed(ctx context.Context, id uuid.UUID, at time.Time) (*domain.User, error) {
	return r.update(ctx, id, map[string]any{
		"email_confirmed_at": squirrel.Expr("COALESCE(email_confirmed_at, ?)", at),
	})
}

func (r *Repo) update(ctx context.Context, id uuid.UUID, set map[string]any) (*domain.User, error) {
	set["updated_at"] = squirrel.Expr("now()")

	query, args, err := postgres.Builder().
		Update(table).
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	u := toDomain(rw)
	return &u, nil
}

func joinColumns() string {
	return strings.Join(userColumns, ", ")
}

func toDomain(rw row) domain.User {
	return domain.User{
		ID:               rw.ID,
		Email:            rw.Email,
		PasswordHash:     rw.PasswordHash,
		DisplayName:      rw.DisplayName,
		EmailConfirmedAt: rw.EmailConfirmedAt,
		CreatedAt:        rw.CreatedAt,
		UpdatedAt:        rw.UpdatedAt,
	}
}
