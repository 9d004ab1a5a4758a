package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/viovio/internal/domain"
)

// SQLSTATE codes the repositories translate into domain sentinels.
var sqlStates = map[string]error{
	"23505": domain.ErrAlreadyExists,  // unique_violation
	"23503": domain.ErrNotFound,       // foreign_key_violation
	"23514": domain.ErrValidation,     // check_violation
	"23502": domain.ErrValidation,     // not_null_violation
	"42703": domain.ErrSchemaMismatch, // undefined_column
}

// MapError wraps err with the entity it concerns and, where it can, a domain
// sentinel: no rows becomes ErrNotFound and known SQLSTATEs map through
// sqlStates. A uuid.Nil id is left out of the message. Context errors and
// unknown failures keep their original chain.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	label := entity
	if id != uuid.Nil {
		label += " " + id.String()
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", label, err)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", label, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if sentinel, ok := sqlStates[pgErr.Code]; ok {
			if detail := pgErrDetail(pgErr); detail != "" {
				return fmt.Errorf("%s: %w: %s", label, sentinel, detail)
			}
			return fmt.Errorf("%s: %w", label, sentinel)
		}
	}
	return fmt.Errorf("%s: %w", label, err)
}

// pgErrDetail names the offending constraint, or for a missing column the
// server's message, which names the column.
func pgErrDetail(e *pgconn.PgError) string {
	if e.ConstraintName != "" {
		return e.ConstraintName
	}
	if sqlStates[e.Code] == domain.ErrSchemaMismatch {
		return e.Message
	}
	return ""
}
