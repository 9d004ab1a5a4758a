package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/viovio/internal/auth"
	"github.com/heartmarshall/viovio/internal/domain"
)

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued in one transaction, so a failed insert leaves the old
// token usable. Unknown, revoked, expired or orphaned tokens all yield
// ErrUnauthorized, which the client treats as "signed out".
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	stored, err := s.tokens.GetByHash(ctx, auth.HashToken(input.RefreshToken))
	switch {
	case errors.Is(err, domain.ErrNotFound):
		// GetByHash skips revoked rows, so a replayed token lands here too.
		s.log.WarnContext(ctx, "unknown or replayed refresh token")
		return nil, domain.ErrUnauthorized
	case err != nil:
		return nil, fmt.Errorf("auth.Refresh get token: %w", err)
	case stored.IsExpired(s.now()):
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, stored.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		s.log.WarnContext(ctx, "refresh token outlived its user", slog.String("user_id", stored.UserID.String()))
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}

	var result *AuthResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		err := s.tokens.RevokeByID(txCtx, stored.ID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			// Another request rotated this token after GetByHash.
			s.log.WarnContext(ctx, "refresh token already rotated", slog.String("user_id", stored.UserID.String()))
			return domain.ErrUnauthorized
		case err != nil:
			return fmt.Errorf("revoke token: %w", err)
		}
		result, err = s.issueTokens(txCtx, user)
		return err
	})
	if errors.Is(err, domain.ErrUnauthorized) {
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh: %w", err)
	}
	return result, nil
}
