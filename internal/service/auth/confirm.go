package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/viovio/internal/auth"
	"github.com/heartmarshall/viovio/internal/domain"
)

// ConfirmEmail consumes a confirmation token, marks the owner confirmed and
// signs them in. Unknown, expired or already used tokens yield ErrUnauthorized.
func (s *Service) ConfirmEmail(ctx context.Context, input ConfirmInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.confirmations.GetByHash(ctx, auth.HashToken(input.Token))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.ConfirmEmail get confirmation: %w", err)
	}

	var user *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.confirmations.Consume(txCtx, c.ID); err != nil {
			return fmt.Errorf("consume: %w", err)
		}
		u, err := s.users.MarkConfirmed(txCtx, c.UserID, s.now())
		if err != nil {
			return fmt.Errorf("mark confirmed: %w", err)
		}
		user = u
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Lost a race with another consumer, or the user was deleted.
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.ConfirmEmail: %w", err)
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.ConfirmEmail issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "email confirmed", slog.String("user_id", user.ID.String()))
	return result, nil
}
