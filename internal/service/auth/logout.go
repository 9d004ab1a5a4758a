package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/viovio/internal/domain"
	"github.com/heartmarshall/viovio/pkg/ctxutil"
)

// Logout revokes all refresh tokens for the authenticated user.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) Logout(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.tokens.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out", slog.String("user_id", userID.String()))
	return nil
}

// ValidateToken validates an access token and returns the user ID.
// Returns ErrUnauthorized if the token is invalid or expired.
func (s *Service) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	userID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}

// CleanupExpiredTokens removes expired or revoked refresh tokens and expired
// or consumed confirmations. Returns the number of rows deleted.
// This is a maintenance operation.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (int, error) {
	tokens, err := s.tokens.DeleteExpired(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "token cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupExpiredTokens: %w", err)
	}

	confirmations, err := s.confirmations.DeleteExpired(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "confirmation cleanup failed", slog.String("error", err.Error()))
		return tokens, fmt.Errorf("auth.CleanupExpiredTokens confirmations: %w", err)
	}

	count := tokens + confirmations
	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up expired tokens",
			slog.Int("refresh_tokens", tokens),
			slog.Int("confirmations", confirmations))
	}

	return count, nil
}
