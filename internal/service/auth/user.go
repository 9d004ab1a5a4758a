package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/viovio/internal/domain"
	"github.com/heartmarshall/viovio/pkg/ctxutil"
)

// CurrentUser returns the user identified by the context.
func (s *Service) CurrentUser(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.CurrentUser: %w", err)
	}
	return user, nil
}

// UpdateDisplayName sets the display name of the current user.
func (s *Service) UpdateDisplayName(ctx context.Context, input DisplayNameInput) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Name = strings.TrimSpace(input.Name)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.UpdateDisplayName(ctx, userID, input.Name)
	if err != nil {
		return nil, fmt.Errorf("auth.UpdateDisplayName: %w", err)
	}

	s.log.InfoContext(ctx, "display name updated", slog.String("user_id", userID.String()))
	return user, nil
}
