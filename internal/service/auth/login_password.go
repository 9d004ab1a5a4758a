package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/viovio/internal/domain"
)

// LoginWithPassword signs a user in by email and password. Unknown emails
// and wrong passwords both return ErrUnauthorized after a bcrypt
// comparison, so response time does not reveal which accounts exist. An
// unconfirmed account gets ErrEmailNotConfirmed when confirmation is
// required.
func (s *Service) LoginWithPassword(ctx context.Context, input LoginPasswordInput) (*AuthResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("auth.LoginWithPassword get user: %w", err)
	}

	hash := s.decoyHash
	if user != nil && user.PasswordHash != "" {
		hash = []byte(user.PasswordHash)
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(input.Password)) != nil || user == nil || user.PasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}

	if s.cfg.RequireEmailConfirmation && !user.IsConfirmed() {
		return nil, domain.ErrEmailNotConfirmed
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithPassword issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "signed in", slog.String("user_id", user.ID.String()))
	return result, nil
}
