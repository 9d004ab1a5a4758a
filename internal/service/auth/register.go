package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/viovio/internal/auth"
	"github.com/heartmarshall/viovio/internal/domain"
)

// Register creates a new user with email + password authentication.
// Returns ErrAlreadyExists if the email is already registered.
// When email confirmation is required the result carries no session and a
// confirmation link is handed to the sender.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	// Step 1: Validate input
	if err := input.Validate(s.cfg.PasswordMinLength); err != nil {
		return nil, err
	}

	// Step 2: Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	// Step 3: Create user (+ confirmation) in a transaction.
	// Email uniqueness is enforced by a DB constraint.
	var (
		createdUser  *domain.User
		confirmToken string
	)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := s.now()
		newUser := &domain.User{
			ID:           uuid.New(),
			Email:        input.Email,
			PasswordHash: string(hash),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if !s.cfg.RequireEmailConfirmation {
			newUser.EmailConfirmedAt = &now
		}

		user, err := s.users.Create(txCtx, newUser)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		createdUser = user

		if !s.cfg.RequireEmailConfirmation {
			return nil
		}

		raw, tokenHash, err := auth.NewOpaqueToken()
		if err != nil {
			return fmt.Errorf("generate confirmation token: %w", err)
		}
		c := &domain.EmailConfirmation{
			UserID:    user.ID,
			TokenHash: tokenHash,
			ExpiresAt: now.Add(s.cfg.ConfirmationTTL),
		}
		if err := s.confirmations.Create(txCtx, c); err != nil {
			return fmt.Errorf("create confirmation: %w", err)
		}
		confirmToken = raw
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	if s.cfg.RequireEmailConfirmation {
		link := confirmationLink(s.cfg.ConfirmationURL, confirmToken)
		if err := s.sender.SendConfirmation(ctx, createdUser.Email, link); err != nil {
			s.log.ErrorContext(ctx, "send confirmation failed",
				slog.String("user_id", createdUser.ID.String()),
				slog.String("error", err.Error()))
		}

		s.log.InfoContext(ctx, "user registered, confirmation pending",
			slog.String("user_id", createdUser.ID.String()))
		return &AuthResult{User: createdUser}, nil
	}

	// Step 4: Issue tokens
	result, err := s.issueTokens(ctx, createdUser)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user registered via password",
		slog.String("user_id", createdUser.ID.String()))

	return result, nil
}

// confirmationLink appends the raw token as the "token" query parameter.
func confirmationLink(base, token string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base + "?token=" + url.QueryEscape(token)
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String()
}
