package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/viovio/internal/config"
	"github.com/heartmarshall/viovio/internal/domain"
)

// userRepo persists accounts.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateDisplayName(ctx context.Context, id uuid.UUID, name string) (*domain.User, error)
	MarkConfirmed(ctx context.Context, id uuid.UUID, at time.Time) (*domain.User, error)
}

// tokenRepo stores refresh token hashes. GetByHash ignores revoked rows.
type tokenRepo interface {
	Create(ctx context.Context, token *domain.RefreshToken) error
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByID(ctx context.Context, id uuid.UUID) error
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int, error)
}

// confirmationRepo stores single-use email confirmation token hashes.
type confirmationRepo interface {
	Create(ctx context.Context, c *domain.EmailConfirmation) error
	GetByHash(ctx context.Context, tokenHash string) (*domain.EmailConfirmation, error)
	Consume(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context) (int, error)
}

// txManager runs fn in a transaction that repositories join through ctx.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager signs short-lived access tokens and mints opaque refresh tokens.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
	GenerateRefreshToken() (raw string, hash string, err error)
}

// confirmationSender delivers a confirmation link to a freshly registered address.
type confirmationSender interface {
	SendConfirmation(ctx context.Context, email, link string) error
}

// Service implements sign-up, sign-in, confirmation and session rotation
// for viovio accounts.
type Service struct {
	log           *slog.Logger
	users         userRepo
	tokens        tokenRepo
	confirmations confirmationRepo
	tx            txManager
	jwt           jwtManager
	sender        confirmationSender
	cfg           config.AuthConfig
	now           func() time.Time
	decoyHash     []byte
}

// NewService wires the auth service.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tokens tokenRepo,
	confirmations confirmationRepo,
	tx txManager,
	jwt jwtManager,
	sender confirmationSender,
	cfg config.AuthConfig,
) *Service {
	// Compared against when an email is unknown, at the configured cost.
	decoy, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), cfg.PasswordHashCost)
	if err != nil {
		decoy, _ = bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	}

	return &Service{
		log:           logger.With("service", "auth"),
		users:         users,
		tokens:        tokens,
		confirmations: confirmations,
		tx:            tx,
		jwt:           jwt,
		sender:        sender,
		cfg:           cfg,
		now:           time.Now,
		decoyHash:     decoy,
	}
}

// issueTokens generates access and refresh tokens for the given user, stores
// the refresh token hash in DB, and returns an AuthResult.
func (s *Service) issueTokens(ctx context.Context, user *domain.User) (*AuthResult, error) {
	accessToken, expiresAt, err := s.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, hashRefresh, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	refreshToken := &domain.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashRefresh,
		ExpiresAt: s.now().Add(s.cfg.RefreshTokenTTL),
	}
	if err := s.tokens.Create(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &AuthResult{
		Session: &Session{
			AccessToken:  accessToken,
			ExpiresAt:    expiresAt,
			RefreshToken: rawRefresh,
		},
		User: user,
	}, nil
}
