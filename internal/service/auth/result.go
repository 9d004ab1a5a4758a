package auth

import (
	"time"

	"github.com/heartmarshall/viovio/internal/domain"
)

// Session is an issued token pair.
type Session struct {
	AccessToken  string
	ExpiresAt    time.Time
	RefreshToken string // raw token, NOT hash
}

// AuthResult is returned by Register, LoginWithPassword, ConfirmEmail and Refresh.
// Session is nil when the account still waits for email confirmation.
type AuthResult struct {
	Session *Session
	User    *domain.User
}

// ConfirmationPending reports whether the user must confirm the email first.
func (r *AuthResult) ConfirmationPending() bool {
	return r.Session == nil
}
