package auth

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/viovio/internal/domain"
)

const (
	maxEmailLength       = 254
	maxPasswordLength    = 72 // bcrypt ignores bytes past 72
	maxDisplayNameLength = 64
	maxOpaqueTokenLength = 512
)

// RegisterInput holds parameters for password registration.
type RegisterInput struct {
	Email    string
	Password string
}

// Validate validates the registration input.
func (i RegisterInput) Validate(minPasswordLength int) error {
	var errs []domain.FieldError
	errs = appendEmailErrors(errs, i.Email)

	switch {
	case i.Password == "":
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case utf8.RuneCountInString(i.Password) < minPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	case len(i.Password) > maxPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginPasswordInput holds parameters for password login.
type LoginPasswordInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginPasswordInput) Validate() error {
	var errs []domain.FieldError
	errs = appendEmailErrors(errs, i.Email)

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	return validateOpaqueToken("refresh_token", i.RefreshToken)
}

// ConfirmInput holds the raw token from a confirmation link.
type ConfirmInput struct {
	Token string
}

// Validate validates the confirmation input.
func (i ConfirmInput) Validate() error {
	return validateOpaqueToken("token", i.Token)
}

// DisplayNameInput holds a new display name.
type DisplayNameInput struct {
	Name string
}

// Validate validates the display name.
func (i DisplayNameInput) Validate() error {
	n := utf8.RuneCountInString(i.Name)
	switch {
	case n == 0:
		return domain.NewValidationError("display_name", "required")
	case n > maxDisplayNameLength:
		return domain.NewValidationError("display_name", "too long")
	}
	return nil
}

func validateOpaqueToken(field, token string) error {
	if token == "" {
		return domain.NewValidationError(field, "required")
	}
	if len(token) > maxOpaqueTokenLength {
		return domain.NewValidationError(field, "too long")
	}
	return nil
}

func appendEmailErrors(errs []domain.FieldError, email string) []domain.FieldError {
	switch {
	case email == "":
		return append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(email) > maxEmailLength:
		return append(errs, domain.FieldError{Field: "email", Message: "too long"})
	case !looksLikeEmail(email):
		return append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}
	return errs
}

// looksLikeEmail accepts local@domain.tld with no whitespace.
func looksLikeEmail(email string) bool {
	local, host, ok := strings.Cut(email, "@")
	if !ok || local == "" || strings.Contains(host, "@") {
		return false
	}
	if strings.ContainsAny(email, " \t\r\n") {
		return false
	}
	dot := strings.LastIndexByte(host, '.')
	return dot > 0 && dot < len(host)-1
}
