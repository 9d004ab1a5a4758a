package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/viovio/internal/domain"
	"github.com/heartmarshall/viovio/internal/service/auth"
	"github.com/heartmarshall/viovio/internal/wire"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	LoginWithPassword(ctx context.Context, input auth.LoginPasswordInput) (*auth.AuthResult, error)
	ConfirmEmail(ctx context.Context, input auth.ConfirmInput) (*auth.AuthResult, error)
	Refresh(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*domain.User, error)
	UpdateDisplayName(ctx context.Context, input auth.DisplayNameInput) (*domain.User, error)
}

// AuthHandler serves auth REST endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req wire.CredentialsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.svc.Register(r.Context(), auth.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case isPasswordTooShort(err):
			writeError(w, http.StatusBadRequest, wire.CodePasswordTooShort, "password: too short")
		case errors.Is(err, domain.ErrAlreadyExists):
			writeError(w, http.StatusConflict, wire.CodeAlreadyRegistered, "user already registered")
		default:
			writeServiceError(w, r, h.log, err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, toAuthResponse(result))
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req wire.CredentialsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.svc.LoginWithPassword(r.Context(), auth.LoginPasswordInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			writeError(w, http.StatusUnauthorized, wire.CodeInvalidCredentials, "invalid login credentials")
		case errors.Is(err, domain.ErrEmailNotConfirmed):
			writeError(w, http.StatusForbidden, wire.CodeEmailNotConfirmed, "email not confirmed")
		default:
			writeServiceError(w, r, h.log, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// Confirm handles POST /auth/confirm with a JSON body and GET
// /auth/confirm?token=... as opened from the confirmation email.
func (h *AuthHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req wire.TokenRequest
	if r.Method == http.MethodGet {
		req.Token = r.URL.Query().Get("token")
	} else if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.svc.ConfirmEmail(r.Context(), auth.ConfirmInput{Token: req.Token})
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, wire.CodeUnauthorized, "invalid or expired confirmation link")
			return
		}
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// Refresh handles POST /auth/refresh.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req wire.RefreshRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.svc.Refresh(r.Context(), auth.RefreshInput{RefreshToken: req.RefreshToken})
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, wire.CodeUnauthorized, "invalid or expired refresh token")
			return
		}
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// Logout handles POST /auth/logout. The route requires a user.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context()); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetUser handles GET /auth/user.
func (h *AuthHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.CurrentUser(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(user))
}

// UpdateUser handles PATCH /auth/user.
func (h *AuthHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req wire.UpdateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.svc.UpdateDisplayName(r.Context(), auth.DisplayNameInput{Name: req.DisplayName})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(user))
}
