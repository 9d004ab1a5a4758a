package rest

import (
	"github.com/heartmarshall/viovio/internal/domain"
	"github.com/heartmarshall/viovio/internal/service/auth"
	"github.com/heartmarshall/viovio/internal/wire"
)

func toHistoryResponse(records []domain.HistoryRecord, synced bool) wire.HistoryResponse {
	out := make([]wire.HistoryRecord, 0, len(records))
	for _, r := range records {
		out = append(out, wire.ToHistoryRecord(r))
	}
	return wire.HistoryResponse{Records: out, Synced: synced}
}

func toUser(u *domain.User) wire.User {
	return wire.User{
		ID:             u.ID,
		Email:          u.Email,
		DisplayName:    u.DisplayName,
		EmailConfirmed: u.IsConfirmed(),
	}
}

func toAuthResponse(result *auth.AuthResult) wire.AuthResponse {
	resp := wire.AuthResponse{
		User:                 toUser(result.User),
		ConfirmationRequired: result.ConfirmationPending(),
	}
	if s := result.Session; s != nil {
		expiresAt := s.ExpiresAt
		resp.AccessToken = s.AccessToken
		resp.RefreshToken = s.RefreshToken
		resp.ExpiresAt = &expiresAt
	}
	return resp
}
