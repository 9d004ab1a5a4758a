// Package wire holds the JSON bodies and error codes of the HTTP API. The
// server handlers and the terminal client both speak it.
package wire

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/viovio/internal/domain"
)

// Error codes returned in ErrorResponse.Code.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodePasswordTooShort   = "PASSWORD_TOO_SHORT"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeAlreadyRegistered  = "ALREADY_REGISTERED"
	CodeEmailNotConfirmed  = "EMAIL_NOT_CONFIRMED"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeResolutionFailed   = "RESOLUTION_FAILED"
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeRateLimited        = "RATE_LIMITED"
	CodeInternal           = "INTERNAL"
)

// ResolutionFailedMessage is the single message shown for any failed lookup.
func ResolutionFailedMessage(query string) string {
	return "无法解析 \"" + query + "\"。"
}

// Entry is the wire form of a vocabulary entry.
type Entry struct {
	Word        string    `json:"word"`
	Phonetic    string    `json:"phonetic"`
	Meaning     string    `json:"meaning"`
	Type        string    `json:"type"`
	Explanation string    `json:"explanation"`
	Example     string    `json:"example"`
	ExampleCn   string    `json:"exampleCn"`
	Tags        []string  `json:"tags"`
	AudioURL    *string   `json:"audioUrl,omitempty"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	IsAI        bool      `json:"isAi"`
	SearchedAt  time.Time `json:"searchedAt"`
}

// HistoryRecord is an Entry saved for the caller.
type HistoryRecord struct {
	ID uuid.UUID `json:"id"`
	Entry
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HistoryResponse is returned by every history endpoint. Synced is false
// for anonymous callers, whose history lives only on the client.
type HistoryResponse struct {
	Records []HistoryRecord `json:"records"`
	Synced  bool            `json:"synced"`
}

// LookupRequest is the body of POST /api/lookup.
type LookupRequest struct {
	Query string `json:"query"`
}

// User is the wire form of the current account.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	DisplayName    *string   `json:"displayName,omitempty"`
	EmailConfirmed bool      `json:"emailConfirmed"`
}

// AuthResponse carries a session, or only the user when the account waits
// for email confirmation.
type AuthResponse struct {
	AccessToken          string     `json:"accessToken,omitempty"`
	RefreshToken         string     `json:"refreshToken,omitempty"`
	ExpiresAt            *time.Time `json:"expiresAt,omitempty"`
	User                 User       `json:"user"`
	ConfirmationRequired bool       `json:"confirmationRequired"`
}

// CredentialsRequest is the body of signup and login.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenRequest is the body of confirm.
type TokenRequest struct {
	Token string `json:"token"`
}

// RefreshRequest is the body of refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// UpdateUserRequest is the body of PATCH /auth/user.
type UpdateUserRequest struct {
	DisplayName string `json:"displayName"`
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ToEntry converts a domain entry to its wire form. Nil tags go out as [].
func ToEntry(e domain.VocabEntry) Entry {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	return Entry{
		Word:        e.Word,
		Phonetic:    e.Phonetic,
		Meaning:     e.Meaning,
		Type:        e.PartOfSpeech,
		Explanation: e.Explanation,
		Example:     e.Example,
		ExampleCn:   e.ExampleTranslation,
		Tags:        tags,
		AudioURL:    e.AudioURL,
		ImageURL:    e.ImageURL,
		IsAI:        e.Provenance.IsAI(),
		SearchedAt:  e.SearchedAt,
	}
}

// Domain converts the wire form back to a domain entry.
func (e Entry) Domain() domain.VocabEntry {
	return domain.VocabEntry{
		Word:               e.Word,
		Phonetic:           e.Phonetic,
		Meaning:            e.Meaning,
		PartOfSpeech:       e.Type,
		Explanation:        e.Explanation,
		Example:            e.Example,
		ExampleTranslation: e.ExampleCn,
		Tags:               e.Tags,
		AudioURL:           e.AudioURL,
		ImageURL:           e.ImageURL,
		Provenance:         domain.ProvenanceFromFlag(e.IsAI),
		SearchedAt:         e.SearchedAt,
	}
}

// ToHistoryRecord converts a domain record to its wire form.
func ToHistoryRecord(r domain.HistoryRecord) HistoryRecord {
	return HistoryRecord{
		ID:        r.ID,
		Entry:     ToEntry(r.VocabEntry),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Domain converts the wire form back to a domain record.
func (r HistoryRecord) Domain() domain.HistoryRecord {
	return domain.HistoryRecord{
		ID:         r.ID,
		VocabEntry: r.Entry.Domain(),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}
