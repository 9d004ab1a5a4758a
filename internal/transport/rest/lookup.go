package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/viovio/internal/domain"
	"github.com/heartmarshall/viovio/internal/service/lookup"
	"github.com/heartmarshall/viovio/internal/wire"
)

type lookupService interface {
	Lookup(ctx context.Context, query string) (*domain.VocabEntry, error)
}

// LookupHandler serves POST /api/lookup.
type LookupHandler struct {
	svc lookupService
	log *slog.Logger
}

// NewLookupHandler creates a LookupHandler.
func NewLookupHandler(svc lookupService, logger *slog.Logger) *LookupHandler {
	return &LookupHandler{svc: svc, log: logger.With("handler", "lookup")}
}

// Lookup resolves the query. A blank query answers 204 with no body.
func (h *LookupHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	var req wire.LookupRequest
	if !decodeBody(w, r, &req) {
		return
	}

	entry, err := h.svc.Lookup(r.Context(), req.Query)
	switch {
	case errors.Is(err, lookup.ErrEmptyQuery):
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, domain.ErrResolutionFailed):
		writeError(w, http.StatusUnprocessableEntity, wire.CodeResolutionFailed, wire.ResolutionFailedMessage(strings.TrimSpace(req.Query)))
	case err != nil:
		writeServiceError(w, r, h.log, err)
	default:
		writeJSON(w, http.StatusOK, wire.ToEntry(*entry))
	}
}
