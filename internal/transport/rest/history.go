package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/viovio/internal/domain"
	"github.com/heartmarshall/viovio/internal/wire"
	"github.com/heartmarshall/viovio/pkg/ctxutil"
)

type historyService interface {
	List(ctx context.Context) ([]domain.HistoryRecord, error)
	Save(ctx context.Context, entry domain.VocabEntry) ([]domain.HistoryRecord, error)
	Delete(ctx context.Context, id uuid.UUID) ([]domain.HistoryRecord, error)
}

// HistoryHandler serves /api/history. Anonymous callers get an empty,
// unsynced list and their writes are ignored.
type HistoryHandler struct {
	svc historyService
	log *slog.Logger
}

// NewHistoryHandler creates a HistoryHandler.
func NewHistoryHandler(svc historyService, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{svc: svc, log: logger.With("handler", "history")}
}

// List handles GET /api/history.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toHistoryResponse(records, !ctxutil.IsAnonymous(r.Context())))
}

// Save handles POST /api/history.
func (h *HistoryHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req wire.Entry
	if !decodeBody(w, r, &req) {
		return
	}

	records, err := h.svc.Save(r.Context(), req.Domain())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toHistoryResponse(records, !ctxutil.IsAnonymous(r.Context())))
}

// Delete handles DELETE /api/history/{id}.
func (h *HistoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, wire.CodeValidation, "id: invalid format")
		return
	}

	records, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, wire.CodeNotFound, "history record not found")
			return
		}
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toHistoryResponse(records, !ctxutil.IsAnonymous(r.Context())))
}
