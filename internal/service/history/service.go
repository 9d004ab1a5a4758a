package history

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/viovio/internal/domain"
)

type historyRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.HistoryRecord, error)
	Insert(ctx context.Context, userID uuid.UUID, entry domain.VocabEntry, fields domain.HistoryFieldSet) (uuid.UUID, error)
	Update(ctx context.Context, userID, id uuid.UUID, entry domain.VocabEntry, fields domain.HistoryFieldSet) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// Config controls history writes.
type Config struct {
	// DegradedRetry enables one retry with the minimal column set when a
	// full write fails because the table lacks a column.
	DegradedRetry bool
}

// Service keeps the per-user lookup history.
type Service struct {
	log  *slog.Logger
	repo historyRepo
	cfg  Config
}

// NewService creates a new history service.
func NewService(logger *slog.Logger, repo historyRepo, cfg Config) *Service {
	return &Service{
		log:  logger.With("service", "history"),
		repo: repo,
		cfg:  cfg,
	}
}
