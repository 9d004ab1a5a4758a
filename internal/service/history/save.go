package history

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/viovio/internal/domain"
	"github.com/heartmarshall/viovio/pkg/ctxutil"
)

// Save upserts entry into the caller's history: a record with the same word
// (case-insensitive) is updated in place, otherwise a new one is inserted.
// It returns the freshly re-read history. An anonymous caller is a no-op
// returning nil, nil.
func (s *Service) Save(ctx context.Context, entry domain.VocabEntry) ([]domain.HistoryRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, nil
	}

	if err := s.upsert(ctx, userID, entry); err != nil {
		return nil, fmt.Errorf("history.Save: %w", err)
	}

	records, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("history.Save: refetch: %w", err)
	}
	return records, nil
}

// Record is Save without the snapshot. It is the lookup persistence hook.
func (s *Service) Record(ctx context.Context, entry domain.VocabEntry) error {
	_, err := s.Save(ctx, entry)
	return err
}

func (s *Service) upsert(ctx context.Context, userID uuid.UUID, entry domain.VocabEntry) error {
	if domain.NormalizeText(entry.Word) == "" {
		return domain.NewValidationError("word", "required")
	}

	// Step 1: load the snapshot the match is made against.
	snapshot, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	// Step 2: full write.
	err = s.write(ctx, userID, snapshot, entry, domain.HistoryFieldsFull)
	if err == nil {
		return nil
	}
	if !s.cfg.DegradedRetry || !errors.Is(err, domain.ErrSchemaMismatch) {
		return err
	}

	// Step 3: the table lacks optional columns, retry with the minimal set.
	s.log.WarnContext(ctx, "full history write failed, retrying with minimal fields",
		slog.String("word", entry.Word),
		slog.String("error", err.Error()),
	)
	if err := s.write(ctx, userID, snapshot, entry, domain.HistoryFieldsMinimal); err != nil {
		return fmt.Errorf("minimal write: %w", err)
	}
	return nil
}

func (s *Service) write(
	ctx context.Context,
	userID uuid.UUID,
	snapshot []domain.HistoryRecord,
	entry domain.VocabEntry,
	fields domain.HistoryFieldSet,
) error {
	if existing := domain.FindRecord(snapshot, entry.Word); existing != nil {
		return s.repo.Update(ctx, userID, existing.ID, entry, fields)
	}

	_, err := s.repo.Insert(ctx, userID, entry, fields)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrAlreadyExists) {
		return err
	}

	// A concurrent save inserted the same word first. Update the winner.
	fresh, listErr := s.repo.ListByUser(ctx, userID)
	if listErr != nil {
		return fmt.Errorf("reload after conflict: %w", listErr)
	}
	existing := domain.FindRecord(fresh, entry.Word)
	if existing == nil {
		return err
	}
	return s.repo.Update(ctx, userID, existing.ID, entry, fields)
}
