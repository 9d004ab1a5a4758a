package history

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/viovio/internal/domain"
	"github.com/heartmarshall/viovio/pkg/ctxutil"
)

// Delete removes one of the caller's records and returns the re-read
// history. A record owned by someone else is reported as domain.ErrNotFound.
// An anonymous caller is a no-op returning nil, nil.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) ([]domain.HistoryRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, nil
	}

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return nil, fmt.Errorf("history.Delete: %w", err)
	}

	records, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("history.Delete: refetch: %w", err)
	}
	return records, nil
}
