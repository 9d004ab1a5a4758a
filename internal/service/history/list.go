package history

import (
	"context"
	"fmt"

	"github.com/heartmarshall/viovio/internal/domain"
	"github.com/heartmarshall/viovio/pkg/ctxutil"
)

// List returns the caller's records, newest first. An anonymous caller gets
// an empty list.
func (s *Service) List(ctx context.Context) ([]domain.HistoryRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return []domain.HistoryRecord{}, nil
	}

	records, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("history.List: %w", err)
	}
	return records, nil
}
