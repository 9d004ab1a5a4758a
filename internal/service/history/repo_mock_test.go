package history

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/viovio/internal/domain"
)

// ---------------------------------------------------------------------------
// Manual mock (moq-style with func fields)
// ---------------------------------------------------------------------------

type mockHistoryRepo struct {
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.HistoryRecord, error)
	InsertFunc     func(ctx context.Context, userID uuid.UUID, entry domain.VocabEntry, fields domain.HistoryFieldSet) (uuid.UUID, error)
	UpdateFunc     func(ctx context.Context, userID, id uuid.UUID, entry domain.VocabEntry, fields domain.HistoryFieldSet) error
	DeleteFunc     func(ctx context.Context, userID, id uuid.UUID) error
}

func (m *mockHistoryRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.HistoryRecord, error) {
	return m.ListByUserFunc(ctx, userID)
}

func (m *mockHistoryRepo) Insert(ctx context.Context, userID uuid.UUID, entry domain.VocabEntry, fields domain.HistoryFieldSet) (uuid.UUID, error) {
	return m.InsertFunc(ctx, userID, entry, fields)
}

func (m *mockHistoryRepo) Update(ctx context.Context, userID, id uuid.UUID, entry domain.VocabEntry, fields domain.HistoryFieldSet) error {
	return m.UpdateFunc(ctx, userID, id, entry, fields)
}

func (m *mockHistoryRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.DeleteFunc(ctx, userID, id)
}

// memStore backs a mockHistoryRepo with an in-memory table that enforces
// the (user_id, lower(word)) uniqueness.
type memStore struct {
	mu      sync.Mutex
	records []domain.HistoryRecord
	clock   time.Time
	writes  []domain.HistoryFieldSet
}

func (s *memStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func (s *memStore) repo() *mockHistoryRepo {
	return &mockHistoryRepo{
		ListByUserFunc: func(_ context.Context, userID uuid.UUID) ([]domain.HistoryRecord, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			var out []domain.HistoryRecord
			for _, r := range s.records {
				if r.UserID == userID {
					out = append(out, r)
				}
			}
			slices.SortFunc(out, func(a, b domain.HistoryRecord) int { return b.CreatedAt.Compare(a.CreatedAt) })
			return out, nil
		},
		InsertFunc: func(_ context.Context, userID uuid.UUID, entry domain.VocabEntry, fields domain.HistoryFieldSet) (uuid.UUID, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			for _, r := range s.records {
				if r.UserID == userID && domain.SameWord(r.Word, entry.Word) {
					return uuid.Nil, domain.ErrAlreadyExists
				}
			}
			now := s.tick()
			rec := domain.HistoryRecord{ID: uuid.New(), UserID: userID, VocabEntry: entry, CreatedAt: now, UpdatedAt: now}
			s.records = append(s.records, rec)
			s.writes = append(s.writes, fields)
			return rec.ID, nil
		},
		UpdateFunc: func(_ context.Context, userID, id uuid.UUID, entry domain.VocabEntry, fields domain.HistoryFieldSet) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i := range s.records {
				if s.records[i].ID == id && s.records[i].UserID == userID {
					s.records[i].VocabEntry = entry
					s.records[i].UpdatedAt = s.tick()
					s.writes = append(s.writes, fields)
					return nil
				}
			}
			return domain.ErrNotFound
		},
		DeleteFunc: func(_ context.Context, userID, id uuid.UUID) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i := range s.records {
				if s.records[i].ID == id && s.records[i].UserID == userID {
					s.records = slices.Delete(s.records, i, i+1)
					return nil
				}
			}
			return domain.ErrNotFound
		},
	}
}
