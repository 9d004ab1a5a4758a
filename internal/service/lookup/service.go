package lookup

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/viovio/internal/domain"
	"github.com/heartmarshall/viovio/internal/provider"
)

// ErrEmptyQuery is returned for a query that is blank after trimming.
// Callers treat it as "nothing to do", not as a failure.
var ErrEmptyQuery = errors.New("lookup: empty query")

type dictionary interface {
	Lookup(word string) (domain.VocabEntry, bool)
}

type pronunciationProvider interface {
	FetchPronunciation(ctx context.Context, word string) (*provider.Pronunciation, error)
}

type definitionGenerator interface {
	GenerateDefinition(ctx context.Context, word string) (*provider.Definition, error)
}

type historyRecorder interface {
	Record(ctx context.Context, entry domain.VocabEntry) error
}

// Config bounds the remote calls and the background write of a lookup.
type Config struct {
	// Timeout applies to each remote call separately.
	Timeout time.Duration
	// PersistTimeout applies to the history write started after a lookup.
	PersistTimeout time.Duration
}

// Service resolves a query into a vocabulary entry.
type Service struct {
	log           *slog.Logger
	cfg           Config
	dict          dictionary
	pronunciation pronunciationProvider
	generator     definitionGenerator
	history       historyRecorder
	metrics       *Metrics
	now           func() time.Time

	pending sync.WaitGroup
}

// NewService creates a new lookup service.
func NewService(
	logger *slog.Logger,
	cfg Config,
	dict dictionary,
	pronunciation pronunciationProvider,
	generator definitionGenerator,
	history historyRecorder,
) *Service {
	return &Service{
		log:           logger.With("service", "lookup"),
		cfg:           cfg,
		dict:          dict,
		pronunciation: pronunciation,
		generator:     generator,
		history:       history,
		now:           time.Now,
	}
}

// Wait blocks until every background history write has finished.
func (s *Service) Wait() {
	s.pending.Wait()
}
