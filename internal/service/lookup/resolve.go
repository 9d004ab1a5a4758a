package lookup

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/viovio/internal/domain"
	"github.com/heartmarshall/viovio/internal/provider"
	"github.com/heartmarshall/viovio/pkg/ctxutil"
)

// Lookup resolves query into an entry. Curated words are answered from the
// local dictionary without any network call. Other words need a generated
// definition; the pronunciation is optional decoration. A successful result
// is saved to the caller's history in the background.
func (s *Service) Lookup(ctx context.Context, query string) (*domain.VocabEntry, error) {
	display := strings.TrimSpace(query)
	if display == "" {
		return nil, ErrEmptyQuery
	}

	// Step 1: curated match.
	if entry, ok := s.dict.Lookup(display); ok {
		entry.SearchedAt = s.now()
		s.log.DebugContext(ctx, "curated hit", slog.String("word", entry.Word))
		s.metrics.observe(outcomeCurated)
		s.persist(ctx, entry)
		return &entry, nil
	}

	// Step 2: remote calls, joined with independent failures.
	pron, def, genErr := s.fetchRemote(ctx, display)
	if genErr != nil {
		s.log.WarnContext(ctx, "definition unavailable",
			slog.String("query", display),
			slog.String("error", genErr.Error()),
		)
		s.metrics.observe(outcomeFailed)
		return nil, fmt.Errorf("lookup.Lookup %q: %w: %w", display, domain.ErrResolutionFailed, genErr)
	}

	// Step 3: normalize.
	entry := buildEntry(display, def, pron, s.now())
	s.metrics.observe(outcomeAI)

	s.persist(ctx, entry)
	return &entry, nil
}

// fetchRemote runs the pronunciation lookup and the definition generator
// concurrently, each under its own timeout. Neither failure cancels the
// other. A pronunciation error is logged and reported as nil.
func (s *Service) fetchRemote(ctx context.Context, word string) (*provider.Pronunciation, *provider.Definition, error) {
	var (
		g      errgroup.Group
		pron   *provider.Pronunciation
		def    *provider.Definition
		genErr error
	)

	g.Go(func() error {
		callCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()

		p, err := s.pronunciation.FetchPronunciation(callCtx, word)
		if err != nil {
			s.log.InfoContext(ctx, "pronunciation unavailable",
				slog.String("word", word),
				slog.String("error", err.Error()),
			)
			return nil
		}
		pron = p
		return nil
	})

	g.Go(func() error {
		callCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()

		def, genErr = s.generator.GenerateDefinition(callCtx, word)
		if genErr == nil && def == nil {
			genErr = fmt.Errorf("%w: no definition", domain.ErrMalformedResponse)
		}
		return nil
	})

	_ = g.Wait()
	return pron, def, genErr
}

func buildEntry(query string, def *provider.Definition, pron *provider.Pronunciation, now time.Time) domain.VocabEntry {
	word := def.Word
	if word == "" {
		word = query
	}

	tags := def.Tags
	if len(tags) == 0 {
		tags = []string{domain.DefaultAITag}
	}

	entry := domain.VocabEntry{
		Word:               word,
		Phonetic:           domain.PhoneticPlaceholder,
		Meaning:            def.Meaning,
		PartOfSpeech:       def.Type,
		Explanation:        def.Explanation,
		Example:            def.Example,
		ExampleTranslation: def.ExampleCn,
		Tags:               tags,
		Provenance:         domain.ProvenanceAI,
		SearchedAt:         now,
	}

	if pron != nil {
		if pron.HasTranscription() {
			entry.Phonetic = pron.Transcription
		}
		entry.AudioURL = pron.AudioURL
	}

	return entry
}

// persist hands entry to the history in a goroutine detached from the
// request. Anonymous requests are skipped.
func (s *Service) persist(ctx context.Context, entry domain.VocabEntry) {
	if s.history == nil {
		return
	}
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return
	}

	bg, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.PersistTimeout)

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		defer cancel()

		if err := s.history.Record(bg, entry); err != nil {
			s.log.WarnContext(bg, "history write failed",
				slog.String("word", entry.Word),
				slog.String("error", err.Error()),
			)
		}
	}()
}
