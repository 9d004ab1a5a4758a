package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/viovio/internal/client"
	"github.com/heartmarshall/viovio/internal/domain"
	"github.com/heartmarshall/viovio/internal/session"
	"github.com/heartmarshall/viovio/internal/wire"
)

type vocabAPI interface {
	Lookup(ctx context.Context, query string) (*domain.VocabEntry, error)
	History(ctx context.Context) (*client.HistorySnapshot, error)
	DeleteHistory(ctx context.Context, id uuid.UUID) (*client.HistorySnapshot, error)
}

type sessionManager interface {
	Restore(ctx context.Context) session.Snapshot
	Snapshot() session.Snapshot
	Subscribe(fn func(session.Event)) (unsubscribe func())
}

// Controller turns user intents into API calls and store transitions.
type Controller struct {
	store   *Store
	api     vocabAPI
	session sessionManager
	log     *slog.Logger

	mu       sync.Mutex
	cancel   context.CancelFunc
	inflight sync.WaitGroup
}

// NewController creates a Controller.
func NewController(store *Store, api vocabAPI, sess sessionManager, logger *slog.Logger) *Controller {
	return &Controller{
		store:   store,
		api:     api,
		session: sess,
		log:     logger.With("component", "controller"),
	}
}

// Start follows session changes and restores the stored session. A restored
// session arrives as EventSignedIn, which loads the history.
func (c *Controller) Start(ctx context.Context) {
	c.session.Subscribe(func(e session.Event) {
		c.store.SessionChanged(e.Snapshot)
		if e.Kind == session.EventSignedIn {
			c.RefreshHistory(ctx)
		}
	})

	c.store.SessionChanged(c.session.Restore(ctx))
}

// Submit starts a lookup in the background. Blank queries are ignored.
func (c *Controller) Submit(ctx context.Context, query string) {
	if strings.TrimSpace(query) == "" {
		return
	}
	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		c.Lookup(ctx, query)
	}()
}

// Wait blocks until every submitted lookup has finished.
func (c *Controller) Wait() {
	c.inflight.Wait()
}

// Lookup resolves query and shows the outcome unless a newer lookup or a
// selection superseded it. The superseded request is cancelled.
func (c *Controller) Lookup(ctx context.Context, query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.cancel = cancel
	c.mu.Unlock()
	defer cancel()

	ticket := c.store.BeginLookup(query)

	entry, err := c.api.Lookup(ctx, query)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		c.log.InfoContext(ctx, "lookup failed", slog.String("query", query), slog.String("error", err.Error()))
		c.store.FailLookup(ticket, wire.ResolutionFailedMessage(query))
		return
	}

	if !c.store.CompleteLookup(ticket, entry) || entry == nil {
		return
	}
	// The server records signed-in lookups itself; only reload the snapshot.
	if c.session.Snapshot().Authenticated() {
		c.RefreshHistory(context.WithoutCancel(ctx))
	}
}

// RefreshHistory reloads the history from the server.
func (c *Controller) RefreshHistory(ctx context.Context) {
	if !c.session.Snapshot().Authenticated() {
		c.store.HistoryLoaded(nil)
		return
	}
	snap, err := c.api.History(ctx)
	if err != nil {
		c.log.WarnContext(ctx, "load history", slog.String("error", err.Error()))
		return
	}
	c.applySnapshot(snap)
}

// DeleteHistory removes the i-th record (0-based) of the shown history.
func (c *Controller) DeleteHistory(ctx context.Context, i int) error {
	st := c.store.State()
	if i < 0 || i >= len(st.History) {
		return domain.ErrNotFound
	}
	snap, err := c.api.DeleteHistory(ctx, st.History[i].ID)
	if err != nil {
		return err
	}
	c.applySnapshot(snap)
	return nil
}

// OpenHistory shows the i-th record (0-based) and cancels a lookup in flight.
func (c *Controller) OpenHistory(i int) bool {
	c.cancelInflight()
	_, ok := c.store.SelectHistory(i)
	return ok
}

// OpenFlashback shows the flashback record and cancels a lookup in flight.
func (c *Controller) OpenFlashback() bool {
	c.cancelInflight()
	_, ok := c.store.SelectFlashback()
	return ok
}

// Clear empties the result area.
func (c *Controller) Clear() {
	c.cancelInflight()
	c.store.ClearResult()
}

// Speech returns what to play for the current result.
func (c *Controller) Speech() (SpeechPlan, bool) {
	st := c.store.State()
	if st.Result == nil {
		return SpeechPlan{}, false
	}
	return NewWordCard(*st.Result).Speech, true
}

func (c *Controller) applySnapshot(snap *client.HistorySnapshot) {
	if snap == nil || !snap.Synced {
		c.store.HistoryLoaded(nil)
		return
	}
	c.store.HistoryLoaded(snap.Records)
}

func (c *Controller) cancelInflight() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}
