// Package ui holds the terminal client's presentation state: a store with
// named transitions, the controller that drives it, and the word card
// view model.
package ui

import (
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/viovio/internal/domain"
	"github.com/heartmarshall/viovio/internal/session"
)

// Ticket identifies one lookup. Completions carrying an older ticket are
// dropped.
type Ticket uint64

// State is an immutable copy of the screen state.
type State struct {
	Query     string
	Result    *domain.VocabEntry
	Loading   bool
	Err       string
	Flashback *domain.HistoryRecord
	History   []domain.HistoryRecord
	Session   session.Snapshot
	// SyncHint asks the user to sign in so history is kept.
	SyncHint bool
}

// Idle reports whether nothing occupies the result area.
func (s State) Idle() bool {
	return s.Result == nil && s.Err == "" && !s.Loading
}

// Store is the single owner of State. Every change goes through a named
// transition; subscribers get the new state after each one.
type Store struct {
	mu      sync.Mutex
	state   State
	current Ticket
	rng     *rand.Rand
	subs    []func(State)
}

// NewStore creates a store. rng drives the flashback choice.
func NewStore(rng *rand.Rand) *Store {
	return &Store{
		rng:   rng,
		state: State{SyncHint: true},
	}
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to run after every transition.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// update applies fn under the lock and notifies subscribers when fn
// reports a change.
func (s *Store) update(fn func(st *State) bool) bool {
	s.mu.Lock()
	changed := fn(&s.state)
	st := s.state
	subs := slices.Clone(s.subs)
	s.mu.Unlock()

	if changed {
		for _, sub := range subs {
			sub(st)
		}
	}
	return changed
}

// BeginLookup starts a lookup for query and supersedes any lookup in flight.
// The flashback slot is emptied; it is only refilled by a later history load.
func (s *Store) BeginLookup(query string) Ticket {
	var t Ticket
	s.update(func(st *State) bool {
		s.current++
		t = s.current
		st.Query = query
		st.Result = nil
		st.Err = ""
		st.Loading = true
		st.Flashback = nil
		return true
	})
	return t
}

// CompleteLookup shows entry if t is still current. A nil entry ends the
// lookup without a result.
func (s *Store) CompleteLookup(t Ticket, entry *domain.VocabEntry) bool {
	return s.update(func(st *State) bool {
		if t != s.current || !st.Loading {
			return false
		}
		st.Loading = false
		st.Result = entry
		return true
	})
}

// FailLookup shows msg if t is still current.
func (s *Store) FailLookup(t Ticket, msg string) bool {
	return s.update(func(st *State) bool {
		if t != s.current || !st.Loading {
			return false
		}
		st.Loading = false
		st.Err = msg
		return true
	})
}

// HistoryLoaded replaces the history wholesale. When the result area is
// idle a random record is offered as flashback; a flashback whose record
// is gone is dropped.
func (s *Store) HistoryLoaded(records []domain.HistoryRecord) {
	s.update(func(st *State) bool {
		st.History = slices.Clone(records)

		if st.Flashback != nil && !containsRecord(records, st.Flashback.ID) {
			st.Flashback = nil
		}
		if st.Flashback == nil && st.Idle() {
			st.Flashback = PickFlashback(s.rng, records)
		}
		return true
	})
}

// SelectFlashback promotes the flashback to the current result.
func (s *Store) SelectFlashback() (*domain.VocabEntry, bool) {
	var entry *domain.VocabEntry
	ok := s.update(func(st *State) bool {
		if st.Flashback == nil {
			return false
		}
		e := st.Flashback.VocabEntry
		entry = &e
		s.showEntry(st, e)
		return true
	})
	return entry, ok
}

// SelectHistory shows the i-th history record (0-based).
func (s *Store) SelectHistory(i int) (*domain.VocabEntry, bool) {
	var entry *domain.VocabEntry
	ok := s.update(func(st *State) bool {
		if i < 0 || i >= len(st.History) {
			return false
		}
		e := st.History[i].VocabEntry
		entry = &e
		s.showEntry(st, e)
		return true
	})
	return entry, ok
}

// showEntry makes e the result and cancels any lookup in flight.
func (s *Store) showEntry(st *State, e domain.VocabEntry) {
	s.current++
	st.Query = e.Word
	st.Result = &e
	st.Err = ""
	st.Loading = false
	st.Flashback = nil
}

// SessionChanged records the session. Signing out drops the history.
func (s *Store) SessionChanged(snap session.Snapshot) {
	s.update(func(st *State) bool {
		st.Session = snap
		st.SyncHint = !snap.Authenticated()
		if !snap.Authenticated() {
			st.History = nil
			st.Flashback = nil
		}
		return true
	})
}

// ClearResult empties the result area and cancels any lookup in flight.
func (s *Store) ClearResult() {
	s.update(func(st *State) bool {
		s.current++
		st.Query = ""
		st.Result = nil
		st.Err = ""
		st.Loading = false
		return true
	})
}

func containsRecord(records []domain.HistoryRecord, id uuid.UUID) bool {
	for _, r := range records {
		if r.ID == id {
			return true
		}
	}
	return false
}
