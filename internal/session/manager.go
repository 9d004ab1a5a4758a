// Package session keeps the terminal client's sign-in state: it restores a
// stored session, signs users in and out, refreshes access tokens and
// drives the one-time display name prompt.
package session

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/viovio/internal/client"
	"github.com/heartmarshall/viovio/internal/wire"
)

// State is the coarse sign-in state.
type State int

const (
	StateUnknown State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Identity is the signed-in account.
type Identity struct {
	UserID      uuid.UUID
	Email       string
	DisplayName string
}

// Label is the name shown in the UI: the display name, else the local
// part of the email.
func (i Identity) Label() string {
	if i.DisplayName != "" {
		return i.DisplayName
	}
	local, _, _ := strings.Cut(i.Email, "@")
	return local
}

// Snapshot is an immutable view of the session.
type Snapshot struct {
	State    State
	Identity *Identity
	// Onboarding is true while the display name prompt should be shown.
	Onboarding bool
	// Notice is an informational message, such as the sign-up notice.
	Notice string
}

// Authenticated reports whether a user is signed in.
func (s Snapshot) Authenticated() bool { return s.State == StateAuthenticated }

// EventKind names what changed.
type EventKind int

const (
	EventSignedIn EventKind = iota
	EventSignedOut
	EventTokenRefreshed
	EventUserUpdated
	EventNotice
)

// Event is delivered to subscribers after every change.
type Event struct {
	Kind     EventKind
	Snapshot Snapshot
}

type authBackend interface {
	SignUp(ctx context.Context, email, password string) (*wire.AuthResponse, error)
	SignIn(ctx context.Context, email, password string) (*wire.AuthResponse, error)
	Confirm(ctx context.Context, token string) (*wire.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*wire.AuthResponse, error)
	Logout(ctx context.Context, accessToken string) error
	UpdateDisplayName(ctx context.Context, accessToken, name string) (*wire.User, error)
}

// refreshSkew renews access tokens that expire within this window.
const refreshSkew = 30 * time.Second

// Manager owns the session. It is safe for concurrent use.
type Manager struct {
	backend authBackend
	store   TokenStore
	log     *slog.Logger
	now     func() time.Time

	mu             sync.Mutex
	snap           Snapshot
	accessToken    string
	accessExpiry   time.Time
	refreshToken   string
	onboardingDone bool

	subMu  sync.Mutex
	subs   map[int]func(Event)
	nextID int

	// refreshes collapses concurrent renewals: the server rotates the
	// refresh token, so it must be presented once.
	refreshes singleflight.Group
}

// NewManager creates a Manager in StateUnknown. Call Restore next.
func NewManager(backend authBackend, store TokenStore, logger *slog.Logger) *Manager {
	return &Manager{
		backend: backend,
		store:   store,
		log:     logger.With("component", "session"),
		now:     time.Now,
		subs:    make(map[int]func(Event)),
	}
}

// Snapshot returns the current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap
}

// Subscribe registers fn for every event and returns a function that
// removes it. fn runs on the goroutine that caused the change.
func (m *Manager) Subscribe(fn func(Event)) (unsubscribe func()) {
	m.subMu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	m.subMu.Unlock()

	return func() {
		m.subMu.Lock()
		delete(m.subs, id)
		m.subMu.Unlock()
	}
}

func (m *Manager) emit(kind EventKind, snap Snapshot) {
	m.subMu.Lock()
	fns := make([]func(Event), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.subMu.Unlock()

	for _, fn := range fns {
		fn(Event{Kind: kind, Snapshot: snap})
	}
}

// Restore resumes the stored session. Any failure leaves the manager
// anonymous; a rejected token is removed from the store.
func (m *Manager) Restore(ctx context.Context) Snapshot {
	token, err := m.store.Load()
	if err != nil {
		m.log.WarnContext(ctx, "load stored session", slog.String("error", err.Error()))
	}
	if token == "" {
		return m.becomeAnonymous(ctx, "")
	}

	resp, err := m.backend.Refresh(ctx, token)
	if err != nil {
		m.log.InfoContext(ctx, "stored session rejected", slog.String("error", err.Error()))
		if client.IsUnauthorized(err) {
			m.clearStore(ctx)
		}
		return m.becomeAnonymous(ctx, "")
	}
	return m.adopt(ctx, resp, EventSignedIn)
}

// SignIn logs in with email and password.
func (m *Manager) SignIn(ctx context.Context, email, password string) (Snapshot, error) {
	resp, err := m.backend.SignIn(ctx, email, password)
	if err != nil {
		return m.Snapshot(), err
	}
	return m.adopt(ctx, resp, EventSignedIn), nil
}

// SignUp registers an account. When the server requires email
// confirmation the manager stays anonymous and carries SignUpNotice.
func (m *Manager) SignUp(ctx context.Context, email, password string) (Snapshot, error) {
	resp, err := m.backend.SignUp(ctx, email, password)
	if err != nil {
		return m.Snapshot(), err
	}
	if resp.ConfirmationRequired || resp.AccessToken == "" {
		return m.becomeAnonymous(ctx, SignUpNotice), nil
	}
	return m.adopt(ctx, resp, EventSignedIn), nil
}

// Confirm signs in with the token from a confirmation email.
func (m *Manager) Confirm(ctx context.Context, token string) (Snapshot, error) {
	resp, err := m.backend.Confirm(ctx, token)
	if err != nil {
		return m.Snapshot(), err
	}
	return m.adopt(ctx, resp, EventSignedIn), nil
}

// SignOut revokes the session on the server and forgets it locally. The
// local session is dropped even if the server call fails.
func (m *Manager) SignOut(ctx context.Context) Snapshot {
	m.mu.Lock()
	access := m.accessToken
	m.mu.Unlock()

	if access != "" {
		if err := m.backend.Logout(ctx, access); err != nil {
			m.log.WarnContext(ctx, "server logout failed", slog.String("error", err.Error()))
		}
	}
	m.clearStore(ctx)
	return m.becomeAnonymous(ctx, "")
}

// AccessToken returns a valid access token, refreshing it when it is about
// to expire. Anonymous sessions get "". Concurrent callers share a single
// refresh. A refresh the server rejects signs the user out.
func (m *Manager) AccessToken(ctx context.Context) (string, error) {
	if token, done := m.validAccess(); done {
		return token, nil
	}

	v, err, _ := m.refreshes.Do("access", func() (any, error) {
		// The rotated token must be kept even if this caller gives up.
		return m.renewAccess(context.WithoutCancel(ctx))
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// validAccess reports the access token when no refresh is needed. done is
// false only for a signed-in session whose token is missing or expiring.
func (m *Manager) validAccess() (token string, done bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.snap.State != StateAuthenticated {
		return "", true
	}
	if m.accessToken != "" && m.now().Add(refreshSkew).Before(m.accessExpiry) {
		return m.accessToken, true
	}
	return "", false
}

func (m *Manager) renewAccess(ctx context.Context) (string, error) {
	// A flight that finished just before this one may have renewed it.
	if token, done := m.validAccess(); done {
		return token, nil
	}

	m.mu.Lock()
	refresh := m.refreshToken
	m.mu.Unlock()

	resp, err := m.backend.Refresh(ctx, refresh)
	if err != nil {
		if !client.IsUnauthorized(err) {
			return "", err
		}
		m.mu.Lock()
		current := m.refreshToken
		m.mu.Unlock()
		if current != refresh {
			// Signed in again while the stale token was out.
			token, _ := m.validAccess()
			return token, nil
		}
		m.log.InfoContext(ctx, "session expired", slog.String("error", err.Error()))
		m.clearStore(ctx)
		m.becomeAnonymous(ctx, "")
		return "", nil
	}

	if snap := m.adopt(ctx, resp, EventTokenRefreshed); !snap.Authenticated() {
		return "", nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.accessToken, nil
}

// SaveDisplayName stores the display name and ends onboarding.
func (m *Manager) SaveDisplayName(ctx context.Context, name string) (Snapshot, error) {
	token, err := m.AccessToken(ctx)
	if err != nil {
		return m.Snapshot(), err
	}

	user, err := m.backend.UpdateDisplayName(ctx, token, name)
	if err != nil {
		return m.Snapshot(), err
	}

	m.mu.Lock()
	m.onboardingDone = true
	snap := m.snap
	snap.Onboarding = false
	if snap.Identity != nil {
		id := *snap.Identity
		if user.DisplayName != nil {
			id.DisplayName = *user.DisplayName
		}
		snap.Identity = &id
	}
	m.snap = snap
	m.mu.Unlock()

	m.emit(EventUserUpdated, snap)
	return snap, nil
}

// DismissOnboarding hides the display name prompt for the rest of the process.
func (m *Manager) DismissOnboarding() Snapshot {
	m.mu.Lock()
	m.onboardingDone = true
	m.snap.Onboarding = false
	snap := m.snap
	m.mu.Unlock()

	m.emit(EventUserUpdated, snap)
	return snap
}

// adopt switches to the session in resp.
func (m *Manager) adopt(ctx context.Context, resp *wire.AuthResponse, kind EventKind) Snapshot {
	if resp.AccessToken == "" {
		return m.becomeAnonymous(ctx, "")
	}

	identity := &Identity{UserID: resp.User.ID, Email: resp.User.Email}
	if resp.User.DisplayName != nil {
		identity.DisplayName = *resp.User.DisplayName
	}

	m.mu.Lock()
	m.accessToken = resp.AccessToken
	m.refreshToken = resp.RefreshToken
	m.accessExpiry = time.Time{}
	if resp.ExpiresAt != nil {
		m.accessExpiry = *resp.ExpiresAt
	}
	onboarding := m.snap.Onboarding
	if kind == EventSignedIn {
		onboarding = identity.DisplayName == "" && !m.onboardingDone
	}
	m.snap = Snapshot{State: StateAuthenticated, Identity: identity, Onboarding: onboarding}
	snap := m.snap
	m.mu.Unlock()

	if resp.RefreshToken != "" {
		if err := m.store.Save(resp.RefreshToken); err != nil {
			m.log.WarnContext(ctx, "persist session", slog.String("error", err.Error()))
		}
	}

	m.emit(kind, snap)
	return snap
}

func (m *Manager) becomeAnonymous(ctx context.Context, notice string) Snapshot {
	m.mu.Lock()
	prev := m.snap.State
	m.accessToken = ""
	m.refreshToken = ""
	m.accessExpiry = time.Time{}
	m.snap = Snapshot{State: StateAnonymous, Notice: notice}
	snap := m.snap
	m.mu.Unlock()

	switch {
	case prev != StateAnonymous:
		m.log.DebugContext(ctx, "session is anonymous", slog.String("previous", prev.String()))
		m.emit(EventSignedOut, snap)
	case notice != "":
		m.emit(EventNotice, snap)
	}
	return snap
}

func (m *Manager) clearStore(ctx context.Context) {
	if err := m.store.Clear(); err != nil {
		m.log.WarnContext(ctx, "clear stored session", slog.String("error", err.Error()))
	}
}
