// Package session owns the authenticated-user state machine: token lifecycle,
// profile hydration, and logout-on-failure.
//
// The machine starts in StateRestoring and settles into StateAuthenticated or
// StateAnonymous after Restore. Login and logout move between the latter two.
// The one invariant everything else relies on: the stored token and the
// session state never diverge for longer than a single profile fetch, because
// any fetch failure clears the token on the spot.
package session

import (
	"context"
	"sync"

	"github.com/applyline/applyline/internal/client/api"
	"github.com/applyline/applyline/internal/client/models"
	"github.com/applyline/applyline/internal/logging"
)

type State string

const (
	StateRestoring     State = "restoring"
	StateAuthenticated State = "authenticated"
	StateAnonymous     State = "anonymous"
)

// Manager is the process-wide session container. All mutation goes through
// its methods; reads go through the narrow accessors.
type Manager struct {
	api    api.Client
	tokens *TokenStore
	log    logging.Logger

	mu      sync.Mutex
	user    *models.UserProfile
	loading bool
}

func NewManager(client api.Client, tokens *TokenStore, log logging.Logger) *Manager {
	return &Manager{api: client, tokens: tokens, log: log, loading: true}
}

// Restore attempts to resume a previous session at startup. With no stored
// token it settles into the anonymous state without any network call; with
// one it hydrates the profile, logging out on failure. The loading flag is
// cleared either way.
func (m *Manager) Restore(ctx context.Context) error {
	defer m.setLoading(false)
	return m.hydrate(ctx)
}

// hydrate is the single source of truth for "am I authenticated": it reads
// the stored token and, if present, fetches the profile. A fetch failure is
// handled silently: the token is discarded and the session goes anonymous,
// since the only user-visible effect is being asked to log in again.
func (m *Manager) hydrate(ctx context.Context) error {
	token, err := m.tokens.Token(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		m.setUser(nil)
		return nil
	}

	profile, err := m.api.GetProfile(ctx)
	if err != nil {
		m.log.Warn(ctx, "failed to fetch profile, logging out", "error", err)
		if cerr := m.tokens.Clear(ctx); cerr != nil {
			m.log.Error(ctx, "failed to clear stored token", "error", cerr)
		}
		m.setUser(nil)
		return nil
	}

	m.setUser(profile)
	return nil
}

// Login exchanges credentials for a token, persists it, then re-runs the
// hydration step rather than trusting the login response for the profile.
// Login failures propagate to the caller untouched; the session stays in
// whatever state it was.
func (m *Manager) Login(ctx context.Context, creds models.Credentials) error {
	token, err := m.api.Login(ctx, creds)
	if err != nil {
		return err
	}
	if err := m.tokens.Save(ctx, token); err != nil {
		return err
	}
	return m.hydrate(ctx)
}

// Register follows the same pattern as Login with the register endpoint.
func (m *Manager) Register(ctx context.Context, data models.Registration) error {
	token, err := m.api.Register(ctx, data)
	if err != nil {
		return err
	}
	if err := m.tokens.Save(ctx, token); err != nil {
		return err
	}
	return m.hydrate(ctx)
}

// Logout discards the stored token and the in-memory user. No network call
// is made; the backend token stays valid but unreferenced.
func (m *Manager) Logout(ctx context.Context) error {
	err := m.tokens.Clear(ctx)
	m.setUser(nil)
	return err
}

// RefetchUser re-hydrates the profile from the backend. Used after profile
// updates so local edits are never the source of truth.
func (m *Manager) RefetchUser(ctx context.Context) error {
	return m.hydrate(ctx)
}

// User returns the hydrated profile, or nil when anonymous.
func (m *Manager) User() *models.UserProfile {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// Loading reports whether the initial restore attempt is still in progress.
func (m *Manager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

func (m *Manager) IsAuthenticated() bool {
	return m.User() != nil
}

// CurrentState reports where the state machine currently is.
func (m *Manager) CurrentState() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch {
	case m.loading:
		return StateRestoring
	case m.user != nil:
		return StateAuthenticated
	default:
		return StateAnonymous
	}
}

func (m *Manager) setUser(u *models.UserProfile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = u
}

func (m *Manager) setLoading(v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = v
}
