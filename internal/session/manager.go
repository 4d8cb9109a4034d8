package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/Sabharishraja/Multilinguistic-chatbot/internal/backend"
	"github.com/Sabharishraja/Multilinguistic-chatbot/pkg/model"
)

// Manager is the single source of truth for "who is logged in".
//
// The in-memory session is all-or-nothing: token and user are set and
// cleared together, so consumers never observe a partial session.
type Manager struct {
	client *backend.Client
	store  Store
	logger *slog.Logger

	mu    sync.RWMutex
	token string
	user  *model.User
}

// NewManager creates a session manager over the given backend client and
// credential store. No session is active until Restore or Login succeeds.
func NewManager(client *backend.Client, store Store, logger *slog.Logger) *Manager {
	return &Manager{
		client: client,
		store:  store,
		logger: logger.With("component", "session"),
	}
}

// Restore loads a previously persisted session. Call once at startup,
// before anything that needs authentication.
//
// Restore never fails: malformed or partial persisted state is cleared
// and treated as "no session".
func (m *Manager) Restore() {
	creds, err := m.store.Load()
	if err != nil {
		m.logger.Warn("clearing unreadable stored session", "error", err)
		m.clearStore()
		return
	}
	if creds == nil {
		return
	}

	var user model.User
	if creds.Token == "" || len(creds.User) == 0 || json.Unmarshal(creds.User, &user) != nil {
		m.logger.Warn("clearing malformed stored session")
		m.clearStore()
		return
	}

	m.mu.Lock()
	m.token = creds.Token
	m.user = &user
	m.mu.Unlock()

	m.logger.Debug("session restored", "username", user.Username, "role", user.Role)
}

// Login exchanges credentials with the backend and activates the session.
// On failure the previous session, if any, is left untouched.
func (m *Manager) Login(ctx context.Context, email, password string) (*model.User, error) {
	resp, err := m.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	m.activate(resp)
	return m.User(), nil
}

// LoginWithGoogle exchanges a Google ID token and activates the session.
func (m *Manager) LoginWithGoogle(ctx context.Context, idToken string) (*model.User, error) {
	resp, err := m.client.LoginWithGoogle(ctx, idToken)
	if err != nil {
		return nil, err
	}
	m.activate(resp)
	return m.User(), nil
}

// Register creates a new account. It does not activate a session.
func (m *Manager) Register(ctx context.Context, req model.RegisterRequest) (*model.RegisterResponse, error) {
	return m.client.Register(ctx, req)
}

// Logout clears the session and the persisted credentials. Idempotent,
// no network call.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.token = ""
	m.user = nil
	m.mu.Unlock()

	m.clearStore()
}

// Token returns the active bearer token, or "" when logged out.
// Implements backend.TokenSource.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// User returns a copy of the logged-in user, or nil when logged out.
func (m *Manager) User() *model.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// IsAuthenticated reports whether a full session (token and user) is active.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token != "" && m.user != nil
}

// IsAdmin reports whether the active session has admin role.
func (m *Manager) IsAdmin() bool { return m.hasRole(model.RoleAdmin) }

// IsUser reports whether the active session has the standard user role.
func (m *Manager) IsUser() bool { return m.hasRole(model.RoleUser) }

// IsModerator reports whether the active session has moderator role.
func (m *Manager) IsModerator() bool { return m.hasRole(model.RoleModerator) }

func (m *Manager) hasRole(role model.Role) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil && m.user.Role == role
}

// activate installs the session from a successful login and persists it.
// A persistence failure keeps the in-memory session alive; the user is
// logged in for this process either way.
func (m *Manager) activate(resp *model.LoginResponse) {
	user := resp.User

	m.mu.Lock()
	m.token = resp.AccessToken
	m.user = &user
	m.mu.Unlock()

	userJSON, err := json.Marshal(user)
	if err == nil {
		err = m.store.Save(&Credentials{Token: resp.AccessToken, User: userJSON})
	}
	if err != nil {
		m.logger.Warn("session not persisted", "error", err)
	}

	m.logger.Info("logged in", "username", user.Username, "role", user.Role)
}

func (m *Manager) clearStore() {
	if err := m.store.Clear(); err != nil {
		m.logger.Warn("clearing stored session failed", "error", err)
	}
}
