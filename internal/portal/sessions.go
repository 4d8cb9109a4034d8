// Package portal implements the HTTP server the dashboard frontend talks
// to: backend proxying, cookie-session authentication, and route guards.
package portal

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/Sabharishraja/Multilinguistic-chatbot/internal/store"
	"github.com/Sabharishraja/Multilinguistic-chatbot/pkg/model"
)

const (
	// SessionCookieName is the name of the portal session cookie.
	SessionCookieName = "portal_session"
	// DefaultSessionTTL is the default session lifetime.
	DefaultSessionTTL = 24 * time.Hour
)

// SessionManager handles portal session creation, validation, and cleanup.
type SessionManager struct {
	store store.Store
	ttl   time.Duration
}

// NewSessionManager creates a session manager over the given store.
func NewSessionManager(st store.Store, ttl time.Duration) *SessionManager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionManager{store: st, ttl: ttl}
}

// CreateSession creates a session for a user who just authenticated
// against the backend. token is the backend bearer token.
func (sm *SessionManager) CreateSession(ctx context.Context, user model.User, token string) (*model.Session, error) {
	id, err := generateSessionID()
	if err != nil {
		return nil, fmt.Errorf("generate session id: %w", err)
	}

	now := time.Now()
	sess := &model.Session{
		ID:        id,
		User:      user,
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(sm.ttl),
	}

	if err := sm.store.CreateSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return sess, nil
}

// GetSession retrieves a session by ID.
// Returns nil if the session does not exist or has expired.
func (sm *SessionManager) GetSession(ctx context.Context, id string) (*model.Session, error) {
	sess, err := sm.store.GetSession(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if sess == nil {
		return nil, nil
	}

	if sess.IsExpired() {
		_ = sm.store.DeleteSession(ctx, id)
		return nil, nil
	}
	return sess, nil
}

// DeleteSession removes a session. Deleting a missing session is a no-op.
func (sm *SessionManager) DeleteSession(ctx context.Context, id string) error {
	return sm.store.DeleteSession(ctx, id)
}

// CleanupExpired removes all expired sessions from the store.
func (sm *SessionManager) CleanupExpired(ctx context.Context) (int64, error) {
	return sm.store.DeleteExpiredSessions(ctx)
}

// GetSessionFromRequest extracts the session from the request cookie.
func (sm *SessionManager) GetSessionFromRequest(r *http.Request) (*model.Session, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil, nil // no cookie, no session
	}
	return sm.GetSession(r.Context(), cookie.Value)
}

// SetSessionCookie sets the session cookie on the response.
func SetSessionCookie(w http.ResponseWriter, sess *model.Session, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
		Expires:  sess.ExpiresAt,
	})
}

// ClearSessionCookie removes the session cookie.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// generateSessionID generates a cryptographically secure random session ID.
func generateSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return "sess_" + hex.EncodeToString(b), nil
}
