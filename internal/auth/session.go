// Package auth implements the back-office session lifecycle: a token is
// issued on login, validated per request and revoked on logout or expiry.
package auth

import (
	"crypto/subtle"
	"sync"
	"time"

	"recruitdesk/internal/config"
	"recruitdesk/internal/logging"
	"recruitdesk/pkg/utils"
)

// Session is one authenticated back-office session
type Session struct {
	Token     string
	Email     string
	ExpiresAt time.Time
}

// Manager owns all active sessions for the process lifetime
type Manager struct {
	cfg    *config.Config
	logger logging.Logger

	mu       sync.Mutex
	sessions map[string]Session
}

// NewManager creates a session manager from configuration
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		cfg:      cfg,
		logger:   logging.GetGlobalLogger(),
		sessions: make(map[string]Session),
	}
}

// Login verifies the configured admin credentials and issues a session token
func (m *Manager) Login(email, password string) (*Session, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(m.cfg.Auth.AdminEmail)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(m.cfg.Auth.AdminPassword)) == 1
	if !emailOK || !passwordOK {
		return nil, utils.NewUnauthorizedError("invalid email or password")
	}

	session := Session{
		Token:     utils.GenerateSessionToken(),
		Email:     email,
		ExpiresAt: time.Now().Add(m.cfg.Auth.SessionTTL),
	}

	m.mu.Lock()
	m.sessions[session.Token] = session
	m.mu.Unlock()

	m.logger.Info("Session created", map[string]interface{}{"email": email})
	return &session, nil
}

// Validate returns the session for a token if it exists and has not expired.
// Expired sessions are pruned on sight.
func (m *Manager) Validate(token string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[token]
	if !ok {
		return nil, false
	}
	if time.Now().After(session.ExpiresAt) {
		delete(m.sessions, token)
		return nil, false
	}
	return &session, true
}

// Logout revokes a session; revoking an unknown token is a no-op
func (m *Manager) Logout(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}
