package services

import (
	"context"
	"sync"
)

// Session is the live authenticated-identity handle.
type Session struct {
	UserID string
	Email  string
}

// SessionManager tracks the current session and drives whoever registered
// the session-change callback. Registration signs the new account in, the
// same way the hosted identity provider does.
type SessionManager struct {
	auth *AuthService

	mu       sync.Mutex
	current  *Session
	onChange func(*Session)
}

func NewSessionManager(auth *AuthService) *SessionManager {
	return &SessionManager{auth: auth}
}

// OnSessionChange installs cb as the single active observer, replacing any
// previous one, and invokes it immediately with the current state. It fires
// again on every subsequent sign-in and sign-out.
func (m *SessionManager) OnSessionChange(cb func(*Session)) {
	m.mu.Lock()
	m.onChange = cb
	current := m.current
	m.mu.Unlock()
	if cb != nil {
		cb(current)
	}
}

func (m *SessionManager) Current() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

func (m *SessionManager) Register(ctx context.Context, email, password string) error {
	userID, err := m.auth.Register(ctx, email, password)
	if err != nil {
		return err
	}
	m.setSession(&Session{UserID: userID, Email: email})
	return nil
}

func (m *SessionManager) SignIn(ctx context.Context, email, password string) error {
	userID, err := m.auth.SignIn(ctx, email, password)
	if err != nil {
		return err
	}
	m.setSession(&Session{UserID: userID, Email: email})
	return nil
}

// SignOut always succeeds locally.
func (m *SessionManager) SignOut() {
	m.setSession(nil)
}

func (m *SessionManager) setSession(s *Session) {
	m.mu.Lock()
	m.current = s
	cb := m.onChange
	m.mu.Unlock()
	if cb != nil {
		cb(s)
	}
}
