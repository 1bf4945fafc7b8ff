package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
)

const SessionStateKey = "session"

type SessionOption func(*SessionManager)

// WithSessionMaxAge makes sessions older than maxAge count as absent.
func WithSessionMaxAge(maxAge time.Duration) SessionOption {
	return func(m *SessionManager) {
		m.maxAge = maxAge
	}
}

func WithClock(now func() time.Time) SessionOption {
	return func(m *SessionManager) {
		m.now = now
	}
}

func WithSessionObservers(observers ...SessionObserver) SessionOption {
	return func(m *SessionManager) {
		m.observers = append(m.observers, observers...)
	}
}

// SessionManager owns the identity of one visitor: anonymous or exactly one
// authenticated session.
type SessionManager struct {
	mu        sync.Mutex
	current   *entity.Session
	store     repository.StateStore
	log       logger.Logger
	maxAge    time.Duration
	now       func() time.Time
	observers []SessionObserver
}

func NewSessionManager(ctx context.Context, store repository.StateStore, log logger.Logger, opts ...SessionOption) *SessionManager {
	m := &SessionManager{
		store: store,
		log:   log,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	var stored entity.Session
	found, err := store.Load(ctx, SessionStateKey, &stored)
	switch {
	case err != nil:
		m.log.Warnf("Could not load stored session, starting anonymous: %v", err)
	case !found:
	case !stored.Valid():
		m.log.Warnf("Discarding stored session without user or role")
		m.clearStore(ctx)
	case stored.Expired(m.now(), m.maxAge):
		m.log.Infof("Stored session for user %s expired", stored.UserID)
		err := m.clearStore(ctx)
		m.notify(ctx, SessionEvent{Type: SessionExpired, Session: stored, PersistErr: err})
	default:
		m.current = &stored
	}
	return m
}

// Login establishes a session for identity, replacing any existing one.
func (m *SessionManager) Login(ctx context.Context, identity entity.Identity) (entity.Session, error) {
	if identity.UserID == "" {
		return entity.Session{}, entity.InvalidArgument("session.login", errors.New("user id is required"))
	}
	if !identity.Role.Valid() {
		return entity.Session{}, entity.InvalidArgument("session.login", entity.ErrUnknownRole)
	}

	m.mu.Lock()
	session := entity.NewSession(identity, m.now())
	if m.current != nil {
		m.log.Infof("Replacing session of user %s with user %s", m.current.UserID, session.UserID)
	}
	m.current = &session
	err := m.store.Save(ctx, SessionStateKey, session)
	if err != nil {
		m.log.Warnf("Session for user %s kept in memory only, could not persist: %v", session.UserID, err)
	}
	m.mu.Unlock()

	m.notify(ctx, SessionEvent{Type: SessionLoggedIn, Session: session, PersistErr: err})
	return session, nil
}

// Logout ends the current session. Calling it while anonymous does nothing.
func (m *SessionManager) Logout(ctx context.Context) {
	m.mu.Lock()
	if m.current == nil {
		m.mu.Unlock()
		return
	}
	ended := *m.current
	m.current = nil
	err := m.clearStore(ctx)
	m.mu.Unlock()

	m.notify(ctx, SessionEvent{Type: SessionLoggedOut, Session: ended, PersistErr: err})
}

// Current returns the active session. An expired session is cleared from
// memory and from the store, and observers see a SessionExpired event.
func (m *SessionManager) Current(ctx context.Context) (entity.Session, bool) {
	m.mu.Lock()
	if m.current == nil {
		m.mu.Unlock()
		return entity.Session{}, false
	}
	if !m.current.Expired(m.now(), m.maxAge) {
		current := *m.current
		m.mu.Unlock()
		return current, true
	}

	expired := *m.current
	m.current = nil
	m.log.Infof("Session for user %s expired", expired.UserID)
	err := m.clearStore(ctx)
	m.mu.Unlock()

	m.notify(ctx, SessionEvent{Type: SessionExpired, Session: expired, PersistErr: err})
	return entity.Session{}, false
}

func (m *SessionManager) IsAuthenticated(ctx context.Context) bool {
	_, ok := m.Current(ctx)
	return ok
}

func (m *SessionManager) HasRole(ctx context.Context, role entity.Role) bool {
	s, ok := m.Current(ctx)
	if !ok {
		return false
	}
	return s.Role == role
}

func (m *SessionManager) CanAccessAdminPanel(ctx context.Context) bool {
	s, ok := m.Current(ctx)
	if !ok {
		return false
	}
	return s.Role.CanAccessAdminPanel()
}

func (m *SessionManager) clearStore(ctx context.Context) error {
	err := m.store.Clear(ctx, SessionStateKey)
	if err != nil {
		m.log.Warnf("Could not clear stored session: %v", err)
	}
	return err
}

func (m *SessionManager) notify(ctx context.Context, event SessionEvent) {
	for _, o := range m.observers {
		o.SessionChanged(ctx, event)
	}
}
