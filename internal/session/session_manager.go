package session

import (
	"context"
	"sync"

	"go-storefront/internal/store"

	"go.uber.org/zap"
)

// Manager owns the live session states. Each session is hydrated from the
// store on first access and subscribed to external change notifications
// for its cart and wishlist keys.
type Manager struct {
	store  store.Store
	logger *zap.Logger

	mu       sync.Mutex
	sessions map[string]*State
	cancels  map[string]func()
}

func NewManager(st store.Store, logger *zap.Logger) *Manager {
	if st == nil {
		panic("store cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		store:    st,
		logger:   logger.Named("session"),
		sessions: make(map[string]*State),
		cancels:  make(map[string]func()),
	}
}

// Get returns the state for the session id, hydrating it on first access.
func (m *Manager) Get(ctx context.Context, sessionID string) *State {
	m.mu.Lock()
	if s, ok := m.sessions[sessionID]; ok {
		m.mu.Unlock()
		return s
	}
	m.mu.Unlock()

	s := &State{
		id:     sessionID,
		store:  m.store,
		logger: m.logger.With(zap.String("session_id", sessionID)),
	}
	s.hydrate(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	// another handler may have hydrated the same session concurrently
	if existing, ok := m.sessions[sessionID]; ok {
		return existing
	}
	m.sessions[sessionID] = s

	cancel, err := m.store.Subscribe(context.Background(), sessionID, func(key string) {
		s.refreshFromStorage(context.Background(), key)
	})
	if err != nil {
		m.logger.Warn("change subscription unavailable",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
	} else {
		m.cancels[sessionID] = cancel
	}

	return s
}

// Close cancels every change subscription.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, cancel := range m.cancels {
		cancel()
		delete(m.cancels, id)
	}
}
