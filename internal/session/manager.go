package session

import (
	"sync"
	"time"

	"mtgsim/internal/catalog"
	"mtgsim/internal/errors"
	"mtgsim/internal/logger"

	"github.com/google/uuid"
)

// DefaultCapacity and DefaultInactivityTimeout match spec.md §5's defaults.
const (
	DefaultCapacity          = 1000
	DefaultInactivityTimeout = 5 * time.Minute
)

// Manager is the shared-nothing-per-session store: bounded capacity,
// LRU-by-lastAccessedAt eviction after inactivity, reset never evicts
// (spec.md §5). Grounded on the teacher's GameStorage (map + sync.RWMutex).
type Manager struct {
	mu                sync.RWMutex
	sessions          map[string]*Session
	reg               catalog.Registry
	capacity          int
	inactivityTimeout time.Duration
	now               func() time.Time
}

// NewManager builds a Manager with the default capacity and inactivity
// timeout, bound to the given card registry.
func NewManager(reg catalog.Registry) *Manager {
	return &Manager{
		sessions:          make(map[string]*Session),
		reg:               reg,
		capacity:          DefaultCapacity,
		inactivityTimeout: DefaultInactivityTimeout,
		now:               time.Now,
	}
}

// Create builds a new Session and stores it, evicting inactive sessions
// first if the pool is at capacity.
func (m *Manager) Create(playerDeck, opponentDeck string, opponent Bot, opponentKind string, seed int64) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.evictInactiveLocked()
	if len(m.sessions) >= m.capacity {
		return nil, errors.SessionCapacityExceeded(m.capacity)
	}

	id := uuid.NewString()
	s := New(id, m.reg, playerDeck, opponentDeck, opponent, opponentKind, seed)
	s.lastAccessedAt = m.now().Unix()
	m.sessions[id] = s
	return s, nil
}

// Get retrieves a session by id, touching its lastAccessedAt.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	s.lastAccessedAt = m.now().Unix()
	return s, true
}

// Delete removes a session, returning whether it existed.
func (m *Manager) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	return true
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// evictInactiveLocked removes every session whose lastAccessedAt predates
// the inactivity timeout. Caller must hold m.mu.
func (m *Manager) evictInactiveLocked() {
	cutoff := m.now().Add(-m.inactivityTimeout).Unix()
	for id, s := range m.sessions {
		if s.lastAccessedAt < cutoff {
			delete(m.sessions, id)
			logger.WithGameContext(id, s.Game).Info("evicted inactive session")
		}
	}
}
