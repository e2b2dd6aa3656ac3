package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yeremiapane/restaurant-storefront/cart"
	"github.com/yeremiapane/restaurant-storefront/utils"
)

// Session is one customer's visit. It exclusively owns its cart; nothing
// else in the process holds cart state.
type Session struct {
	ID        string
	Cart      *cart.Cart
	CreatedAt time.Time

	mu         sync.Mutex
	lastSeen   time.Time
	submitting bool
}

// Touch records activity so the sweep does not expire a live session.
func (s *Session) Touch() {
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
}

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// BeginSubmit marks a checkout in flight. It returns false when one is
// already outstanding, which the submitter turns into ErrSubmitInFlight.
func (s *Session) BeginSubmit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting {
		return false
	}
	s.submitting = true
	return true
}

func (s *Session) EndSubmit() {
	s.mu.Lock()
	s.submitting = false
	s.mu.Unlock()
}

// Manager issues sessions and expires idle ones on a fixed interval.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		stopChan: make(chan struct{}),
	}
}

// Create starts a fresh session with an empty cart.
func (m *Manager) Create() *Session {
	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		Cart:      cart.New(),
		CreatedAt: now,
		lastSeen:  now,
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns the session for an id, or nil when it is unknown or expired.
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	s := m.sessions[id]
	m.mu.Unlock()

	if s != nil {
		s.Touch()
	}
	return s
}

// GetOrCreate restores the session for an id, falling back to a new one.
func (m *Manager) GetOrCreate(id string) *Session {
	if id != "" {
		if s := m.Get(id); s != nil {
			return s
		}
	}
	return m.Create()
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// StartSweep expires idle sessions on a ticker until Stop is called.
func (m *Manager) StartSweep(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				m.sweep()
			case <-m.stopChan:
				return
			}
		}
	}()
}

func (m *Manager) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopChan)
	})
}

func (m *Manager) sweep() {
	cutoff := time.Now().Add(-m.ttl)

	m.mu.Lock()
	var expired []string
	for id, s := range m.sessions {
		if s.LastSeen().Before(cutoff) {
			expired = append(expired, id)
		}
	}
	for _, id := range expired {
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	if len(expired) > 0 && utils.InfoLogger != nil {
		utils.InfoLogger.Printf("Expired %d idle sessions", len(expired))
	}
}
