package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Option настройка Manager
type Option func(*Manager)

// WithIdleTTL закрывать сессии, к которым не обращались дольше ttl. 0 = без истечения.
func WithIdleTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		m.idleTTL = ttl
	}
}

// WithMaxSessions лимит одновременно открытых сессий. 0 = без ограничения.
func WithMaxSessions(n int) Option {
	return func(m *Manager) {
		m.maxSessions = n
	}
}

// Manager реестр открытых сессий HTTP транспорта
type Manager struct {
	mu          sync.RWMutex
	sessions    map[uuid.UUID]*Session
	gauge       Gauge
	idleTTL     time.Duration
	maxSessions int
	now         func() time.Time
}

// NewManager создает пустой реестр. gauge может быть nil.
func NewManager(gauge Gauge, opts ...Option) *Manager {
	m := &Manager{
		sessions: make(map[uuid.UUID]*Session),
		gauge:    gauge,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Open открывает новую сессию. При достижении лимита сначала закрываются истекшие.
func (m *Manager) Open() (*Session, error) {
	now := m.now()
	s := New(now)

	m.mu.Lock()
	expired := 0
	if m.maxSessions > 0 && len(m.sessions) >= m.maxSessions {
		expired = m.evictLocked(now)
	}
	if m.maxSessions > 0 && len(m.sessions) >= m.maxSessions {
		m.mu.Unlock()
		m.closed(expired)
		return nil, ErrTooManySessions
	}
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.closed(expired)
	if m.gauge != nil {
		m.gauge.SessionOpened()
	}
	return s, nil
}

// Get возвращает открытую сессию и отмечает обращение. Истекшая сессия закрывается.
func (m *Manager) Get(id uuid.UUID) (*Session, error) {
	now := m.now()

	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	if m.expired(s, now) {
		if m.remove(id) {
			m.closed(1)
		}
		return nil, ErrSessionNotFound
	}

	s.touch(now)
	return s, nil
}

// Close закрывает сессию, ожидающее действие теряется
func (m *Manager) Close(id uuid.UUID) error {
	if !m.remove(id) {
		return ErrSessionNotFound
	}
	m.closed(1)
	return nil
}

// Sweep закрывает простаивающие сессии и возвращает их число
func (m *Manager) Sweep() int {
	m.mu.Lock()
	n := m.evictLocked(m.now())
	m.mu.Unlock()

	m.closed(n)
	return n
}

// Run периодически вызывает Sweep до отмены ctx
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	if m.idleTTL <= 0 || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}

// Len число открытых сессий
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}

func (m *Manager) expired(s *Session, now time.Time) bool {
	return m.idleTTL > 0 && s.idleSince(now) >= m.idleTTL
}

// evictLocked вызывается под m.mu
func (m *Manager) evictLocked(now time.Time) int {
	n := 0
	for id, s := range m.sessions {
		if m.expired(s, now) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

func (m *Manager) remove(id uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	return true
}

func (m *Manager) closed(n int) {
	if m.gauge == nil {
		return
	}
	for i := 0; i < n; i++ {
		m.gauge.SessionClosed()
	}
}
