package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
)

// Session состояние одного диалога. Хранит не больше одного ожидающего действия.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu       sync.Mutex
	pending  *domain.PendingAction
	lastUsed time.Time
}

// New создает сессию без ожидающего действия
func New(now time.Time) *Session {
	return &Session{
		ID:        uuid.New(),
		CreatedAt: now,
		lastUsed:  now,
	}
}

// LastUsed время последнего обращения к сессии через Manager
func (s *Session) LastUsed() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastUsed
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastUsed = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return now.Sub(s.lastUsed)
}

// Pending текущее ожидающее действие
func (s *Session) Pending() (domain.PendingAction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil {
		return domain.PendingAction{}, false
	}
	return *s.pending, true
}

// SetPending заменяет ожидающее действие
func (s *Session) SetPending(action domain.PendingAction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = &action
}

// ClearPending сбрасывает ожидающее действие
func (s *Session) ClearPending() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = nil
}

// TakePending возвращает ожидающее действие и сразу сбрасывает его
func (s *Session) TakePending() (domain.PendingAction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil {
		return domain.PendingAction{}, false
	}
	action := *s.pending
	s.pending = nil
	return action, true
}
