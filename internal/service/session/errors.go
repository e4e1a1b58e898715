package session

import "errors"

var (
	// ErrSessionNotFound сессия не открыта, закрыта или истекла
	ErrSessionNotFound = errors.New("session: not found")

	// ErrTooManySessions достигнут лимит открытых сессий
	ErrTooManySessions = errors.New("session: too many open sessions")
)
