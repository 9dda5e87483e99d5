package session

import (
	"time"

	"github.com/google/uuid"
)

// Session is an anonymous visitor session. Values stored in Data are shared
// between copies and must be replaced rather than mutated in place.
type Session struct {
	ID             uuid.UUID
	Token          string
	Data           map[string]any
	ExpiresAt      time.Time
	LastActivityAt time.Time
	CreatedAt      time.Time
}

// NewSession creates a session that expires after ttl.
func NewSession(token string, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:             uuid.New(),
		Token:          token,
		Data:           make(map[string]any),
		ExpiresAt:      now.Add(ttl),
		LastActivityAt: now,
		CreatedAt:      now,
	}
}

// IsExpired returns true if the session has expired
func (s *Session) IsExpired() bool {
	return s != nil && time.Now().After(s.ExpiresAt)
}

// Get retrieves a value from session data
func (s *Session) Get(key string) (any, bool) {
	if s == nil || s.Data == nil {
		return nil, false
	}
	val, ok := s.Data[key]
	return val, ok
}

// Set stores a value in session data
func (s *Session) Set(key string, value any) {
	if s == nil {
		return
	}
	if s.Data == nil {
		s.Data = make(map[string]any)
	}
	s.Data[key] = value
}

// Delete removes a value from session data
func (s *Session) Delete(key string) {
	if s == nil || s.Data == nil {
		return
	}
	delete(s.Data, key)
}

// Clear removes all data from the session
func (s *Session) Clear() {
	if s == nil {
		return
	}
	s.Data = make(map[string]any)
}

// Touch updates the last activity time
func (s *Session) Touch() {
	if s == nil {
		return
	}
	s.LastActivityAt = time.Now()
}

// Value returns the value under key when it has type T.
func Value[T any](s *Session, key string) (T, bool) {
	var zero T
	val, ok := s.Get(key)
	if !ok {
		return zero, false
	}
	typed, ok := val.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// Pop returns the value under key and removes it, for one-shot values such as
// flash messages. The caller saves the session to make the removal stick.
func Pop[T any](s *Session, key string) (T, bool) {
	v, ok := Value[T](s, key)
	if ok {
		s.Delete(key)
	}
	return v, ok
}
