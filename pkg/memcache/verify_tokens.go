package memcache

import (
	"sync"
	"time"
)

// VerifyTokenStore holds single-use email verification tokens. Entries that
// are never consumed are dropped by the registration sweep once the owning
// account is removed, so no janitor goroutine is needed here.
type VerifyTokenStore interface {
	Set(token string, email string, ttl time.Duration)

	// Consume returns the email for token if not expired, and removes the
	// token (single-use). Returns "" if missing/expired.
	Consume(token string) string

	Peek(token string) (string, bool)
}

type entry struct {
	email     string
	expiresAt time.Time
}

type VerifyTokens struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewVerifyTokens() *VerifyTokens {
	return &VerifyTokens{
		data: make(map[string]entry),
	}
}

func (s *VerifyTokens) Set(token string, email string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = entry{
		email:     email,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *VerifyTokens) Consume(token string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[token]
	if !ok {
		return ""
	}
	delete(s.data, token)
	if time.Now().After(e.expiresAt) {
		return ""
	}
	return e.email
}

func (s *VerifyTokens) Peek(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[token]
	if !ok || time.Now().After(e.expiresAt) {
		return "", false
	}
	return e.email, true
}
