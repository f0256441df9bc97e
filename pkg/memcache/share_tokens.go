package mem

import (
	"sync"
	"time"
)

// ShareTokenStore maps opaque share tokens to trip ids. Tokens are
// multi-use until expiry; a shared link keeps working for its TTL.
type ShareTokenStore interface {
	Set(token string, tripID string, ttl time.Duration)

	// Resolve returns the trip id for token if not expired, "" otherwise.
	Resolve(token string) string

	// Revoke drops every token pointing at tripID (trip discarded).
	Revoke(tripID string)
}

type shareEntry struct {
	tripID    string
	expiresAt time.Time
}

type ShareTokens struct {
	mu   sync.RWMutex
	data map[string]shareEntry
}

func NewShareTokens() *ShareTokens {
	return &ShareTokens{data: make(map[string]shareEntry)}
}

func (s *ShareTokens) Set(token string, tripID string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = shareEntry{tripID: tripID, expiresAt: time.Now().Add(ttl)}
}

func (s *ShareTokens) Resolve(token string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[token]
	if !ok {
		return ""
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, token)
		return ""
	}
	return e.tripID
}

func (s *ShareTokens) Revoke(tripID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, e := range s.data {
		if e.tripID == tripID {
			delete(s.data, token)
		}
	}
}
