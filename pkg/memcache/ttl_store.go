// Package memcache is a small in-process key/value store with per-entry expiry.
package memcache

import (
	"sync"
	"time"
)

type Store[V any] interface {
	Set(key string, value V, ttl time.Duration)

	// Get returns the value if present and not expired.
	Get(key string) (V, bool)

	Delete(key string)
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

type TTLStore[V any] struct {
	mu   sync.RWMutex
	data map[string]entry[V]
	now  func() time.Time
}

func NewTTLStore[V any]() *TTLStore[V] {
	return &TTLStore[V]{
		data: make(map[string]entry[V]),
		now:  time.Now,
	}
}

// Set stores value under key. A non-positive ttl keeps the entry forever.
func (s *TTLStore[V]) Set(key string, value V, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var exp time.Time
	if ttl > 0 {
		exp = s.now().Add(ttl)
	}
	s.data[key] = entry[V]{value: value, expiresAt: exp}
}

func (s *TTLStore[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	var zero V
	if !ok {
		return zero, false
	}
	if s.expired(e) {
		s.mu.Lock()
		// a Set may have replaced the entry since the read lock was released
		if cur, ok := s.data[key]; ok && s.expired(cur) {
			delete(s.data, key)
		}
		s.mu.Unlock()
		return zero, false
	}
	return e.value, true
}

func (s *TTLStore[V]) expired(e entry[V]) bool {
	return !e.expiresAt.IsZero() && s.now().After(e.expiresAt)
}

func (s *TTLStore[V]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

// Len counts entries, expired ones included until they are read.
func (s *TTLStore[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
