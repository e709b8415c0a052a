package memcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLStoreExpiry(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewTTLStore[string]()
	s.now = func() time.Time { return now }

	s.Set("token", "abc", time.Minute)
	s.Set("forever", "x", 0)

	v, ok := s.Get("token")
	assert.True(t, ok)
	assert.Equal(t, "abc", v)

	now = now.Add(2 * time.Minute)

	_, ok = s.Get("token")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())

	v, ok = s.Get("forever")
	assert.True(t, ok)
	assert.Equal(t, "x", v)
}

func TestTTLStoreDelete(t *testing.T) {
	s := NewTTLStore[[]byte]()
	s.Set("k", []byte("v"), time.Hour)
	s.Delete("k")

	_, ok := s.Get("k")
	assert.False(t, ok)
}

func TestTTLStoreExpiredGetKeepsConcurrentSet(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewTTLStore[string]()
	s.now = func() time.Time { return now }

	s.Set("token", "old", time.Minute)
	now = now.Add(2 * time.Minute)

	// the first clock read inside Get happens after the read lock is released;
	// a refresh lands there
	refreshed := false
	s.now = func() time.Time {
		if !refreshed {
			refreshed = true
			s.Set("token", "fresh", time.Hour)
		}
		return now
	}

	_, ok := s.Get("token")
	assert.False(t, ok)

	v, ok := s.Get("token")
	assert.True(t, ok)
	assert.Equal(t, "fresh", v)
}
