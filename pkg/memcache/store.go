// Package mem is an in-process key/value store with optional expiry. It backs the saved-trip and
// token stores when no Redis is configured.
package mem

import (
	"sort"
	"strings"
	"sync"
	"time"
)

type entry struct {
	value     []byte
	expiresAt time.Time // zero means no expiry
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

type Store struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

func NewStore() *Store {
	return &Store{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

// Set stores a copy of value. A ttl of zero or less keeps it until deleted.
func (s *Store) Set(key string, value []byte, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = s.newEntry(value, ttl)
}

func (s *Store) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	if !ok || e.expired(s.now()) {
		return nil, false
	}
	return append([]byte(nil), e.value...), true
}

func (s *Store) Exists(key string) bool {
	_, ok := s.Get(key)
	return ok
}

func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

// Update runs fn with the current value under the write lock and stores what it returns.
// Nothing is written when fn fails.
func (s *Store) Update(key string, fn func(current []byte, found bool) ([]byte, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[key]
	if ok && e.expired(s.now()) {
		delete(s.data, key)
		ok = false
	}
	next, err := fn(e.value, ok)
	if err != nil {
		return err
	}
	s.data[key] = s.newEntry(next, 0)
	return nil
}

// Keys lists live keys with the given prefix in sorted order and drops expired entries on the way.
func (s *Store) Keys(prefix string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	keys := make([]string, 0, len(s.data))
	for k, e := range s.data {
		if e.expired(now) {
			delete(s.data, k)
			continue
		}
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func (s *Store) newEntry(value []byte, ttl time.Duration) entry {
	e := entry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		e.expiresAt = s.now().Add(ttl)
	}
	return e
}
