// Package cache provides size-bounded TTL stores used to memoize expensive
// pipeline results between runs over the same scene.
package cache

import (
	"sort"
	"sync"
	"time"
)

type entry[V any] struct {
	value       V
	refreshedAt time.Time
	ttl         time.Duration
}

func (e entry[V]) expired(now time.Time) bool {
	return now.After(e.refreshedAt.Add(e.ttl))
}

// Store is a mutex-guarded key-value cache with per-entry expiry and a soft
// capacity. Reads refresh an entry's lifetime, so keys that stay in use do
// not expire.
type Store[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]entry[V]
	capacity int
	ttl      time.Duration
	hits     uint64
	misses   uint64

	now func() time.Time // swapped out in tests
}

// Stats is a point-in-time snapshot of a store's usage counters.
type Stats struct {
	Size     int     `json:"size"`
	Capacity int     `json:"capacity"`
	Hits     uint64  `json:"hits"`
	Misses   uint64  `json:"misses"`
	HitRatio float64 `json:"hit_ratio"`
}

// NewStore returns an empty store whose entries expire ttl after their last
// use. Once capacity is reached an insert first drops expired entries, then
// the least recently refreshed quarter.
func NewStore[K comparable, V any](capacity int, ttl time.Duration) *Store[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &Store[K, V]{
		entries:  make(map[K]entry[V]),
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns the cached value for key. The second result is false when the
// key is absent or its entry expired; expired entries are removed on the
// spot and count as misses. A hit refreshes the entry's lifetime.
func (s *Store[K, V]) Get(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero V
	e, ok := s.entries[key]
	if !ok {
		s.misses++
		return zero, false
	}
	if e.expired(s.now()) {
		delete(s.entries, key)
		s.misses++
		return zero, false
	}

	e.refreshedAt = s.now()
	s.entries[key] = e
	s.hits++
	return e.value, true
}

// Set stores value under key with the store's default lifetime.
func (s *Store[K, V]) Set(key K, value V) {
	s.SetTTL(key, value, s.ttl)
}

// SetTTL stores value under key with an entry-specific lifetime.
func (s *Store[K, V]) SetTTL(key K, value V, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) >= s.capacity {
		s.cleanup()
	}
	s.entries[key] = entry[V]{value: value, refreshedAt: s.now(), ttl: ttl}
}

// GetOrCompute returns the cached value for key, computing and storing it on
// a miss. compute runs without the store lock held, so concurrent callers
// may compute the same value; the last write wins.
func (s *Store[K, V]) GetOrCompute(key K, compute func() V) V {
	if v, ok := s.Get(key); ok {
		return v
	}
	v := compute()
	s.Set(key, v)
	return v
}

// Remove deletes key and reports whether it was present.
func (s *Store[K, V]) Remove(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; !ok {
		return false
	}
	delete(s.entries, key)
	return true
}

// Clear drops every entry. Hit and miss counters are not reset.
func (s *Store[K, V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.entries)
}

// Len returns the number of stored entries, including any not yet evicted
// expired ones.
func (s *Store[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Stats returns a snapshot of the store's size and counters. HitRatio is 0
// when the store has never been queried.
func (s *Store[K, V]) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{
		Size:     len(s.entries),
		Capacity: s.capacity,
		Hits:     s.hits,
		Misses:   s.misses,
	}
	if total := s.hits + s.misses; total > 0 {
		st.HitRatio = float64(s.hits) / float64(total)
	}
	return st
}

// cleanup evicts expired entries, then the oldest quarter (at least one
// entry) if the store is still at capacity. Callers must hold mu.
func (s *Store[K, V]) cleanup() {
	now := s.now()
	for k, e := range s.entries {
		if e.expired(now) {
			delete(s.entries, k)
		}
	}

	if len(s.entries) < s.capacity {
		return
	}

	type aged struct {
		key         K
		refreshedAt time.Time
	}
	byAge := make([]aged, 0, len(s.entries))
	for k, e := range s.entries {
		byAge = append(byAge, aged{k, e.refreshedAt})
	}
	sort.Slice(byAge, func(i, j int) bool {
		return byAge[i].refreshedAt.Before(byAge[j].refreshedAt)
	})

	evict := max(1, len(byAge)/4)
	for _, a := range byAge[:evict] {
		delete(s.entries, a.key)
	}
}
