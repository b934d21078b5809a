package cache

import "sync"

// Store is an in-process memoization layer for values that are pure
// functions of the current database state. Entries carry no TTL and no
// version: a key exists until a mutation event deletes it, and the next
// read recomputes it. Values are stored as the typed bundles produced
// by the aggregation engine, never as serialized strings.
//
// There is no eviction policy. The admin aggregate key space is fixed
// at four keys and per-entity keys are bounded by the number of live
// entities (and dropped when the entity changes). If per-entity caching
// ever outgrows that assumption, a size-capped LRU should replace the
// plain map here.
type Store struct {
	mu      sync.RWMutex
	entries map[string]any
}

func NewStore() *Store {
	return &Store{entries: make(map[string]any)}
}

func (s *Store) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[key]
	return ok
}

func (s *Store) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	return v, ok
}

// Set fully replaces any existing value. Two concurrent miss paths may
// both compute and both Set; last write wins, which is safe because
// both computed from equivalently fresh data.
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
}

// Delete removes the given keys. Deleting an absent key is a no-op.
func (s *Store) Delete(keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.entries, key)
	}
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Lookup fetches key and asserts it to T. A value of the wrong type
// counts as a miss so a caller can never be handed another bundle's
// shape.
func Lookup[T any](s *Store, key string) (T, bool) {
	v, ok := s.Get(key)
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}
