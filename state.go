package mask

import "sync"

// State key/value storage shared by fields. Implementations must be safe for concurrent use.
type State interface {
	// Get returns the value stored under key
	Get(key string) (any, bool)
	// Set stores value under key, a nil value removes the key
	Set(key string, value any)
	Delete(key string)
}

// MemoryState in-memory State guarded by a RWMutex
type MemoryState struct {
	mu    sync.RWMutex
	items map[string]any
}

func NewMemoryState() *MemoryState {
	return &MemoryState{
		items: make(map[string]any),
	}
}

func (s *MemoryState) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[key]
	return v, ok
}

func (s *MemoryState) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if value == nil {
		delete(s.items, key)
		return
	}

	s.items[key] = value
}

func (s *MemoryState) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key)
}

// Len number of keys
func (s *MemoryState) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

// Object returns the value under key if it exists and is a T
func Object[T any](s State, key string) (T, bool) {
	var t T

	v, ok := s.Get(key)
	if !ok {
		return t, false
	}

	t, ok = v.(T)
	return t, ok
}
