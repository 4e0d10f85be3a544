package eligibility

import "sync"

// MemoryStore keeps play records in a map. It backs the tests and any
// environment without a database.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]string)}
}

// HasPlayed reports whether a record exists for the key.
func (s *MemoryStore) HasPlayed(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.records[key]
	return ok
}

// MarkPlayed records the drawn card for the key, last write wins.
func (s *MemoryStore) MarkPlayed(key, entryID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = entryID
}

// Entry returns the recorded card id for a key.
func (s *MemoryStore) Entry(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.records[key]
	return id, ok
}

// Len reports how many identities have played.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
