package store

import "sync"

// MemoryStore keeps sessions in a map.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]string)}
}

// Create stores a record under a new id.
func (s *MemoryStore) Create(record string) (string, error) {
	id := newID()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = record
	return id, nil
}

// Load returns the record of a session.
func (s *MemoryStore) Load(id string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.sessions[id]
	if !ok {
		return "", notFound(id)
	}
	return record, nil
}

// Save replaces the record of an existing session.
func (s *MemoryStore) Save(id, record string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return notFound(id)
	}
	s.sessions[id] = record
	return nil
}

// Delete removes a session.
func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return notFound(id)
	}
	delete(s.sessions, id)
	return nil
}

// Count returns the number of sessions.
func (s *MemoryStore) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions), nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}
