package anchor

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory anchor store.
// Useful for testing or single-process editing sessions.
type MemoryStore struct {
	mu      sync.RWMutex
	anchors map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{anchors: make(map[string]string)}
}

// Get returns the pinned anchor id for the document.
func (s *MemoryStore) Get(ctx context.Context, docID string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.anchors[docID]
	return id, ok, nil
}

// Set pins an anchor id, replacing any previous pin.
func (s *MemoryStore) Set(ctx context.Context, docID, objectID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.anchors[docID] = objectID
	return nil
}

// Clear removes the pinned anchor.
func (s *MemoryStore) Clear(ctx context.Context, docID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.anchors, docID)
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
