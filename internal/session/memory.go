package session

import (
	"context"
	"sync"

	"tienda/internal/domain"
)

// MemoryStore is an in-process Store used in tests and when no redis address
// is configured.
type MemoryStore struct {
	mu    sync.Mutex
	carts map[string]map[int64]int
}

func NewMemory() *MemoryStore {
	return &MemoryStore{carts: make(map[string]map[int64]int)}
}

func (s *MemoryStore) Load(_ context.Context, sessionID string) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CartFromSnapshot(s.carts[sessionID]), nil
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, c *domain.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.Empty() {
		delete(s.carts, sessionID)
		return nil
	}
	s.carts[sessionID] = c.Snapshot()
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}
