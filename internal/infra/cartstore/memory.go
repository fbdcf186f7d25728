package cartstore

import (
	"context"
	"sync"

	"jersey-storefront/internal/domain/cart"
)

// MemoryBackend keeps carts in process memory, keyed by session. Carts are lost on restart.
type MemoryBackend struct {
	mu    sync.Mutex
	carts map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{carts: make(map[string][]byte)}
}

func (b *MemoryBackend) ForSession(sessionID string) cart.Store {
	return &memoryStore{backend: b, sessionID: sessionID}
}

type memoryStore struct {
	backend   *MemoryBackend
	sessionID string
}

func (s *memoryStore) Load(_ context.Context) ([]cart.Line, error) {
	s.backend.mu.Lock()
	data, ok := s.backend.carts[s.sessionID]
	s.backend.mu.Unlock()
	if !ok {
		return nil, nil
	}
	lines, _, err := decodeLines(data)
	return lines, err
}

func (s *memoryStore) Save(_ context.Context, lines []cart.Line) error {
	if len(lines) == 0 {
		s.backend.mu.Lock()
		delete(s.backend.carts, s.sessionID)
		s.backend.mu.Unlock()
		return nil
	}

	data, err := encodeLines(lines)
	if err != nil {
		return err
	}
	s.backend.mu.Lock()
	s.backend.carts[s.sessionID] = data
	s.backend.mu.Unlock()
	return nil
}
