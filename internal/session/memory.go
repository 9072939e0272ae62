package session

import (
	"context"
	"sync"
	"time"
)

const janitorInterval = 5 * time.Minute

type memoryEntry struct {
	identity Identity
	expires  time.Time
}

// MemoryStore is a process-local Store with TTL eviction. A janitor
// goroutine purges expired entries so abandoned sessions do not accumulate
// for the process lifetime.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	done    chan struct{}
}

func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]memoryEntry),
		done:    make(chan struct{}),
	}
	go s.janitor()
	return s
}

func (s *MemoryStore) Put(_ context.Context, token string, id Identity, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[token] = memoryEntry{identity: id, expires: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (*Identity, error) {
	s.mu.RLock()
	e, ok := s.entries[token]
	s.mu.RUnlock()
	if !ok || time.Now().After(e.expires) {
		return nil, ErrNotFound
	}
	id := e.identity
	return &id, nil
}

func (s *MemoryStore) Revoke(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
	return nil
}

// Close stops the janitor goroutine.
func (s *MemoryStore) Close() {
	close(s.done)
}

func (s *MemoryStore) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			now := time.Now()
			s.mu.Lock()
			for token, e := range s.entries {
				if now.After(e.expires) {
					delete(s.entries, token)
				}
			}
			s.mu.Unlock()
		}
	}
}
