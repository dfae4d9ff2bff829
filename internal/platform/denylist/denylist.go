// Package denylist tracks revoked refresh tokens by their token id. Entries
// live only as long as the token itself would have, so the list never holds
// ids whose tokens could no longer be presented anyway.
package denylist

import (
	"context"
	"sync"
	"time"
)

type Denylist interface {
	// Add records the token id as revoked for the given remaining lifetime.
	Add(ctx context.Context, tokenID string, ttl time.Duration) error
	// Contains reports whether the token id has been revoked.
	Contains(ctx context.Context, tokenID string) (bool, error)
}

// Memory is an in-process Denylist used in tests and single-node setups.
type Memory struct {
	mu      sync.Mutex
	entries map[string]time.Time
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]time.Time)}
}

func (m *Memory) Add(ctx context.Context, tokenID string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[tokenID] = time.Now().Add(ttl)
	return nil
}

func (m *Memory) Contains(ctx context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	expiry, ok := m.entries[tokenID]
	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		delete(m.entries, tokenID)
		return false, nil
	}
	return true, nil
}
