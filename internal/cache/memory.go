package cache

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/nfrund/bcard/internal/domain"
	"github.com/nfrund/bcard/internal/metrics"
)

type entry struct {
	cards     []domain.Card
	expiresAt time.Time
}

// Memory is an in-process CardLists with a fixed TTL.
type Memory struct {
	mu        sync.Mutex
	clock     clockwork.Clock
	ttl       time.Duration
	entries   map[string]entry
	lastSweep time.Time
}

// NewMemory creates an in-memory cache whose entries live for ttl.
func NewMemory(clock clockwork.Clock, ttl time.Duration) *Memory {
	return &Memory{
		clock:     clock,
		ttl:       ttl,
		entries:   make(map[string]entry),
		lastSweep: clock.Now(),
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]domain.Card, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok || !m.clock.Now().Before(e.expiresAt) {
		delete(m.entries, key)
		metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
		return nil, false
	}
	metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
	return clone(e.cards), true
}

// Set also sweeps expired entries, at most once per TTL, so per-user keys
// that are never read again do not pile up.
func (m *Memory) Set(_ context.Context, key string, cards []domain.Card) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock.Now()
	if now.Sub(m.lastSweep) >= m.ttl {
		for k, e := range m.entries {
			if !now.Before(e.expiresAt) {
				delete(m.entries, k)
			}
		}
		m.lastSweep = now
	}
	m.entries[key] = entry{cards: clone(cards), expiresAt: now.Add(m.ttl)}
}

// Update keeps the original expiry so patched lists still age out.
func (m *Memory) Update(_ context.Context, key string, fn func([]domain.Card) []domain.Card) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok || !m.clock.Now().Before(e.expiresAt) {
		delete(m.entries, key)
		return
	}
	e.cards = clone(fn(clone(e.cards)))
	m.entries[key] = e
}

func (m *Memory) Delete(_ context.Context, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}

func clone(cards []domain.Card) []domain.Card {
	if cards == nil {
		return nil
	}
	return append([]domain.Card(nil), cards...)
}
