package cache

import (
	"context"
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Memory is a process-local TTL cache. Expired entries are dropped lazily on
// read and in bulk by Purge, which WithCleanup runs periodically.
type Memory[V any] struct {
	mu    sync.RWMutex
	items map[string]entry[V]
	now   func() time.Time

	cleanupInterval time.Duration
	stop            chan struct{}
	stopOnce        sync.Once
}

type Option[V any] func(*Memory[V])

// WithClock replaces time.Now, mostly for tests.
func WithClock[V any](now func() time.Time) Option[V] {
	return func(m *Memory[V]) {
		m.now = now
	}
}

// WithCleanup purges expired entries every interval until Close.
func WithCleanup[V any](interval time.Duration) Option[V] {
	return func(m *Memory[V]) {
		m.cleanupInterval = interval
	}
}

func NewMemory[V any](opts ...Option[V]) *Memory[V] {
	m := &Memory[V]{
		items: make(map[string]entry[V]),
		now:   time.Now,
		stop:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.cleanupInterval > 0 {
		go m.cleanupLoop()
	}
	return m
}

func (m *Memory[V]) cleanupLoop() {
	ticker := time.NewTicker(m.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.Purge()
		}
	}
}

// Close stops the cleanup loop. It is safe to call more than once.
func (m *Memory[V]) Close() error {
	m.stopOnce.Do(func() { close(m.stop) })
	return nil
}

func (m *Memory[V]) Get(_ context.Context, key string) (V, bool) {
	m.mu.RLock()
	item, ok := m.items[key]
	m.mu.RUnlock()

	var zero V
	if !ok {
		return zero, false
	}

	if !m.now().Before(item.expiresAt) {
		m.mu.Lock()
		if cur, ok := m.items[key]; ok && cur.expiresAt.Equal(item.expiresAt) {
			delete(m.items, key)
		}
		m.mu.Unlock()
		return zero, false
	}

	return item.value, true
}

func (m *Memory[V]) Set(_ context.Context, key string, value V, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = entry[V]{
		value:     value,
		expiresAt: m.now().Add(ttl),
	}
}

func (m *Memory[V]) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
}

func (m *Memory[V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Purge removes expired entries and returns how many were dropped.
func (m *Memory[V]) Purge() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for key, item := range m.items {
		if !now.Before(item.expiresAt) {
			delete(m.items, key)
			removed++
		}
	}
	return removed
}
