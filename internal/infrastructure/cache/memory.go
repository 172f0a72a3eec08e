package cache

import (
	"context"
	"sync"
	"time"

	"github.com/vehicle-marketplace/rental-search/internal/infrastructure/timeutil"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// Memory is an in-process Cache. Expiry is checked against the clock on read.
type Memory struct {
	mu      sync.RWMutex
	clock   timeutil.Clock
	entries map[string]entry
}

// NewMemory creates an in-process cache. A nil clock uses the real clock.
func NewMemory(clock timeutil.Clock) *Memory {
	if clock == nil {
		clock = &timeutil.RealClock{}
	}
	return &Memory{
		clock:   clock,
		entries: make(map[string]entry),
	}
}

func (m *Memory) Name() string {
	return "memory"
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrMiss
	}
	if m.expired(e) {
		m.mu.Lock()
		// A Set may have replaced the entry since the read lock was released.
		if cur, ok := m.entries[key]; ok && m.expired(cur) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return nil, ErrMiss
	}

	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, nil
}

func (m *Memory) expired(e entry) bool {
	return !e.expiresAt.IsZero() && !m.clock.Now().Before(e.expiresAt)
}

// Set stores value under key. A non-positive ttl never expires.
func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	e := entry{value: make([]byte, len(value))}
	copy(e.value, value)
	if ttl > 0 {
		e.expiresAt = m.clock.Now().Add(ttl)
	}

	m.mu.Lock()
	m.entries[key] = e
	m.mu.Unlock()
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

// Len reports the number of stored entries, expired ones included.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

var _ Cache = (*Memory)(nil)
