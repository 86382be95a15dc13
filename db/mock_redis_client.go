package db

import (
	"context"
	"sync"
	"time"
)

// mockEntry pairs a value with its expiry; zero expiresAt means no TTL.
type mockEntry struct {
	value     string
	expiresAt time.Time
}

// MockRedisClient simulates a Redis client for testing purposes. Entries past
// their TTL are evicted lazily on Get.
type MockRedisClient struct {
	data    map[string]mockEntry
	mu      sync.RWMutex
	context context.Context

	// Now is overridable so tests can advance time without sleeping.
	Now func() time.Time
}

// NewMockRedisClient initializes a new MockRedisClient.
func NewMockRedisClient(ctx context.Context) *MockRedisClient {
	return &MockRedisClient{
		data:    make(map[string]mockEntry),
		context: ctx,
		Now:     time.Now,
	}
}

// Set stores a key-value pair with the given TTL in the mock Redis.
func (m *MockRedisClient) Set(key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry := mockEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = m.Now().Add(ttl)
	}
	m.data[key] = entry
	return nil
}

// Get retrieves a value for a given key, treating expired entries as misses.
func (m *MockRedisClient) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, exists := m.data[key]
	if !exists {
		return "", ErrCacheMiss
	}
	if !entry.expiresAt.IsZero() && !m.Now().Before(entry.expiresAt) {
		delete(m.data, key)
		return "", ErrCacheMiss
	}
	return entry.value, nil
}

// Del removes a key from the mock Redis.
func (m *MockRedisClient) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Ping simulates a Redis Ping operation.
func (m *MockRedisClient) Ping() error {
	return nil
}

// GetContext returns the mock Redis client's context.
func (m *MockRedisClient) GetContext() context.Context {
	return m.context
}
