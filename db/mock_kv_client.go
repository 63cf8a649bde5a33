package db

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// MockKVClient simulates the key-value store for testing purposes.
type MockKVClient struct {
	data    map[string]string // Key-value store
	mu      sync.RWMutex      // Mutex for thread-safe operations
	context context.Context
}

// NewMockKVClient initializes a new MockKVClient.
func NewMockKVClient(ctx context.Context) *MockKVClient {
	return &MockKVClient{
		data:    make(map[string]string),
		context: ctx,
	}
}

// Set stores a key-value pair in the mock store.
func (m *MockKVClient) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Get retrieves a value for a given key from the mock store.
func (m *MockKVClient) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, exists := m.data[key]
	if !exists {
		return "", fmt.Errorf("key not found: %s", key)
	}
	return value, nil
}

// Del removes a key from the mock store.
func (m *MockKVClient) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Keys lists stored keys; only the trailing-asterisk prefix pattern is supported.
func (m *MockKVClient) Keys(pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	prefix := strings.TrimSuffix(pattern, "*")
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// Ping simulates a store Ping operation.
func (m *MockKVClient) Ping() error {
	return nil
}

// GetContext returns the mock client's context.
func (m *MockKVClient) GetContext() context.Context {
	return m.context
}
