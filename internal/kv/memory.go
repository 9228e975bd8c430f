package kv

import (
	"context"
	"sync"
)

// Memory is an in-process Store used in tests and local runs.
// FailSets and FailGets let tests exercise persistence failure paths.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte

	FailSets map[string]error
	FailGets map[string]error
}

func NewMemory() *Memory {
	return &Memory{
		data: make(map[string][]byte),
	}
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err, ok := m.FailGets[key]; ok {
		return nil, err
	}

	value, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *Memory) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.FailSets[key]; ok {
		return err
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}

func (m *Memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}

// Put seeds a raw value directly, bypassing failure injection.
func (m *Memory) Put(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
}
