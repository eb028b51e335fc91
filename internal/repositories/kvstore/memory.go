package kvstore

import (
	"context"
	"maps"
	"sync"
)

// MemoryStore is a Store that lives only as long as the process.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Update holds the store lock for the whole of fn, so units of work are
// serialized. Writes go to a staged copy that replaces the data only when fn
// succeeds.
func (m *MemoryStore) Update(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	staged := &memTx{data: maps.Clone(m.data)}
	if err := fn(ctx, staged); err != nil {
		return err
	}
	m.data = staged.data
	return nil
}

type memTx struct {
	data map[string]string
}

func (t *memTx) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := t.data[key]
	return v, ok, nil
}

func (t *memTx) Set(_ context.Context, key string, value string) error {
	t.data[key] = value
	return nil
}

func (t *memTx) Remove(_ context.Context, key string) error {
	delete(t.data, key)
	return nil
}
