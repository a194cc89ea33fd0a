// Package memory provides an in-memory implementation of store.Backend.
package memory

import (
	"github.com/takakv/incrhash/store"
	"sync"
)

func dup(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// Backend is a store.Backend backed by a map.
type Backend struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ store.Backend = (*Backend)(nil)

func New() *Backend {
	return &Backend{data: make(map[string][]byte)}
}

func (b *Backend) Get(key []byte) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	value, ok := b.data[string(key)]
	if !ok {
		return nil, store.ErrNotFound
	}
	return dup(value), nil
}

func (b *Backend) Put(key, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.data[string(key)] = dup(value)
	return nil
}

func (b *Backend) Delete(key []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.data, string(key))
	return nil
}

func (b *Backend) Close() error {
	return nil
}
