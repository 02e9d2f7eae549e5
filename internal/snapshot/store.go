package snapshot

import (
	"context"
	"sync"

	"github.com/rare-disease-dx/internal/domain"
)

// Store is a single durable slot holding one encoded snapshot.
// Get returns domain.ErrSnapshotAbsent when the slot is empty.
type Store interface {
	Put(ctx context.Context, data []byte) error
	Get(ctx context.Context) ([]byte, error)
	Delete(ctx context.Context) error
	Close() error
}

// MemoryStore keeps the slot in process memory. It is used when persistence
// is disabled and in tests.
type MemoryStore struct {
	mu   sync.RWMutex
	data []byte
}

// NewMemoryStore returns an empty in-memory slot.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Put(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
	return nil
}

func (m *MemoryStore) Get(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.data == nil {
		return nil, domain.ErrSnapshotAbsent
	}
	return append([]byte(nil), m.data...), nil
}

func (m *MemoryStore) Delete(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}
