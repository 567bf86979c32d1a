package memory

import (
	"context"
	"sync"
	"time"

	"github.com/fdg312/health-tracker/internal/storage"
)

// MemoryStorage — in-memory реализация Storage. Данные живут до выхода процесса.
type MemoryStorage struct {
	mu    sync.RWMutex
	blobs map[string]storage.BlobRow
	now   func() time.Time
}

// New создаёт пустой MemoryStorage
func New() *MemoryStorage {
	return &MemoryStorage{
		blobs: make(map[string]storage.BlobRow),
		now:   time.Now,
	}
}

func (m *MemoryStorage) Get(ctx context.Context, key string) (*storage.BlobRow, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	row, ok := m.blobs[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	row.Payload = append([]byte(nil), row.Payload...)
	return &row, nil
}

func (m *MemoryStorage) Put(ctx context.Context, key string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.blobs[key] = storage.BlobRow{
		Key:       key,
		Payload:   append([]byte(nil), payload...),
		UpdatedAt: m.now(),
	}
	return nil
}

func (m *MemoryStorage) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.blobs, key)
	return nil
}

// Close ничего не делает (для совместимости с Postgres)
func (m *MemoryStorage) Close() error {
	return nil
}
