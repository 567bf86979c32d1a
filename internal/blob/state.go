package blob

import (
	"context"
	"errors"
	"time"

	"github.com/fdg312/health-tracker/internal/storage"
)

const jsonContentType = "application/json"

// StateStorage хранит документы состояния объектами в бакете:
// ключ документа превращается в объект <prefix><key>.json.
type StateStorage struct {
	store  Store
	prefix string
	now    func() time.Time
}

// NewStateStorage wraps a blob Store as a storage.Storage.
func NewStateStorage(store Store, prefix string) *StateStorage {
	return &StateStorage{store: store, prefix: prefix, now: time.Now}
}

// ObjectKey returns the object key for a document key.
func (s *StateStorage) ObjectKey(key string) string {
	return s.prefix + key + ".json"
}

func (s *StateStorage) Get(ctx context.Context, key string) (*storage.BlobRow, error) {
	data, err := s.store.GetObject(ctx, s.ObjectKey(key))
	if errors.Is(err, ErrObjectNotFound) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	// S3 GET не возвращает время изменения без HEAD; момент чтения достаточен для логов
	return &storage.BlobRow{Key: key, Payload: data, UpdatedAt: s.now()}, nil
}

func (s *StateStorage) Put(ctx context.Context, key string, payload []byte) error {
	_, err := s.store.PutObject(ctx, s.ObjectKey(key), payload, jsonContentType)
	return err
}

func (s *StateStorage) Delete(ctx context.Context, key string) error {
	return s.store.DeleteObject(ctx, s.ObjectKey(key))
}

func (s *StateStorage) Close() error {
	return nil
}
