package blob

import (
	"context"
	"sync"
	"testing"

	"github.com/fdg312/health-tracker/internal/storage/storagetest"
)

// fakeStore — Store в памяти процесса
type fakeStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeStore) PutObject(ctx context.Context, key string, data []byte, contentType string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = append([]byte(nil), data...)
	f.types[key] = contentType
	return int64(len(data)), nil
}

func (f *fakeStore) GetObject(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[key]
	if !ok {
		return nil, ErrObjectNotFound
	}
	return append([]byte(nil), data...), nil
}

func (f *fakeStore) PresignGet(ctx context.Context, key string, ttlSeconds int) (string, error) {
	return "https://example.invalid/" + key, nil
}

func (f *fakeStore) DeleteObject(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	return nil
}

func TestStateStorageContract(t *testing.T) {
	storagetest.Run(t, NewStateStorage(newFakeStore(), "health-tracker/"))
}

func TestStateStorageObjectLayout(t *testing.T) {
	fake := newFakeStore()
	s := NewStateStorage(fake, "health-tracker/")

	if err := s.Put(context.Background(), "health-tracker-state-v2", []byte(`{}`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	const want = "health-tracker/health-tracker-state-v2.json"
	if _, ok := fake.objects[want]; !ok {
		t.Fatalf("expected object %s, got %v", want, fake.objects)
	}
	if fake.types[want] != "application/json" {
		t.Fatalf("expected json content type, got %q", fake.types[want])
	}
}
