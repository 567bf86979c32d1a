package memory

import (
	"context"
	"testing"

	"github.com/fdg312/health-tracker/internal/storage/storagetest"
)

func TestMemoryStorageContract(t *testing.T) {
	storagetest.Run(t, New())
}

func TestMemoryStorageReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := New()

	payload := []byte(`{"a":1}`)
	if err := m.Put(ctx, "k", payload); err != nil {
		t.Fatalf("put: %v", err)
	}
	payload[1] = 'X'

	row, err := m.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(row.Payload) != `{"a":1}` {
		t.Fatalf("expected stored payload to be isolated, got %s", row.Payload)
	}
}
