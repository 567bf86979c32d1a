// Package storagetest содержит общий набор проверок для реализаций storage.Storage.
package storagetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fdg312/health-tracker/internal/storage"
)

// Run проверяет контракт Storage: upsert, чтение после записи, ErrNotFound
// и идемпотентное удаление. Ключи префиксуются, чтобы не мешать данным в общей базе.
func Run(t *testing.T, s storage.Storage) {
	t.Helper()
	ctx := context.Background()
	key := "storagetest-" + t.Name()

	t.Cleanup(func() { _ = s.Delete(ctx, key) })

	t.Run("missing key", func(t *testing.T) {
		_, err := s.Get(ctx, key+"-missing")
		require.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("read after write", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, key, []byte(`{"schema_version":2}`)))

		row, err := s.Get(ctx, key)
		require.NoError(t, err)
		require.JSONEq(t, `{"schema_version":2}`, string(row.Payload))
		require.False(t, row.UpdatedAt.IsZero())
	})

	t.Run("put replaces document", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, key, []byte(`{"a":1}`)))
		require.NoError(t, s.Put(ctx, key, []byte(`{"a":2}`)))

		row, err := s.Get(ctx, key)
		require.NoError(t, err)
		require.JSONEq(t, `{"a":2}`, string(row.Payload))
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, key, []byte(`{}`)))
		require.NoError(t, s.Delete(ctx, key))
		require.NoError(t, s.Delete(ctx, key))

		_, err := s.Get(ctx, key)
		require.ErrorIs(t, err, storage.ErrNotFound)
	})
}
