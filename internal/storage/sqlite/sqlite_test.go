package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fdg312/health-tracker/internal/storage/storagetest"
)

func TestSQLiteStorageContract(t *testing.T) {
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "tracker.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	storagetest.Run(t, s)
}

func TestSQLiteStorageSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "tracker.db")

	s, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, "health-tracker-state-v2", []byte(`{"schema_version":2}`)))
	require.NoError(t, s.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	row, err := reopened.Get(ctx, "health-tracker-state-v2")
	require.NoError(t, err)
	require.JSONEq(t, `{"schema_version":2}`, string(row.Payload))
}
