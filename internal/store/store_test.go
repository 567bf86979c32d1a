package store

import (
	"bytes"
	"context"
	"errors"
	"log"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fdg312/health-tracker/internal/config"
	"github.com/fdg312/health-tracker/internal/state"
	"github.com/fdg312/health-tracker/internal/storage"
	"github.com/fdg312/health-tracker/internal/storage/memory"
)

var testNow = time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T, seed bool) (*Store, *memory.MemoryStorage, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	backend := memory.New()
	return New(backend, Options{SeedExampleData: seed, Logger: log.New(&buf, "", 0)}), backend, &buf
}

func TestLoadFreshInstallSeeds(t *testing.T) {
	s, _, logs := newTestStore(t, true)

	root, src, err := s.Load(context.Background(), testNow)
	require.NoError(t, err)
	assert.Equal(t, SourceDefault, src)
	assert.Equal(t, 1500, root.Day.HydrationMl)
	assert.Len(t, root.Day.Meals, 2)
	assert.Contains(t, logs.String(), "source=default seed=true")
}

func TestLoadFreshInstallWithoutSeed(t *testing.T) {
	s, _, _ := newTestStore(t, false)

	root, src, err := s.Load(context.Background(), testNow)
	require.NoError(t, err)
	assert.Equal(t, SourceDefault, src)
	assert.Empty(t, root.Day.Meals)
	assert.Zero(t, root.Day.HydrationMl)
}

func TestSaveThenLoadCurrent(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t, true)

	root := state.NewDefault(testNow, false)
	root.Day.Meals = append(root.Day.Meals, state.Meal{ID: "m1", Name: "Soup", Slot: "Dinner", Calories: 350})
	require.NoError(t, s.Save(ctx, root))

	loaded, src, err := s.Load(ctx, testNow)
	require.NoError(t, err)
	assert.Equal(t, SourceCurrent, src)
	require.Len(t, loaded.Day.Meals, 1)
	assert.Equal(t, "Soup", loaded.Day.Meals[0].Name)
}

func TestLoadMigratesLegacy(t *testing.T) {
	ctx := context.Background()
	s, backend, logs := newTestStore(t, true)

	legacy := `{"goals":{"calories":1800},"day":{"isoDate":"2026-10-17","supplements":{},"meals":[],"hydrationMl":250,"waterEvents":[250]},"week":{"isoWeekKey":"2026-W42","completedWorkouts":[]}}`
	require.NoError(t, backend.Put(ctx, LegacyKey, []byte(legacy)))

	root, src, err := s.Load(ctx, testNow)
	require.NoError(t, err)
	assert.Equal(t, SourceLegacy, src)
	assert.Equal(t, 1800, root.Goals.Calories)
	assert.Equal(t, 250, root.Day.HydrationMl)
	assert.Contains(t, logs.String(), "source=legacy")
}

func TestLoadRepairsHydrationTotal(t *testing.T) {
	ctx := context.Background()
	s, backend, _ := newTestStore(t, false)

	root := state.NewDefault(testNow, false)
	root.Day.WaterEvents = []int{100}
	root.Day.HydrationMl = 900
	data, err := state.Encode(root)
	require.NoError(t, err)
	require.NoError(t, backend.Put(ctx, CurrentKey, data))

	loaded, src, err := s.Load(ctx, testNow)
	require.NoError(t, err)
	assert.Equal(t, SourceCurrent, src)
	assert.Equal(t, []int{100}, loaded.Day.WaterEvents)
	assert.Equal(t, 100, loaded.Day.HydrationMl)
}

func TestLoadCorruptCurrentFallsBackToLegacy(t *testing.T) {
	ctx := context.Background()
	s, backend, logs := newTestStore(t, true)

	require.NoError(t, backend.Put(ctx, CurrentKey, []byte(`{"schema_version":`)))
	require.NoError(t, backend.Put(ctx, LegacyKey, []byte(`{"goals":{"calories":1700}}`)))

	root, src, err := s.Load(ctx, testNow)
	require.NoError(t, err)
	assert.Equal(t, SourceLegacy, src)
	assert.Equal(t, 1700, root.Goals.Calories)
	assert.Contains(t, logs.String(), "WARN store: key="+CurrentKey)
}

func TestLoadCorruptEverythingFallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	s, backend, _ := newTestStore(t, false)

	require.NoError(t, backend.Put(ctx, CurrentKey, []byte(`not json`)))
	require.NoError(t, backend.Put(ctx, LegacyKey, []byte(`[]`)))

	root, src, err := s.Load(ctx, testNow)
	require.NoError(t, err)
	assert.Equal(t, SourceDefault, src)
	assert.Equal(t, state.DefaultGoals(), root.Goals)
}

type brokenStorage struct{ storage.Storage }

var errUnreachable = errors.New("connection refused")

func (brokenStorage) Get(ctx context.Context, key string) (*storage.BlobRow, error) {
	return nil, errUnreachable
}

func (brokenStorage) Put(ctx context.Context, key string, payload []byte) error {
	return errUnreachable
}

func TestLoadReturnsBackendErrors(t *testing.T) {
	s := New(brokenStorage{}, Options{SeedExampleData: true})

	_, _, err := s.Load(context.Background(), testNow)
	require.ErrorIs(t, err, errUnreachable)

	err = s.Save(context.Background(), state.NewDefault(testNow, false))
	require.ErrorIs(t, err, errUnreachable)
}

func TestDecodeExternalDocument(t *testing.T) {
	data, err := state.Encode(state.NewDefault(testNow, true))
	require.NoError(t, err)

	_, src, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, SourceCurrent, src)

	_, src, err = Decode([]byte(`{"day":{"isoDate":"2026-10-17"}}`))
	require.NoError(t, err)
	assert.Equal(t, SourceLegacy, src)

	_, _, err = Decode([]byte(`"hello"`))
	require.ErrorIs(t, err, ErrUnrecognizedDocument)
}

func TestOpenBackendModes(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{"memory", config.Config{StoreMode: config.StoreModeMemory}, config.StoreModeMemory},
		{"file", config.Config{StoreMode: config.StoreModeFile, StateDir: filepath.Join(dir, "state")}, config.StoreModeFile},
		{"sqlite", config.Config{StoreMode: config.StoreModeSQLite, SQLitePath: filepath.Join(dir, "tracker.db")}, config.StoreModeSQLite},
		{"auto falls back to file", config.Config{StoreMode: config.StoreModeAuto, StateDir: filepath.Join(dir, "auto")}, config.StoreModeFile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend, mode, err := OpenBackend(ctx, &tt.cfg, nil)
			require.NoError(t, err)
			defer backend.Close()
			assert.Equal(t, tt.want, mode)

			s := New(backend, Options{})
			require.NoError(t, s.Save(ctx, state.NewDefault(testNow, false)))
			_, src, err := s.Load(ctx, testNow)
			require.NoError(t, err)
			assert.Equal(t, SourceCurrent, src)
		})
	}
}

func TestOpenBackendErrors(t *testing.T) {
	ctx := context.Background()

	_, _, err := OpenBackend(ctx, &config.Config{StoreMode: config.StoreModePostgres}, nil)
	assert.Error(t, err)

	_, _, err = OpenBackend(ctx, &config.Config{StoreMode: config.StoreModeS3}, nil)
	assert.Error(t, err)
}
