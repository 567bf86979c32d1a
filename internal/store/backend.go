package store

import (
	"context"
	"fmt"

	"github.com/fdg312/health-tracker/internal/blob"
	"github.com/fdg312/health-tracker/internal/config"
	"github.com/fdg312/health-tracker/internal/storage"
	"github.com/fdg312/health-tracker/internal/storage/file"
	"github.com/fdg312/health-tracker/internal/storage/memory"
	"github.com/fdg312/health-tracker/internal/storage/postgres"
	"github.com/fdg312/health-tracker/internal/storage/sqlite"
)

// OpenBackend открывает хранилище по STORE_MODE (auto раскрывается через
// Config.EffectiveStoreMode) и возвращает его вместе с выбранным режимом.
func OpenBackend(ctx context.Context, cfg *config.Config, logger Logger) (storage.Storage, string, error) {
	mode := cfg.EffectiveStoreMode()
	logf := func(format string, v ...any) {
		if logger != nil {
			logger.Printf(format, v...)
		}
	}

	switch mode {
	case config.StoreModeMemory:
		logf("INFO store: backend=memory (state is lost on exit)")
		return memory.New(), mode, nil

	case config.StoreModeFile:
		fs, err := file.New(cfg.StateDir)
		if err != nil {
			return nil, "", err
		}
		logf("INFO store: backend=file dir=%s", cfg.StateDir)
		return fs, mode, nil

	case config.StoreModeSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, "", err
		}
		logf("INFO store: backend=sqlite path=%s", cfg.SQLitePath)
		return db, mode, nil

	case config.StoreModePostgres:
		if cfg.DatabaseURL == "" {
			return nil, "", fmt.Errorf("STORE_MODE=postgres but no DATABASE_URL configured")
		}
		pg, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, "", err
		}
		logf("INFO store: backend=postgres")
		return pg, mode, nil

	case config.StoreModeS3:
		bs, _, err := blob.NewBlobStore(ctx, cfg.S3, blob.ModeS3, logger)
		if err != nil {
			return nil, "", err
		}
		logf("INFO store: backend=s3 prefix=%s", cfg.S3.StatePrefix)
		return blob.NewStateStorage(bs, cfg.S3.StatePrefix), mode, nil

	default:
		return nil, "", fmt.Errorf("unsupported store mode: %s", mode)
	}
}
