// Package sqlite — реализация Storage поверх локального файла SQLite
// (драйвер modernc.org/sqlite, без cgo). Схема создаётся миграциями goose.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/fdg312/health-tracker/internal/dbmigrate"
	"github.com/fdg312/health-tracker/internal/storage"
)

// SQLiteStorage — SQLite реализация Storage
type SQLiteStorage struct {
	db *sql.DB
}

// Open открывает (или создаёт) базу по пути path и применяет миграции.
func Open(ctx context.Context, path string) (*SQLiteStorage, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is empty")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("create sqlite directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}
	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	if err := dbmigrate.Apply(ctx, db, dbmigrate.DialectSQLite, "up"); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStorage{db: db}, nil
}

func (s *SQLiteStorage) Get(ctx context.Context, key string) (*storage.BlobRow, error) {
	query := `SELECT payload, updated_at FROM state_blobs WHERE key = ?`

	var (
		payload   []byte
		updatedMs int64
	)
	err := s.db.QueryRowContext(ctx, query, key).Scan(&payload, &updatedMs)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select state blob: %w", err)
	}

	return &storage.BlobRow{
		Key:       key,
		Payload:   payload,
		UpdatedAt: time.UnixMilli(updatedMs),
	}, nil
}

func (s *SQLiteStorage) Put(ctx context.Context, key string, payload []byte) error {
	query := `
		INSERT INTO state_blobs (key, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`

	if _, err := s.db.ExecContext(ctx, query, key, string(payload), time.Now().UnixMilli()); err != nil {
		return fmt.Errorf("upsert state blob: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM state_blobs WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete state blob: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
