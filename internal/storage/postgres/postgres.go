package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fdg312/health-tracker/internal/storage"
)

// PostgresStorage — Postgres реализация Storage. Таблица state_blobs
// создаётся миграциями (cmd/migrate или RUN_MIGRATIONS_ON_STARTUP).
type PostgresStorage struct {
	pool *pgxpool.Pool
}

// New создаёт пул соединений и проверяет доступность базы
func New(ctx context.Context, databaseURL string) (*PostgresStorage, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &PostgresStorage{pool: pool}, nil
}

func (p *PostgresStorage) Get(ctx context.Context, key string) (*storage.BlobRow, error) {
	query := `
		SELECT key, payload, updated_at
		FROM state_blobs
		WHERE key = $1
	`

	var row storage.BlobRow
	err := p.pool.QueryRow(ctx, query, key).Scan(&row.Key, &row.Payload, &row.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select state blob: %w", err)
	}

	return &row, nil
}

func (p *PostgresStorage) Put(ctx context.Context, key string, payload []byte) error {
	query := `
		INSERT INTO state_blobs (key, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET
			payload = EXCLUDED.payload,
			updated_at = EXCLUDED.updated_at
	`

	if _, err := p.pool.Exec(ctx, query, key, payload); err != nil {
		return fmt.Errorf("upsert state blob: %w", err)
	}
	return nil
}

func (p *PostgresStorage) Delete(ctx context.Context, key string) error {
	if _, err := p.pool.Exec(ctx, `DELETE FROM state_blobs WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete state blob: %w", err)
	}
	return nil
}

// Close закрывает пул соединений
func (p *PostgresStorage) Close() error {
	p.pool.Close()
	return nil
}
