package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound возвращается, когда по ключу ничего не сохранено
var ErrNotFound = errors.New("state blob not found")

// BlobRow — сохранённый документ с метаданными
type BlobRow struct {
	Key       string
	Payload   []byte
	UpdatedAt time.Time
}

// Storage — хранилище документов состояния по ключу.
// Запись заменяет документ целиком; чтение сразу после успешной записи
// возвращает записанное значение.
type Storage interface {
	// Get возвращает документ по ключу или ErrNotFound
	Get(ctx context.Context, key string) (*BlobRow, error)

	// Put сохраняет документ (upsert по ключу)
	Put(ctx context.Context, key string, payload []byte) error

	// Delete удаляет документ; отсутствие ключа не считается ошибкой
	Delete(ctx context.Context, key string) error

	// Close освобождает ресурсы (пул соединений, файл БД)
	Close() error
}
