// Package store загружает и сохраняет документ состояния целиком поверх
// storage.Storage: текущая версия, затем предыдущая, затем документ по умолчанию.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fdg312/health-tracker/internal/state"
	"github.com/fdg312/health-tracker/internal/storage"
)

const (
	CurrentKey = "health-tracker-state-v2"
	LegacyKey  = "health-tracker-state-v1"
)

// Source — откуда взят загруженный документ
type Source string

const (
	SourceCurrent Source = "current"
	SourceLegacy  Source = "legacy"
	SourceDefault Source = "default"
)

// ErrUnrecognizedDocument возвращается Import, если данные не являются
// документом ни текущей, ни предыдущей версии.
var ErrUnrecognizedDocument = errors.New("unrecognized state document")

type Logger interface {
	Printf(format string, v ...any)
}

// Options — параметры Store
type Options struct {
	// SeedExampleData заполняет документ по умолчанию примерами
	SeedExampleData bool
	Logger          Logger
}

// Store — версионированное хранилище документа состояния
type Store struct {
	backend storage.Storage
	seed    bool
	logger  Logger
}

// New создаёт Store поверх backend
func New(backend storage.Storage, opts Options) *Store {
	return &Store{
		backend: backend,
		seed:    opts.SeedExampleData,
		logger:  opts.Logger,
	}
}

// Backend returns the underlying storage.
func (s *Store) Backend() storage.Storage {
	return s.backend
}

// Load читает документ текущей версии; если его нет или он не разбирается,
// читает и мигрирует документ предыдущей версии; иначе строит документ по
// умолчанию. Ошибки разбора только логируются. Ошибки чтения из хранилища
// возвращаются: отсутствие документа нельзя отличить от недоступной базы,
// а сохранённый поверх документ по умолчанию затёр бы данные.
func (s *Store) Load(ctx context.Context, now time.Time) (*state.Root, Source, error) {
	root, err := s.loadKey(ctx, CurrentKey, state.Decode)
	if err != nil {
		return nil, "", err
	}
	if root != nil {
		s.logf("INFO store: source=%s key=%s", SourceCurrent, CurrentKey)
		return root, SourceCurrent, nil
	}

	root, err = s.loadKey(ctx, LegacyKey, state.DecodeLegacy)
	if err != nil {
		return nil, "", err
	}
	if root != nil {
		s.logf("INFO store: source=%s key=%s", SourceLegacy, LegacyKey)
		return root, SourceLegacy, nil
	}

	s.logf("INFO store: source=%s seed=%t", SourceDefault, s.seed)
	return state.NewDefault(now, s.seed), SourceDefault, nil
}

// loadKey returns (nil, nil) when the key is absent or fails to decode.
func (s *Store) loadKey(ctx context.Context, key string, decode func([]byte) (*state.Root, error)) (*state.Root, error) {
	row, err := s.backend.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}

	root, err := decode(row.Payload)
	if err != nil {
		s.logf("WARN store: key=%s decode_failed=%q", key, err.Error())
		return nil, nil
	}
	return root, nil
}

// Save записывает документ целиком под текущим ключом
func (s *Store) Save(ctx context.Context, root *state.Root) error {
	data, err := state.Encode(root)
	if err != nil {
		return err
	}
	if err := s.backend.Put(ctx, CurrentKey, data); err != nil {
		return fmt.Errorf("write %s: %w", CurrentKey, err)
	}
	return nil
}

// Decode разбирает внешний документ тем же путём, что и Load, но без
// документа по умолчанию: неизвестные данные дают ErrUnrecognizedDocument.
func Decode(data []byte) (*state.Root, Source, error) {
	if root, err := state.Decode(data); err == nil {
		return root, SourceCurrent, nil
	}
	if root, err := state.DecodeLegacy(data); err == nil {
		return root, SourceLegacy, nil
	}
	return nil, "", ErrUnrecognizedDocument
}

func (s *Store) logf(format string, v ...any) {
	if s.logger == nil {
		return
	}
	s.logger.Printf(format, v...)
}
