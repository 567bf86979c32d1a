package dbmigrate

import (
	"fmt"

	"github.com/fdg312/health-tracker/internal/config"
)

// Target — база, к которой применяются миграции
type Target struct {
	Dialect string // postgres | sqlite3
	DSN     string // URL Postgres или путь к файлу SQLite
	Source  string // имя переменной окружения, из которой взят DSN
}

// SelectTarget выбирает базу для миграций. При STORE_MODE=sqlite это файл
// SQLITE_PATH, иначе Postgres в порядке DIRECT > DATABASE_URL > POOLED
// (последний с предупреждением). requireDirect разрешает только
// DATABASE_URL_DIRECT для Postgres.
func SelectTarget(cfg *config.Config, requireDirect bool) (Target, string, error) {
	if cfg.StoreMode == config.StoreModeSQLite {
		if cfg.SQLitePath == "" {
			return Target{}, "", fmt.Errorf("SQLITE_PATH is empty")
		}
		return Target{Dialect: DialectSQLite, DSN: cfg.SQLitePath, Source: "SQLITE_PATH"}, "", nil
	}

	dbURL, source, warning, err := selectDatabaseURL(cfg, requireDirect)
	if err != nil {
		return Target{}, "", err
	}
	return Target{Dialect: DialectPostgres, DSN: dbURL, Source: source}, warning, nil
}

func selectDatabaseURL(cfg *config.Config, requireDirect bool) (dbURL string, source string, warning string, err error) {
	if requireDirect {
		if cfg.DatabaseURLDirect == "" {
			return "", "", "", fmt.Errorf("DATABASE_URL_DIRECT is required for DDL/migrations")
		}
		return cfg.DatabaseURLDirect, "DATABASE_URL_DIRECT", "", nil
	}

	switch {
	case cfg.DatabaseURLDirect != "":
		return cfg.DatabaseURLDirect, "DATABASE_URL_DIRECT", "", nil
	case cfg.DatabaseURLRaw != "":
		return cfg.DatabaseURLRaw, "DATABASE_URL", "", nil
	case cfg.DatabaseURLPooled != "":
		return cfg.DatabaseURLPooled, "DATABASE_URL_POOLED", "using pooled connection for DDL is not recommended; set DATABASE_URL_DIRECT", nil
	}

	return "", "", "", fmt.Errorf("no database URL configured (set DATABASE_URL_DIRECT or DATABASE_URL)")
}
