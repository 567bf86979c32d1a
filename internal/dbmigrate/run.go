package dbmigrate

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// goose хранит диалект и базовую FS в глобальных переменных
var gooseMu sync.Mutex

// MigrationsDir returns the embedded migrations directory for a goose dialect.
func MigrationsDir(dialect string) (string, error) {
	switch dialect {
	case DialectPostgres:
		return "migrations/postgres", nil
	case DialectSQLite:
		return "migrations/sqlite", nil
	default:
		return "", fmt.Errorf("unsupported migration dialect %q", dialect)
	}
}

// Apply runs a goose command (up, down, status) against an open database
// using the embedded migrations for dialect.
func Apply(ctx context.Context, db *sql.DB, dialect, command string) error {
	dir, err := MigrationsDir(dialect)
	if err != nil {
		return err
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrationsFS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.RunContext(ctx, command, db, dir); err != nil {
		return fmt.Errorf("goose %s failed: %w", command, err)
	}
	return nil
}

// Run opens the target database (pgx stdlib driver for Postgres, modernc
// driver for SQLite) and applies command.
func Run(ctx context.Context, command string, target Target) error {
	if target.DSN == "" {
		return fmt.Errorf("database URL is empty")
	}

	driver := "pgx"
	if target.Dialect == DialectSQLite {
		driver = "sqlite"
	}

	db, err := sql.Open(driver, target.DSN)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	return Apply(ctx, db, target.Dialect, command)
}
