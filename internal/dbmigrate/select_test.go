package dbmigrate

import (
	"testing"

	"github.com/fdg312/health-tracker/internal/config"
)

func TestSelectTarget_Priority(t *testing.T) {
	cfg := &config.Config{
		StoreMode:         config.StoreModePostgres,
		DatabaseURLDirect: "postgres://direct",
		DatabaseURLRaw:    "postgres://url",
		DatabaseURLPooled: "postgres://pooled",
	}

	target, warning, err := SelectTarget(cfg, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if target.DSN != "postgres://direct" || target.Source != "DATABASE_URL_DIRECT" {
		t.Fatalf("expected direct URL, got dsn=%q source=%q", target.DSN, target.Source)
	}
	if target.Dialect != DialectPostgres {
		t.Fatalf("expected postgres dialect, got %q", target.Dialect)
	}
	if warning != "" {
		t.Fatalf("unexpected warning: %q", warning)
	}
}

func TestSelectTarget_FallbackToDatabaseURL(t *testing.T) {
	cfg := &config.Config{
		DatabaseURLRaw:    "postgres://url",
		DatabaseURLPooled: "postgres://pooled",
	}

	target, warning, err := SelectTarget(cfg, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if target.DSN != "postgres://url" || target.Source != "DATABASE_URL" {
		t.Fatalf("expected DATABASE_URL, got dsn=%q source=%q", target.DSN, target.Source)
	}
	if warning != "" {
		t.Fatalf("unexpected warning: %q", warning)
	}
}

func TestSelectTarget_PooledWarning(t *testing.T) {
	cfg := &config.Config{
		DatabaseURLPooled: "postgres://pooled",
	}

	target, warning, err := SelectTarget(cfg, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if target.DSN != "postgres://pooled" || target.Source != "DATABASE_URL_POOLED" {
		t.Fatalf("expected pooled URL, got dsn=%q source=%q", target.DSN, target.Source)
	}
	if warning == "" {
		t.Fatal("expected warning for pooled DDL usage")
	}
}

func TestSelectTarget_RequireDirect(t *testing.T) {
	cfg := &config.Config{
		DatabaseURLRaw:    "postgres://url",
		DatabaseURLPooled: "postgres://pooled",
	}

	if _, _, err := SelectTarget(cfg, true); err == nil {
		t.Fatal("expected error when direct is required but missing")
	}
}

func TestSelectTarget_SQLite(t *testing.T) {
	cfg := &config.Config{
		StoreMode:      config.StoreModeSQLite,
		SQLitePath:     "/tmp/tracker.db",
		DatabaseURLRaw: "postgres://url",
	}

	target, _, err := SelectTarget(cfg, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if target.Dialect != DialectSQLite || target.DSN != "/tmp/tracker.db" {
		t.Fatalf("expected sqlite target, got %+v", target)
	}
}

func TestMigrationsDirUnknownDialect(t *testing.T) {
	if _, err := MigrationsDir("mysql"); err == nil {
		t.Fatal("expected error for unknown dialect")
	}
}
