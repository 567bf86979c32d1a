package main

import (
	"strings"

	"github.com/fdg312/health-tracker/internal/config"
)

// printStartupBanner logs a one-time summary of the resolved configuration.
// No secrets are ever printed, only masked indicators ("set" / "not set").
func printStartupBanner(logger *leveledLogger, cfg *config.Config) {
	logger.Printf("INFO ========== Health Tracker ==========")
	logger.Printf("INFO   env              = %s", cfg.Env)
	logger.Printf("INFO   time_zone        = %s", cfg.TimeZone)
	logger.Printf("INFO   seed_examples    = %t", cfg.SeedExampleData)
	logger.Printf("INFO   goals_file       = %s", nonEmptyOrDash(cfg.GoalsFile))

	logger.Printf("INFO ---- store ----")
	logger.Printf("INFO   store_mode       = %s (effective=%s)", cfg.StoreMode, cfg.EffectiveStoreMode())
	switch cfg.EffectiveStoreMode() {
	case config.StoreModeFile:
		logger.Printf("INFO   state_dir        = %s", cfg.StateDir)
	case config.StoreModeSQLite:
		logger.Printf("INFO   sqlite_path      = %s", cfg.SQLitePath)
	case config.StoreModePostgres:
		logger.Printf("INFO   runtime_url      = %s", describeDBURL(cfg.DatabaseURL, cfg.DatabaseURLPooled))
		logger.Printf("INFO   direct           = %s", setOrNot(cfg.DatabaseURLDirect))
		logger.Printf("INFO   migrations_on_startup = %t", cfg.RunMigrationsOnStartup)
	}

	logger.Printf("INFO ---- s3 ----")
	logger.Printf("INFO   s3: %s", cfg.S3.DiagnosticsSummary())

	logger.Printf("INFO ---- limits ----")
	logger.Printf("INFO   history_default_days = %d", cfg.HistoryDefaultDays)
	logger.Printf("INFO   water_max_ml_per_add = %d", cfg.WaterMaxMlPerAdd)
	logger.Printf("INFO   reports_max_days     = %d", cfg.ReportsMaxDays)
	logger.Printf("INFO ====================================")
}

func setOrNot(v string) string {
	if strings.TrimSpace(v) == "" {
		return "not set"
	}
	return "set"
}

func nonEmptyOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func describeDBURL(runtime, pooled string) string {
	if runtime == "" {
		return "not set"
	}
	if pooled != "" && runtime == pooled {
		return "set (via DATABASE_URL_POOLED)"
	}
	return "set"
}
