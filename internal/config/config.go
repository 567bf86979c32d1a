package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	StoreModeMemory   = "memory"
	StoreModeFile     = "file"
	StoreModeSQLite   = "sqlite"
	StoreModePostgres = "postgres"
	StoreModeS3       = "s3"
	StoreModeAuto     = "auto"
)

const appDirName = "health-tracker"

type S3Config struct {
	Endpoint          string
	Region            string
	Bucket            string
	AccessKeyID       string
	SecretAccessKey   string
	StatePrefix       string // префикс ключей документов состояния и отчётов
	PresignTTLSeconds int
}

func (c S3Config) MissingRequired() []string {
	missing := make([]string, 0, 5)
	if strings.TrimSpace(c.Endpoint) == "" {
		missing = append(missing, "S3_ENDPOINT")
	}
	if strings.TrimSpace(c.Region) == "" {
		missing = append(missing, "S3_REGION")
	}
	if strings.TrimSpace(c.Bucket) == "" {
		missing = append(missing, "S3_BUCKET")
	}
	if strings.TrimSpace(c.AccessKeyID) == "" {
		missing = append(missing, "S3_ACCESS_KEY_ID")
	}
	if strings.TrimSpace(c.SecretAccessKey) == "" {
		missing = append(missing, "S3_SECRET_ACCESS_KEY")
	}
	return missing
}

func (c S3Config) IsConfigured() bool {
	return len(c.MissingRequired()) == 0
}

func (c S3Config) Diagnostics() (level string, code string, msg string) {
	allEmpty := strings.TrimSpace(c.Endpoint) == "" &&
		strings.TrimSpace(c.Region) == "" &&
		strings.TrimSpace(c.Bucket) == "" &&
		strings.TrimSpace(c.AccessKeyID) == "" &&
		strings.TrimSpace(c.SecretAccessKey) == ""

	if allEmpty {
		return "INFO", "s3_not_configured", "not configured (all empty)"
	}

	missing := c.MissingRequired()
	if len(missing) > 0 {
		return "WARN", "s3_partial_config", fmt.Sprintf("partial config, missing=%v", missing)
	}

	return "INFO", "s3_ready", "ready"
}

// DiagnosticsSummary returns a detailed summary for logging (no secrets)
func (c S3Config) DiagnosticsSummary() string {
	return fmt.Sprintf("endpoint=%s region=%s bucket=%s state_prefix=%s presign_ttl=%ds access_key_id=%s secret_access_key=%s",
		nonEmptyOrDash(c.Endpoint),
		nonEmptyOrDash(c.Region),
		nonEmptyOrDash(c.Bucket),
		nonEmptyOrDash(c.StatePrefix),
		c.PresignTTLSeconds,
		setOrNot(c.AccessKeyID),
		setOrNot(c.SecretAccessKey),
	)
}

func nonEmptyOrDash(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "-"
	}
	return v
}

func setOrNot(v string) string {
	if strings.TrimSpace(v) == "" {
		return "not set"
	}
	return "set"
}

// Config содержит конфигурацию приложения
type Config struct {
	Env      string // local | staging | prod
	LogLevel string
	TimeZone string // IANA имя или "Local"

	// Хранилище документа состояния
	StoreMode  string // memory|file|sqlite|postgres|s3|auto
	StateDir   string
	SQLitePath string

	// Database
	DatabaseURL       string // runtime connection (resolved: pooled > url > direct)
	DatabaseURLRaw    string // DATABASE_URL as provided
	DatabaseURLPooled string // DATABASE_URL_POOLED as provided
	DatabaseURLDirect string // for migrations / DDL (may be empty)

	// Migrations
	RunMigrationsOnStartup bool

	// S3 (Yandex Object Storage или любой S3-совместимый)
	S3 S3Config

	// Трекер
	SeedExampleData    bool
	GoalsFile          string
	HistoryDefaultDays int
	WaterMaxMlPerAdd   int

	// Reports
	ReportsMaxDays int
}

// EffectiveStoreMode раскрывает auto: Postgres, если задан DATABASE_URL,
// иначе S3, если он настроен, иначе файл.
func (c *Config) EffectiveStoreMode() string {
	if c.StoreMode != StoreModeAuto {
		return c.StoreMode
	}
	if c.DatabaseURL != "" {
		return StoreModePostgres
	}
	if c.S3.IsConfigured() {
		return StoreModeS3
	}
	return StoreModeFile
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	// APP_ENV (fallback to ENV for backward compat, default: local)
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = os.Getenv("ENV")
	}
	if env == "" {
		env = "local"
	}

	// LOG_LEVEL (default: info)
	logLevel := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))
	if logLevel == "" {
		logLevel = "info"
	}

	// TRACKER_TIME_ZONE (default: Local)
	timeZone := strings.TrimSpace(os.Getenv("TRACKER_TIME_ZONE"))
	if timeZone == "" {
		timeZone = "Local"
	}

	// ---------- Database ----------
	// Priority: DATABASE_URL_POOLED > DATABASE_URL > DATABASE_URL_DIRECT
	dbPooled := strings.TrimSpace(os.Getenv("DATABASE_URL_POOLED"))
	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	dbDirect := strings.TrimSpace(os.Getenv("DATABASE_URL_DIRECT"))

	runtimeDB := dbPooled
	if runtimeDB == "" {
		runtimeDB = dbURL
	}
	if runtimeDB == "" {
		runtimeDB = dbDirect
	}

	// ---------- Store ----------
	storeMode := parseStoreMode("STORE_MODE", StoreModeAuto)

	baseDir := defaultDataDir()
	stateDir := strings.TrimSpace(os.Getenv("STATE_DIR"))
	if stateDir == "" {
		stateDir = baseDir
	}
	sqlitePath := strings.TrimSpace(os.Getenv("SQLITE_PATH"))
	if sqlitePath == "" {
		sqlitePath = filepath.Join(baseDir, "tracker.db")
	}

	// ---------- S3 ----------
	// S3_PRESIGN_TTL_SECONDS (default: 900, enforce > 0)
	s3PresignTTL := envInt("S3_PRESIGN_TTL_SECONDS", 900)
	if s3PresignTTL <= 0 {
		s3PresignTTL = 900
	}
	s3Prefix := strings.TrimSpace(os.Getenv("S3_STATE_PREFIX"))
	if s3Prefix == "" {
		s3Prefix = appDirName + "/"
	}
	if !strings.HasSuffix(s3Prefix, "/") {
		s3Prefix += "/"
	}

	s3Cfg := S3Config{
		Endpoint:          strings.TrimSpace(os.Getenv("S3_ENDPOINT")),
		Region:            strings.TrimSpace(os.Getenv("S3_REGION")),
		Bucket:            strings.TrimSpace(os.Getenv("S3_BUCKET")),
		AccessKeyID:       strings.TrimSpace(os.Getenv("S3_ACCESS_KEY_ID")),
		SecretAccessKey:   strings.TrimSpace(os.Getenv("S3_SECRET_ACCESS_KEY")),
		StatePrefix:       s3Prefix,
		PresignTTLSeconds: s3PresignTTL,
	}

	// ---------- Tracker ----------
	// HISTORY_DEFAULT_DAYS (default: 7, range 1..366)
	historyDays := envInt("HISTORY_DEFAULT_DAYS", 7)
	if historyDays < 1 || historyDays > 366 {
		log.Printf("WARNING: HISTORY_DEFAULT_DAYS=%d out of range, fallback to 7", historyDays)
		historyDays = 7
	}

	// WATER_MAX_ML_PER_ADD (default: 2000, enforce > 0)
	waterMax := envInt("WATER_MAX_ML_PER_ADD", 2000)
	if waterMax <= 0 {
		waterMax = 2000
	}

	// REPORTS_MAX_DAYS (default: 90)
	reportsMaxDays := envInt("REPORTS_MAX_DAYS", 90)
	if reportsMaxDays <= 0 {
		reportsMaxDays = 90
	}

	return &Config{
		Env:      env,
		LogLevel: logLevel,
		TimeZone: timeZone,

		StoreMode:  storeMode,
		StateDir:   stateDir,
		SQLitePath: sqlitePath,

		DatabaseURL:       runtimeDB,
		DatabaseURLRaw:    dbURL,
		DatabaseURLPooled: dbPooled,
		DatabaseURLDirect: dbDirect,

		RunMigrationsOnStartup: parseBoolEnv("RUN_MIGRATIONS_ON_STARTUP"),

		S3: s3Cfg,

		SeedExampleData:    envBool("SEED_EXAMPLE_DATA", true),
		GoalsFile:          strings.TrimSpace(os.Getenv("GOALS_FILE")),
		HistoryDefaultDays: historyDays,
		WaterMaxMlPerAdd:   waterMax,

		ReportsMaxDays: reportsMaxDays,
	}
}

// defaultDataDir возвращает каталог данных в пользовательском конфиг-каталоге
func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return "." + appDirName
	}
	return filepath.Join(dir, appDirName)
}

func parseStoreMode(key string, defaultVal string) string {
	mode := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if mode == "" {
		return defaultVal
	}
	switch mode {
	case StoreModeMemory, StoreModeFile, StoreModeSQLite, StoreModePostgres, StoreModeS3, StoreModeAuto:
		return mode
	default:
		log.Printf("WARNING: unknown %s=%q, fallback to %s", key, mode, defaultVal)
		return defaultVal
	}
}

// envInt reads an int env var with a default value.
func envInt(key string, defaultVal int) int {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

func parseBoolEnv(key string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	return v == "1" || v == "true" || v == "yes" || v == "on"
}

// envBool — как parseBoolEnv, но с явным значением по умолчанию для пустой переменной
func envBool(key string, defaultVal bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "":
		return defaultVal
	case "0", "false", "no", "off":
		return false
	default:
		return parseBoolEnv(key)
	}
}
