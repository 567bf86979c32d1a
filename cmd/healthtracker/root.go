package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fdg312/health-tracker/internal/blob"
	"github.com/fdg312/health-tracker/internal/calendar"
	"github.com/fdg312/health-tracker/internal/config"
	"github.com/fdg312/health-tracker/internal/dbmigrate"
	"github.com/fdg312/health-tracker/internal/storage"
	"github.com/fdg312/health-tracker/internal/store"
	"github.com/fdg312/health-tracker/internal/tracker"
)

// deps — внешние зависимости команд; в тестах подменяются
type deps struct {
	loadConfig func() *config.Config
	clock      calendar.Clock // nil: системные часы в TRACKER_TIME_ZONE
}

func defaultDeps() deps {
	return deps{loadConfig: config.Load}
}

type rootFlags struct {
	storeMode string
	stateDir  string
	verbose   bool
}

func newRootCmd(d deps) *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:           "healthtracker",
		Short:         "healthtracker tracks meals, supplements, water and workouts",
		Long:          "healthtracker is a single-user, local-first tracker for daily nutrition, supplement adherence, hydration and weekly workouts.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.storeMode, "store", "", "Override STORE_MODE (memory|file|sqlite|postgres|s3|auto)")
	root.PersistentFlags().StringVar(&flags.stateDir, "state-dir", "", "Override STATE_DIR for the file store")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Print configuration and INFO logs to stderr")

	with := func(cmd *cobra.Command, run func(*app) error) error {
		a, err := openApp(cmd.Context(), cmd, d, flags)
		if err != nil {
			return err
		}
		defer a.Close()
		return run(a)
	}

	root.AddCommand(
		newStatusCmd(with),
		newMealCmd(with),
		newSupplementCmd(with),
		newWaterCmd(with),
		newPlanCmd(with),
		newSessionCmd(with),
		newHistoryCmd(with),
		newGoalsCmd(with),
		newReportCmd(with),
		newExportCmd(with),
		newImportCmd(with),
	)
	return root
}

type withApp func(cmd *cobra.Command, run func(*app) error) error

// app — всё, что нужно одной команде: конфигурация, открытое хранилище и трекер
type app struct {
	cfg     *config.Config
	clock   calendar.Clock
	logger  *leveledLogger
	backend storage.Storage
	blob    blob.Store
	tracker *tracker.Tracker
}

func openApp(ctx context.Context, cmd *cobra.Command, d deps, flags rootFlags) (*app, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := d.loadConfig()
	if flags.storeMode != "" {
		cfg.StoreMode = flags.storeMode
	}
	if flags.stateDir != "" {
		cfg.StateDir = flags.stateDir
	}

	logger := newLeveledLogger(cmd.ErrOrStderr(), flags.verbose || strings.EqualFold(cfg.LogLevel, "debug"))
	if flags.verbose {
		printStartupBanner(logger, cfg)
	}

	clock := d.clock
	if clock == nil {
		loc, err := calendar.LoadLocation(cfg.TimeZone)
		if err != nil {
			logger.Printf("WARNING: invalid TRACKER_TIME_ZONE=%q, using Local: %v", cfg.TimeZone, err)
		}
		clock = calendar.SystemClock{Location: loc}
	}

	if cfg.RunMigrationsOnStartup && cfg.EffectiveStoreMode() == config.StoreModePostgres {
		target, _, err := dbmigrate.SelectTarget(cfg, true)
		if err != nil {
			return nil, fmt.Errorf("startup migrations: %w", err)
		}
		logger.Printf("INFO startup migrations: command=up using=%s", target.Source)
		if err := dbmigrate.Run(ctx, "up", target); err != nil {
			return nil, fmt.Errorf("startup migrations failed: %w", err)
		}
	}

	backend, mode, err := store.OpenBackend(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, clock: clock, logger: logger, backend: backend}

	// Отчёты выгружаются в S3, если он настроен, независимо от режима хранилища
	if cfg.S3.IsConfigured() {
		bs, _, err := blob.NewBlobStore(ctx, cfg.S3, blob.ModeAuto, logger)
		if err != nil {
			logger.Printf("WARN reports: s3 unavailable: %v", err)
		}
		a.blob = bs
	}

	st := store.New(backend, store.Options{SeedExampleData: cfg.SeedExampleData, Logger: logger})
	tr, err := tracker.Open(ctx, st, tracker.Options{
		Clock:            clock,
		SeedExampleData:  cfg.SeedExampleData,
		WaterMaxMlPerAdd: cfg.WaterMaxMlPerAdd,
		Logger:           logger,
	})
	if err != nil {
		backend.Close()
		return nil, err
	}
	a.tracker = tr
	logger.Printf("INFO tracker: opened store=%s source=%s", mode, tr.Source())

	if cfg.GoalsFile != "" {
		if err := a.applyGoalsFile(ctx); err != nil {
			backend.Close()
			return nil, err
		}
	}
	return a, nil
}

func (a *app) applyGoalsFile(ctx context.Context) error {
	gf, err := config.LoadGoalsFile(a.cfg.GoalsFile)
	if err != nil {
		return err
	}
	current := a.tracker.Goals()
	merged := gf.Apply(current)
	if merged == current {
		return nil
	}
	a.logger.Printf("INFO config: goals_file=%s applied", a.cfg.GoalsFile)
	return a.tracker.SetGoals(ctx, merged)
}

func (a *app) Close() error {
	if a.tracker != nil {
		if err := a.tracker.Flush(context.Background()); err != nil {
			a.logger.Printf("ERROR tracker: flush_failed=%q", err.Error())
		}
	}
	return a.backend.Close()
}

// leveledLogger пишет строки "INFO ..." только в подробном режиме;
// WARN и ERROR печатаются всегда.
type leveledLogger struct {
	l       *log.Logger
	verbose bool
}

func newLeveledLogger(w io.Writer, verbose bool) *leveledLogger {
	return &leveledLogger{l: log.New(w, "", log.LstdFlags), verbose: verbose}
}

func (l *leveledLogger) Printf(format string, v ...any) {
	if !l.verbose && strings.HasPrefix(format, "INFO") {
		return
	}
	l.l.Printf(format, v...)
}
