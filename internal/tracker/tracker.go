// Package tracker — контейнер состояния трекера. Каждая изменяющая операция
// меняет документ, пишет событие в журнал дня, обновляет снимок дня и
// сохраняет документ целиком.
package tracker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/fdg312/health-tracker/internal/calendar"
	"github.com/fdg312/health-tracker/internal/history"
	"github.com/fdg312/health-tracker/internal/rollover"
	"github.com/fdg312/health-tracker/internal/state"
	"github.com/fdg312/health-tracker/internal/store"
)

type Logger interface {
	Printf(format string, v ...any)
}

// Options — параметры Tracker
type Options struct {
	Clock            calendar.Clock
	SeedExampleData  bool
	WaterMaxMlPerAdd int
	Logger           Logger
}

// Tracker владеет документом состояния. Методы безопасны для вызова из
// нескольких горутин; несколько процессов-писателей не поддерживаются.
type Tracker struct {
	mu       sync.Mutex
	store    *store.Store
	clock    calendar.Clock
	seed     bool
	waterMax int
	logger   Logger

	root   *state.Root
	source store.Source
	dirty  bool // rollover в памяти, ещё не сохранён

	saveFailures rate.Sometimes
}

// Open загружает документ, переводит его на текущие день и неделю и
// сохраняет, если что-то изменилось или документ пришёл не из текущего ключа.
func Open(ctx context.Context, st *store.Store, opts Options) (*Tracker, error) {
	t := &Tracker{
		store:        st,
		clock:        opts.Clock,
		seed:         opts.SeedExampleData,
		waterMax:     opts.WaterMaxMlPerAdd,
		logger:       opts.Logger,
		saveFailures: rate.Sometimes{First: 3, Interval: time.Minute},
	}
	if t.clock == nil {
		t.clock = calendar.SystemClock{}
	}
	if t.waterMax <= 0 {
		t.waterMax = DefaultWaterMaxMlPerAdd
	}

	now := t.clock.Now()
	root, src, err := st.Load(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	t.root = root
	t.source = src

	res := rollover.Apply(root, now, rollover.Options{SeedExampleData: t.seed})
	if res.DayRolled && res.ArchivedDate != "" {
		t.logf("INFO tracker: day_rollover archived=%s today=%s", res.ArchivedDate, root.Day.DateKey)
	}
	if res.WeekRolled {
		t.logf("INFO tracker: week_rollover week=%s", root.Week.WeekKey)
	}

	if res.Changed() || src != store.SourceCurrent {
		if err := t.save(ctx); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Source reports where the document was loaded from.
func (t *Tracker) Source() store.Source {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.source
}

// now returns the current instant and rolls the document over if the day
// or week changed since the last call. Caller holds t.mu.
func (t *Tracker) now() time.Time {
	now := t.clock.Now()
	res := rollover.Apply(t.root, now, rollover.Options{SeedExampleData: t.seed})
	if res.Changed() {
		t.dirty = true
		if res.ArchivedDate != "" {
			t.logf("INFO tracker: day_rollover archived=%s today=%s", res.ArchivedDate, t.root.Day.DateKey)
		}
	}
	return now
}

// commit завершает изменяющую операцию: событие (если eventType не пуст),
// снимок дня (если touchesDay) и сохранение. Caller holds t.mu.
func (t *Tracker) commit(ctx context.Context, now time.Time, eventType string, data any, touchesDay bool) error {
	if eventType != "" {
		if _, err := history.LogEvent(t.root, now, eventType, data); err != nil {
			return err
		}
	}
	if touchesDay {
		history.RefreshSnapshot(t.root, t.root.Day)
	}
	return t.save(ctx)
}

func (t *Tracker) save(ctx context.Context) error {
	if err := t.store.Save(ctx, t.root); err != nil {
		t.saveFailures.Do(func() {
			t.logf("ERROR tracker: save_failed=%q", err.Error())
		})
		return fmt.Errorf("save state: %w", err)
	}
	t.dirty = false
	t.source = store.SourceCurrent
	return nil
}

// Flush сохраняет документ, если rollover изменил его после последнего сохранения.
func (t *Tracker) Flush(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.now()
	if !t.dirty {
		return nil
	}
	return t.save(ctx)
}

// SetGoals заменяет цели пользователя (значения приводятся к допустимым границам).
func (t *Tracker) SetGoals(ctx context.Context, goals state.Goals) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	t.root.Goals = state.ClampGoals(goals)
	return t.commit(ctx, now, "", nil, false)
}

// Import заменяет документ внешними данными (текущей или предыдущей версии),
// переводит его на текущий день и сохраняет.
func (t *Tracker) Import(ctx context.Context, data []byte) (store.Source, error) {
	root, src, err := store.Decode(data)
	if err != nil {
		return "", err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	rollover.Apply(root, now, rollover.Options{SeedExampleData: t.seed})
	t.root = root
	if err := t.save(ctx); err != nil {
		return "", err
	}
	t.logf("INFO tracker: imported source=%s", src)
	return src, nil
}

// Export returns the current document encoded as the persisted JSON.
func (t *Tracker) Export() ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.now()
	return state.Encode(t.root.Clone())
}

func (t *Tracker) logf(format string, v ...any) {
	if t.logger == nil {
		return
	}
	t.logger.Printf(format, v...)
}
