// Package rollover переводит документ на текущие день и ISO-неделю.
package rollover

import (
	"time"

	"github.com/fdg312/health-tracker/internal/calendar"
	"github.com/fdg312/health-tracker/internal/history"
	"github.com/fdg312/health-tracker/internal/state"
)

// Result — что изменил Apply
type Result struct {
	DayRolled    bool
	WeekRolled   bool
	ArchivedDate string // дата уходящего дня, чей снимок записан в историю
}

// Changed reports whether Apply modified the document.
func (r Result) Changed() bool {
	return r.DayRolled || r.WeekRolled
}

// Options — параметры Apply
type Options struct {
	// SeedExampleData: при отсутствии прежнего дня новый день получает
	// примерный список добавок
	SeedExampleData bool
}

// Apply закрывает устаревшие день и неделю. Уходящий день архивируется
// снимком в History (события сохраняются), новый день получает те же
// добавки с taken=false. Завершённые тренировки прошлой недели не
// архивируются. Повторный вызов в тот же день ничего не меняет.
func Apply(root *state.Root, now time.Time, opts Options) Result {
	var res Result
	today := calendar.DateKey(now)
	weekKey := calendar.WeekKey(now)

	if root.Day == nil || root.Day.DateKey != today {
		fresh := state.NewDay(today)
		switch {
		case root.Day != nil:
			if root.Day.DateKey != "" {
				history.RefreshSnapshot(root, root.Day)
				res.ArchivedDate = root.Day.DateKey
			}
			fresh.Supplements = state.ResetSupplements(root.Day.Supplements)
		case opts.SeedExampleData:
			fresh.Supplements = state.ResetSupplements(state.ExampleSupplements())
		}
		root.Day = fresh
		res.DayRolled = true
	}

	if root.Week == nil || root.Week.WeekKey != weekKey {
		root.Week = state.NewWeek(weekKey)
		res.WeekRolled = true
	}

	return res
}
