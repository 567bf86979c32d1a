package tracker

import (
	"context"

	"github.com/fdg312/health-tracker/internal/state"
)

// AddWater добавляет порцию воды. ml <= 0 ничего не делает; порция
// ограничена WaterMaxMlPerAdd.
func (t *Tracker) AddWater(ctx context.Context, ml int) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if ml <= 0 {
		return false, nil
	}
	if ml > t.waterMax {
		ml = t.waterMax
	}
	day := t.root.Day
	day.WaterEvents = append(day.WaterEvents, ml)
	day.HydrationMl += ml

	return true, t.commit(ctx, now, state.EventWaterAdd, waterEventData{Ml: ml, Total: day.HydrationMl}, true)
}

// UndoLastWater отменяет последнюю порцию воды; false, если порций нет.
func (t *Tracker) UndoLastWater(ctx context.Context) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	day := t.root.Day
	n := len(day.WaterEvents)
	if n == 0 {
		return false, nil
	}
	last := day.WaterEvents[n-1]
	day.WaterEvents = day.WaterEvents[:n-1]
	day.HydrationMl -= last
	if day.HydrationMl < 0 {
		day.HydrationMl = 0
	}

	return true, t.commit(ctx, now, state.EventWaterUndo, waterEventData{Ml: last, Total: day.HydrationMl}, true)
}
