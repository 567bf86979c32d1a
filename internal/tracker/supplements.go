package tracker

import (
	"context"
	"strings"

	"github.com/fdg312/health-tracker/internal/state"
)

// AddSupplement добавляет или перезаписывает добавку (taken=false).
// Пустое имя ничего не делает.
func (t *Tracker) AddSupplement(ctx context.Context, name, dose string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	name = strings.TrimSpace(name)
	if name == "" {
		return false, nil
	}
	dose = strings.TrimSpace(dose)
	t.root.Day.Supplements[name] = state.SupplementEntry{Dose: dose, Taken: false}

	return true, t.commit(ctx, now, state.EventSupplementAdd, supplementEventData{Name: name, Dose: dose}, true)
}

// ToggleSupplement переключает отметку о приёме добавки.
func (t *Tracker) ToggleSupplement(ctx context.Context, name string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	entry, ok := t.root.Day.Supplements[name]
	if !ok {
		return false, nil
	}
	entry.Taken = !entry.Taken
	t.root.Day.Supplements[name] = entry

	eventType := state.EventSupplementUntake
	if entry.Taken {
		eventType = state.EventSupplementTaken
	}
	return true, t.commit(ctx, now, eventType, supplementEventData{Name: name}, true)
}

// RemoveSupplement удаляет добавку из списка дня.
func (t *Tracker) RemoveSupplement(ctx context.Context, name string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	entry, ok := t.root.Day.Supplements[name]
	if !ok {
		return false, nil
	}
	delete(t.root.Day.Supplements, name)

	return true, t.commit(ctx, now, state.EventSupplementRemove, supplementEventData{Name: name, Dose: entry.Dose}, true)
}

// ResetSupplements снимает отметку о приёме со всех добавок.
func (t *Tracker) ResetSupplements(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	t.root.Day.Supplements = state.ResetSupplements(t.root.Day.Supplements)

	data := supplementResetData{Count: len(t.root.Day.Supplements)}
	return t.commit(ctx, now, state.EventSupplementReset, data, true)
}
