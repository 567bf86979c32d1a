package tracker

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/fdg312/health-tracker/internal/state"
)

// AddMeal добавляет приём пищи в текущий день. Пустой слот заменяется на "Lunch".
func (t *Tracker) AddMeal(ctx context.Context, in MealInput) (state.Meal, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	slot := strings.TrimSpace(in.Slot)
	if slot == "" {
		slot = DefaultMealSlot
	}
	meal := state.Meal{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(in.Name),
		Slot:     slot,
		Calories: state.Clamp(in.Calories, 0, MaxMealCalories),
		ProteinG: state.Clamp(in.ProteinG, 0, MaxMealProteinG),
		CarbsG:   state.Clamp(in.CarbsG, 0, MaxMealCarbsG),
		FatG:     state.Clamp(in.FatG, 0, MaxMealFatG),
	}
	t.root.Day.Meals = append(t.root.Day.Meals, meal)

	return meal, t.commit(ctx, now, state.EventMealAdd, meal, true)
}

// RemoveMeal удаляет приём пищи по id; false, если такого нет.
func (t *Tracker) RemoveMeal(ctx context.Context, id string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	meals := t.root.Day.Meals
	idx := -1
	for i, m := range meals {
		if m.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}

	removed := meals[idx]
	t.root.Day.Meals = append(meals[:idx:idx], meals[idx+1:]...)

	return true, t.commit(ctx, now, state.EventMealRemove, removed, true)
}
