// Package state описывает сохраняемую модель трекера: цели, текущий день,
// текущую неделю, тренировки и историю по дням.
package state

import (
	"encoding/json"
	"time"
)

// SchemaVersion — текущая версия сохраняемого документа
const SchemaVersion = 2

// Типы событий журнала
const (
	EventMealAdd          = "meal:add"
	EventMealRemove       = "meal:remove"
	EventSupplementAdd    = "supplement:add"
	EventSupplementTaken  = "supplement:taken"
	EventSupplementUntake = "supplement:untaken"
	EventSupplementRemove = "supplement:remove"
	EventSupplementReset  = "supplement:reset"
	EventWaterAdd         = "water:add"
	EventWaterUndo        = "water:undo"
	EventWorkoutFinish    = "workout:finish"
)

// Goals — целевые значения пользователя
type Goals struct {
	Calories       int `json:"calories"`
	ProteinG       int `json:"protein_g"`
	CarbsG         int `json:"carbs_g"`
	FatG           int `json:"fat_g"`
	HydrationMl    int `json:"hydration_ml"`
	WeeklyWorkouts int `json:"weekly_workouts"`
}

// Meal — приём пищи текущего дня
type Meal struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slot     string `json:"slot"` // Breakfast, Lunch, Dinner, Snack или произвольная строка
	Calories int    `json:"calories"`
	ProteinG int    `json:"protein_g"`
	CarbsG   int    `json:"carbs_g"`
	FatG     int    `json:"fat_g"`
}

// SupplementEntry — добавка в списке дня (ключ карты — название)
type SupplementEntry struct {
	Dose  string `json:"dose"`
	Taken bool   `json:"taken"`
}

// Day — единственная изменяемая запись о текущем дне.
// HydrationMl всегда равен сумме WaterEvents.
type Day struct {
	DateKey     string                     `json:"date_key"`
	Supplements map[string]SupplementEntry `json:"supplements"`
	Meals       []Meal                     `json:"meals"`
	HydrationMl int                        `json:"hydration_ml"`
	WaterEvents []int                      `json:"water_events"`
}

// CompletedWorkout — завершённая тренировка текущей недели
type CompletedWorkout struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Minutes     int    `json:"minutes"`
	DisplayDate string `json:"display_date"` // DD.MM.YYYY
}

// Week — единственная запись о текущей ISO-неделе
type Week struct {
	WeekKey           string             `json:"week_key"`
	CompletedWorkouts []CompletedWorkout `json:"completed_workouts"`
}

// PlanExercise — упражнение шаблона тренировки
type PlanExercise struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	TargetSets int    `json:"target_sets"`
	TargetReps int    `json:"target_reps"`
}

// WorkoutPlan — пользовательский шаблон тренировки
type WorkoutPlan struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Exercises []PlanExercise `json:"exercises"`
}

// SessionExercise — упражнение активной сессии с прогрессом
type SessionExercise struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TargetSets    int     `json:"target_sets"`
	TargetReps    int     `json:"target_reps"`
	SetsCompleted int     `json:"sets_completed"`
	AvgReps       int     `json:"avg_reps"`
	Weight        float64 `json:"weight"`
}

// ActiveSession — тренировка в процессе, созданная из шаблона
type ActiveSession struct {
	ID        string            `json:"id"`
	PlanID    string            `json:"plan_id"`
	Name      string            `json:"name"`
	StartedAt time.Time         `json:"started_at"`
	Exercises []SessionExercise `json:"exercises"`
}

// Fitness — шаблоны и активная сессия (nil, если сессии нет)
type Fitness struct {
	Plans         []WorkoutPlan  `json:"plans"`
	ActiveSession *ActiveSession `json:"active_session"`
}

// Totals — сумма нутриентов за день
type Totals struct {
	Calories int `json:"calories"`
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
}

// Event — неизменяемая запись о действии пользователя
type Event struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// DaySnapshot — денормализованная сводка дня, читается без пересчёта
type DaySnapshot struct {
	DateKey          string                     `json:"date_key"`
	Meals            []Meal                     `json:"meals"`
	Supplements      map[string]SupplementEntry `json:"supplements"`
	WaterEvents      []int                      `json:"water_events"`
	HydrationMl      int                        `json:"hydration_ml"`
	Totals           Totals                     `json:"totals"`
	SupplementsTaken int                        `json:"supplements_taken"`
}

// HistoryEntry — события и снимок за одну дату. Записи истории никогда не удаляются.
type HistoryEntry struct {
	Events   []Event      `json:"events"`
	Snapshot *DaySnapshot `json:"snapshot,omitempty"`
}

// Root — весь сохраняемый документ
type Root struct {
	SchemaVersion int                      `json:"schema_version"`
	Goals         Goals                    `json:"goals"`
	Day           *Day                     `json:"day"`
	Week          *Week                    `json:"week"`
	Fitness       Fitness                  `json:"fitness"`
	History       map[string]*HistoryEntry `json:"history"`
}

// NewDay returns an empty Day for dateKey.
func NewDay(dateKey string) *Day {
	return &Day{
		DateKey:     dateKey,
		Supplements: map[string]SupplementEntry{},
		Meals:       []Meal{},
		WaterEvents: []int{},
	}
}

// NewWeek returns a Week with no completed workouts.
func NewWeek(weekKey string) *Week {
	return &Week{
		WeekKey:           weekKey,
		CompletedWorkouts: []CompletedWorkout{},
	}
}

// Normalize replaces nil collections with empty ones so the document always
// encodes arrays and objects instead of null.
func (r *Root) Normalize() {
	if r.History == nil {
		r.History = map[string]*HistoryEntry{}
	}
	for key, entry := range r.History {
		if entry == nil {
			r.History[key] = &HistoryEntry{Events: []Event{}}
			continue
		}
		if entry.Events == nil {
			entry.Events = []Event{}
		}
	}
	if r.Fitness.Plans == nil {
		r.Fitness.Plans = []WorkoutPlan{}
	}
	for i := range r.Fitness.Plans {
		if r.Fitness.Plans[i].Exercises == nil {
			r.Fitness.Plans[i].Exercises = []PlanExercise{}
		}
	}
	if s := r.Fitness.ActiveSession; s != nil && s.Exercises == nil {
		s.Exercises = []SessionExercise{}
	}
	if d := r.Day; d != nil {
		if d.Supplements == nil {
			d.Supplements = map[string]SupplementEntry{}
		}
		if d.Meals == nil {
			d.Meals = []Meal{}
		}
		if d.WaterEvents == nil {
			d.WaterEvents = []int{}
		}
	}
	if w := r.Week; w != nil && w.CompletedWorkouts == nil {
		w.CompletedWorkouts = []CompletedWorkout{}
	}
}

// waterLog restores hydration == sum(water_events): non-positive portions are
// dropped, a total without any events becomes a single portion.
func waterLog(events []int, total int) ([]int, int) {
	kept := make([]int, 0, len(events))
	sum := 0
	for _, ml := range events {
		if ml > 0 {
			kept = append(kept, ml)
			sum += ml
		}
	}
	if len(kept) == 0 && total > 0 {
		return []int{total}, total
	}
	return kept, sum
}

// Entry returns the history entry for dateKey, creating it when missing.
func (r *Root) Entry(dateKey string) *HistoryEntry {
	if r.History == nil {
		r.History = map[string]*HistoryEntry{}
	}
	entry, ok := r.History[dateKey]
	if !ok || entry == nil {
		entry = &HistoryEntry{Events: []Event{}}
		r.History[dateKey] = entry
	}
	return entry
}
