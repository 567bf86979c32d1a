package state

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Документ первой версии: camelCase, без тренировочных шаблонов и истории.
type legacyRoot struct {
	Goals *legacyGoals `json:"goals"`
	Day   *legacyDay   `json:"day"`
	Week  *legacyWeek  `json:"week"`
}

type legacyGoals struct {
	Calories           *int `json:"calories"`
	Protein            *int `json:"protein"`
	Carbs              *int `json:"carbs"`
	Fat                *int `json:"fat"`
	HydrationMl        *int `json:"hydrationMl"`
	WeeklyWorkoutsGoal *int `json:"weeklyWorkoutsGoal"`
}

type legacyDay struct {
	IsoDate     string                     `json:"isoDate"`
	Supplements map[string]SupplementEntry `json:"supplements"`
	Meals       []legacyMeal               `json:"meals"`
	HydrationMl int                        `json:"hydrationMl"`
	WaterEvents []int                      `json:"waterEvents"`
}

type legacyMeal struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	When     string `json:"when"`
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
	Carbs    int    `json:"carbs"`
	Fat      int    `json:"fat"`
}

type legacyWeek struct {
	IsoWeekKey        string          `json:"isoWeekKey"`
	CompletedWorkouts []legacyWorkout `json:"completedWorkouts"`
}

type legacyWorkout struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Minutes int    `json:"minutes"`
	Date    string `json:"date"`
}

// DecodeLegacy принимает документ первой версии как есть и переводит его в
// текущую модель. Новые поля (шаблоны, сессия, история) остаются пустыми,
// отсутствующие цели берутся по умолчанию.
func DecodeLegacy(data []byte) (*Root, error) {
	var v1 legacyRoot
	if err := json.Unmarshal(data, &v1); err != nil {
		return nil, fmt.Errorf("%w: legacy: %v", ErrInvalidDocument, err)
	}
	if v1.Goals == nil && v1.Day == nil && v1.Week == nil {
		return nil, fmt.Errorf("%w: legacy: empty document", ErrInvalidDocument)
	}

	root := &Root{
		SchemaVersion: SchemaVersion,
		Goals:         v1.Goals.toGoals(),
		Fitness:       Fitness{Plans: []WorkoutPlan{}},
		History:       map[string]*HistoryEntry{},
	}
	if v1.Day != nil {
		root.Day = v1.Day.toDay()
	}
	if v1.Week != nil {
		root.Week = v1.Week.toWeek()
	}
	root.Normalize()
	return root, nil
}

func (g *legacyGoals) toGoals() Goals {
	out := DefaultGoals()
	if g == nil {
		return out
	}
	pick := func(dst *int, v *int) {
		if v != nil {
			*dst = *v
		}
	}
	pick(&out.Calories, g.Calories)
	pick(&out.ProteinG, g.Protein)
	pick(&out.CarbsG, g.Carbs)
	pick(&out.FatG, g.Fat)
	pick(&out.HydrationMl, g.HydrationMl)
	pick(&out.WeeklyWorkouts, g.WeeklyWorkoutsGoal)
	return ClampGoals(out)
}

func (d *legacyDay) toDay() *Day {
	day := NewDay(d.IsoDate)
	for name, entry := range d.Supplements {
		day.Supplements[name] = entry
	}
	for _, m := range d.Meals {
		id := m.ID
		if id == "" {
			id = uuid.NewString()
		}
		day.Meals = append(day.Meals, Meal{
			ID:       id,
			Name:     m.Name,
			Slot:     m.When,
			Calories: m.Calories,
			ProteinG: m.Protein,
			CarbsG:   m.Carbs,
			FatG:     m.Fat,
		})
	}

	day.WaterEvents, day.HydrationMl = waterLog(d.WaterEvents, d.HydrationMl)
	return day
}

func (w *legacyWeek) toWeek() *Week {
	week := NewWeek(w.IsoWeekKey)
	for _, cw := range w.CompletedWorkouts {
		id := cw.ID
		if id == "" {
			id = uuid.NewString()
		}
		week.CompletedWorkouts = append(week.CompletedWorkouts, CompletedWorkout{
			ID:          id,
			Name:        cw.Name,
			Minutes:     cw.Minutes,
			DisplayDate: cw.Date,
		})
	}
	return week
}
