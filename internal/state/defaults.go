package state

import (
	"time"

	"github.com/google/uuid"

	"github.com/fdg312/health-tracker/internal/calendar"
)

// DefaultGoals — цели по умолчанию для новой установки
func DefaultGoals() Goals {
	return Goals{
		Calories:       2000,
		ProteinG:       150,
		CarbsG:         200,
		FatG:           65,
		HydrationMl:    2500,
		WeeklyWorkouts: 4,
	}
}

// ExampleSupplements — добавки, с которыми стартует новая установка
func ExampleSupplements() map[string]SupplementEntry {
	return map[string]SupplementEntry{
		"Vitamin D3": {Dose: "2000 IU", Taken: false},
		"Omega-3":    {Dose: "1000mg", Taken: false},
		"Magnesium":  {Dose: "400mg", Taken: false},
	}
}

// ExamplePlans returns two starter workout templates.
func ExamplePlans() []WorkoutPlan {
	mk := func(name string, sets, reps int) PlanExercise {
		return PlanExercise{ID: uuid.NewString(), Name: name, TargetSets: sets, TargetReps: reps}
	}
	return []WorkoutPlan{
		{
			ID:   uuid.NewString(),
			Name: "Push Day",
			Exercises: []PlanExercise{
				mk("Bench Press", 4, 8),
				mk("Overhead Press", 3, 10),
				mk("Triceps Dips", 3, 12),
			},
		},
		{
			ID:   uuid.NewString(),
			Name: "Pull Day",
			Exercises: []PlanExercise{
				mk("Deadlift", 3, 5),
				mk("Pull-ups", 4, 8),
				mk("Barbell Row", 3, 10),
			},
		},
	}
}

// NewDefault строит документ для новой установки. При seed=true
// документ заполняется примерами (приёмы пищи, вода, тренировки недели),
// иначе день и неделя пустые.
func NewDefault(now time.Time, seed bool) *Root {
	today := calendar.DateKey(now)
	root := &Root{
		SchemaVersion: SchemaVersion,
		Goals:         DefaultGoals(),
		Day:           NewDay(today),
		Week:          NewWeek(calendar.WeekKey(now)),
		Fitness:       Fitness{Plans: []WorkoutPlan{}},
		History:       map[string]*HistoryEntry{},
	}
	if !seed {
		return root
	}

	root.Day.Supplements = ExampleSupplements()
	root.Day.Meals = []Meal{
		{ID: uuid.NewString(), Name: "Oatmeal with Berries", Slot: "Breakfast", Calories: 300, ProteinG: 10, CarbsG: 55, FatG: 5},
		{ID: uuid.NewString(), Name: "Grilled Chicken Salad", Slot: "Lunch", Calories: 450, ProteinG: 35, CarbsG: 20, FatG: 15},
	}
	root.Day.WaterEvents = []int{1500}
	root.Day.HydrationMl = 1500
	root.Week.CompletedWorkouts = []CompletedWorkout{
		{ID: uuid.NewString(), Name: "Pull Day", Minutes: 70, DisplayDate: calendar.DisplayDate(calendar.OffsetDays(now, -1))},
		{ID: uuid.NewString(), Name: "Push Day", Minutes: 65, DisplayDate: calendar.DisplayDate(now)},
	}
	root.Fitness.Plans = ExamplePlans()
	return root
}
