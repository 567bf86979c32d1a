package tracker

import (
	"time"

	"github.com/fdg312/health-tracker/internal/state"
)

// Границы ввода. Значения вне диапазона приводятся к ближайшей границе.
const (
	MaxMealCalories = 3000
	MaxMealProteinG = 200
	MaxMealCarbsG   = 400
	MaxMealFatG     = 200

	MinPlanSets = 1
	MaxPlanSets = 20
	MinPlanReps = 1
	MaxPlanReps = 100

	MaxSessionSets    = 50
	MaxSessionAvgReps = 100
	MaxSessionWeight  = 1000.0

	MinWorkoutMinutes = 5
	MaxWorkoutMinutes = 300

	DefaultWaterMaxMlPerAdd = 2000
	DefaultMealSlot         = "Lunch"
)

// MealInput — данные нового приёма пищи
type MealInput struct {
	Name     string
	Slot     string
	Calories int
	ProteinG int
	CarbsG   int
	FatG     int
}

// ExerciseInput — упражнение для шаблона
type ExerciseInput struct {
	Name       string
	TargetSets int
	TargetReps int
}

// SessionExerciseUpdate — частичное обновление упражнения активной сессии;
// nil-поля не меняются
type SessionExerciseUpdate struct {
	SetsCompleted *int
	AvgReps       *int
	Weight        *float64
}

type supplementEventData struct {
	Name string `json:"name"`
	Dose string `json:"dose,omitempty"`
}

type supplementResetData struct {
	Count int `json:"count"`
}

type waterEventData struct {
	Ml    int `json:"ml"`
	Total int `json:"total_ml"`
}

type workoutFinishData struct {
	WorkoutID string                  `json:"workout_id"`
	SessionID string                  `json:"session_id"`
	PlanID    string                  `json:"plan_id"`
	Name      string                  `json:"name"`
	Minutes   int                     `json:"minutes"`
	StartedAt time.Time               `json:"started_at"`
	Exercises []state.SessionExercise `json:"exercises"`
}
