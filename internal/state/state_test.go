package state

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

var testNow = time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

func TestDailyTotals(t *testing.T) {
	day := NewDay("2026-10-17")
	day.Meals = []Meal{
		{ID: "a", Name: "Oats", Calories: 300, ProteinG: 10, CarbsG: 55, FatG: 5},
		{ID: "b", Name: "Salad", Calories: 450, ProteinG: 35, CarbsG: 20, FatG: 15},
	}
	got := DailyTotals(day)
	want := Totals{Calories: 750, ProteinG: 45, CarbsG: 75, FatG: 20}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if DailyTotals(nil) != (Totals{}) {
		t.Fatalf("expected zero totals for nil day")
	}
}

func TestSupplementsTaken(t *testing.T) {
	day := NewDay("2026-10-17")
	day.Supplements = ExampleSupplements()
	if got := SupplementsTaken(day); got != 0 {
		t.Fatalf("expected nothing taken on a fresh install, got %d", got)
	}
	day.Supplements["Omega-3"] = SupplementEntry{Dose: "1000mg", Taken: true}
	if got := SupplementsTaken(day); got != 1 {
		t.Fatalf("expected 1 taken, got %d", got)
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name          string
		current, goal int
		want          int
	}{
		{"half", 1000, 2000, 50},
		{"rounded", 1, 3, 33},
		{"capped", 3000, 2000, 100},
		{"zero goal", 500, 0, 0},
		{"negative current", -5, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress(tt.current, tt.goal); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestClampGoals(t *testing.T) {
	got := ClampGoals(Goals{Calories: -10, WeeklyWorkouts: 100, HydrationMl: 3000})
	if got.Calories != 0 || got.WeeklyWorkouts != 21 || got.HydrationMl != 3000 {
		t.Fatalf("unexpected clamp result: %+v", got)
	}
}

func TestNewDefaultSeeded(t *testing.T) {
	root := NewDefault(testNow, true)
	if root.Day.DateKey != "2026-10-17" {
		t.Fatalf("expected today's day key, got %s", root.Day.DateKey)
	}
	if root.Week.WeekKey != "2026-W42" {
		t.Fatalf("expected 2026-W42, got %s", root.Week.WeekKey)
	}
	if root.Day.HydrationMl != 1500 || len(root.Day.WaterEvents) != 1 {
		t.Fatalf("expected seeded hydration 1500 in one event, got %d / %v", root.Day.HydrationMl, root.Day.WaterEvents)
	}
	if got := DailyTotals(root.Day).Calories; got != 750 {
		t.Fatalf("expected 750 seeded kcal, got %d", got)
	}
	if len(root.Week.CompletedWorkouts) != 2 {
		t.Fatalf("expected 2 seeded workouts, got %d", len(root.Week.CompletedWorkouts))
	}
	if root.Week.CompletedWorkouts[0].DisplayDate != "16.10.2026" {
		t.Fatalf("expected yesterday label, got %s", root.Week.CompletedWorkouts[0].DisplayDate)
	}
	if len(root.Fitness.Plans) == 0 {
		t.Fatalf("expected seeded plans")
	}
	if len(root.History) != 0 {
		t.Fatalf("expected empty history, got %d entries", len(root.History))
	}
}

func TestNewDefaultUnseeded(t *testing.T) {
	root := NewDefault(testNow, false)
	if len(root.Day.Meals) != 0 || len(root.Day.Supplements) != 0 || root.Day.HydrationMl != 0 {
		t.Fatalf("expected empty day, got %+v", root.Day)
	}
	if len(root.Week.CompletedWorkouts) != 0 || len(root.Fitness.Plans) != 0 {
		t.Fatalf("expected empty week and plans")
	}
}

func TestEncodeDecode(t *testing.T) {
	root := NewDefault(testNow, true)
	root.Fitness.ActiveSession = &ActiveSession{
		ID:        "s1",
		PlanID:    root.Fitness.Plans[0].ID,
		Name:      "Push Day",
		StartedAt: testNow,
		Exercises: []SessionExercise{{ID: "e1", Name: "Bench Press", TargetSets: 4, TargetReps: 8, AvgReps: 8, Weight: 62.5}},
	}
	entry := root.Entry("2026-10-17")
	entry.Events = append(entry.Events, Event{ID: "ev1", Timestamp: testNow, Type: EventWaterAdd, Data: json.RawMessage(`{"ml":250}`)})

	data, err := Encode(root)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.SchemaVersion != SchemaVersion {
		t.Fatalf("expected schema version %d, got %d", SchemaVersion, got.SchemaVersion)
	}
	if got.Fitness.ActiveSession == nil || got.Fitness.ActiveSession.Exercises[0].Weight != 62.5 {
		t.Fatalf("expected active session to survive round trip, got %+v", got.Fitness.ActiveSession)
	}
	if !got.Fitness.ActiveSession.StartedAt.Equal(testNow) {
		t.Fatalf("expected started_at %v, got %v", testNow, got.Fitness.ActiveSession.StartedAt)
	}
	if n := len(got.History["2026-10-17"].Events); n != 1 {
		t.Fatalf("expected 1 event, got %d", n)
	}
}

func TestDecodeRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"not json":      `{"schema_version":`,
		"wrong version": `{"schema_version":1,"goals":{},"fitness":{"plans":[]},"history":{}}`,
		"bad date key":  `{"schema_version":2,"goals":{"calories":1,"protein_g":1,"carbs_g":1,"fat_g":1,"hydration_ml":1,"weekly_workouts":1},"fitness":{"plans":[]},"history":{"yesterday":{"events":[]}}}`,
		"legacy blob":   `{"goals":{"calories":2000},"day":{"isoDate":"2026-10-17"}}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(raw))
			if !errors.Is(err, ErrInvalidDocument) {
				t.Fatalf("expected ErrInvalidDocument, got %v", err)
			}
		})
	}
}

func TestDecodeRecomputesHydration(t *testing.T) {
	tests := []struct {
		name      string
		events    []int
		hydration int
		wantMl    int
		wantN     int
	}{
		{"total ahead of events", []int{100}, 900, 100, 1},
		{"total behind events", []int{250, 500}, 0, 750, 2},
		{"total without events", nil, 400, 400, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := NewDefault(testNow, false)
			root.Day.WaterEvents = tt.events
			root.Day.HydrationMl = tt.hydration
			data, err := Encode(root)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			got, err := Decode(data)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got.Day.HydrationMl != tt.wantMl || len(got.Day.WaterEvents) != tt.wantN {
				t.Fatalf("expected %d ml in %d events, got %d / %v", tt.wantMl, tt.wantN, got.Day.HydrationMl, got.Day.WaterEvents)
			}
		})
	}
}

func TestDecodeRejectsNonPositiveWater(t *testing.T) {
	for _, ml := range []int{0, -250} {
		root := NewDefault(testNow, false)
		root.Day.WaterEvents = []int{ml}
		data, err := Encode(root)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		if _, err := Decode(data); !errors.Is(err, ErrInvalidDocument) {
			t.Fatalf("expected ErrInvalidDocument for %d ml, got %v", ml, err)
		}
	}
}

func TestDecodeLegacy(t *testing.T) {
	raw := `{
		"goals": {"calories": 1800, "protein": 120, "hydrationMl": 3000, "weeklyWorkoutsGoal": 3},
		"day": {
			"isoDate": "2026-10-16",
			"supplements": {"Omega-3": {"dose": "1000mg", "taken": true}},
			"meals": [{"id": "m1", "name": "Soup", "when": "Dinner", "calories": 350, "protein": 20, "carbs": 30, "fat": 10}],
			"hydrationMl": 750,
			"waterEvents": [500, 250]
		},
		"week": {"isoWeekKey": "2026-W42", "completedWorkouts": [{"id": "w1", "name": "Legs", "minutes": 50, "date": "15.10.2026"}]}
	}`
	root, err := DecodeLegacy([]byte(raw))
	if err != nil {
		t.Fatalf("decode legacy: %v", err)
	}
	if root.Goals.Calories != 1800 || root.Goals.ProteinG != 120 || root.Goals.CarbsG != 200 {
		t.Fatalf("unexpected goals: %+v", root.Goals)
	}
	if root.Day.DateKey != "2026-10-16" || root.Day.Meals[0].Slot != "Dinner" {
		t.Fatalf("unexpected day: %+v", root.Day)
	}
	if root.Day.HydrationMl != 750 {
		t.Fatalf("expected 750 ml, got %d", root.Day.HydrationMl)
	}
	if root.Week.CompletedWorkouts[0].DisplayDate != "15.10.2026" {
		t.Fatalf("unexpected workout: %+v", root.Week.CompletedWorkouts[0])
	}
	if root.Fitness.Plans == nil || root.Fitness.ActiveSession != nil || len(root.History) != 0 {
		t.Fatalf("expected empty fitness and history")
	}

	// результат миграции должен проходить схему текущей версии
	data, err := Encode(root)
	if err != nil {
		t.Fatalf("encode migrated: %v", err)
	}
	if _, err := Decode(data); err != nil {
		t.Fatalf("migrated document does not decode: %v", err)
	}
}

func TestDecodeLegacyHydrationWithoutEvents(t *testing.T) {
	root, err := DecodeLegacy([]byte(`{"day":{"isoDate":"2026-10-17","hydrationMl":600}}`))
	if err != nil {
		t.Fatalf("decode legacy: %v", err)
	}
	if root.Day.HydrationMl != 600 || len(root.Day.WaterEvents) != 1 || root.Day.WaterEvents[0] != 600 {
		t.Fatalf("expected a single 600 ml event, got %d / %v", root.Day.HydrationMl, root.Day.WaterEvents)
	}
}

func TestDecodeLegacyRejectsGarbage(t *testing.T) {
	for _, raw := range []string{`null`, `{}`, `[1,2]`, `{"goals":`} {
		if _, err := DecodeLegacy([]byte(raw)); !errors.Is(err, ErrInvalidDocument) {
			t.Fatalf("expected ErrInvalidDocument for %s, got %v", raw, err)
		}
	}
}

func TestRootCloneIsDeep(t *testing.T) {
	root := NewDefault(testNow, true)
	root.Entry("2026-10-17").Snapshot = &DaySnapshot{DateKey: "2026-10-17", Meals: []Meal{{ID: "x"}}}
	cp := root.Clone()

	cp.Day.Meals[0].Name = "changed"
	cp.Day.Supplements["Omega-3"] = SupplementEntry{Dose: "x", Taken: true}
	cp.Fitness.Plans[0].Exercises[0].TargetSets = 99
	cp.History["2026-10-17"].Snapshot.Meals[0].ID = "y"

	if root.Day.Meals[0].Name == "changed" {
		t.Fatalf("meal mutation leaked into original")
	}
	if root.Day.Supplements["Omega-3"].Taken {
		t.Fatalf("supplement mutation leaked into original")
	}
	if root.Fitness.Plans[0].Exercises[0].TargetSets == 99 {
		t.Fatalf("plan mutation leaked into original")
	}
	if root.History["2026-10-17"].Snapshot.Meals[0].ID != "x" {
		t.Fatalf("snapshot mutation leaked into original")
	}
}
