package state

import "math"

// DailyTotals суммирует калории и БЖУ по приёмам пищи дня.
// Единственное место суммирования: экраны питания, дашборд и снимки используют его.
func DailyTotals(day *Day) Totals {
	var t Totals
	if day == nil {
		return t
	}
	for _, m := range day.Meals {
		t.Calories += m.Calories
		t.ProteinG += m.ProteinG
		t.CarbsG += m.CarbsG
		t.FatG += m.FatG
	}
	return t
}

// SupplementsTaken returns the number of supplements marked as taken.
func SupplementsTaken(day *Day) int {
	if day == nil {
		return 0
	}
	n := 0
	for _, s := range day.Supplements {
		if s.Taken {
			n++
		}
	}
	return n
}

// Progress returns current/goal as a whole percentage capped at 100.
// A non-positive goal yields 0.
func Progress(current, goal int) int {
	if goal <= 0 || current <= 0 {
		return 0
	}
	pct := int(math.Round(float64(current) / float64(goal) * 100))
	if pct > 100 {
		return 100
	}
	return pct
}

// GoalProgress — проценты выполнения целей для дашборда
type GoalProgress struct {
	Calories  int `json:"calories"`
	ProteinG  int `json:"protein_g"`
	CarbsG    int `json:"carbs_g"`
	FatG      int `json:"fat_g"`
	Hydration int `json:"hydration"`
	Workouts  int `json:"workouts"`
}

// ComputeProgress builds dashboard percentages from totals, hydration and workouts.
func ComputeProgress(goals Goals, totals Totals, hydrationMl, workouts int) GoalProgress {
	return GoalProgress{
		Calories:  Progress(totals.Calories, goals.Calories),
		ProteinG:  Progress(totals.ProteinG, goals.ProteinG),
		CarbsG:    Progress(totals.CarbsG, goals.CarbsG),
		FatG:      Progress(totals.FatG, goals.FatG),
		Hydration: Progress(hydrationMl, goals.HydrationMl),
		Workouts:  Progress(workouts, goals.WeeklyWorkouts),
	}
}

// Clamp bounds n to [lo, hi].
func Clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// ClampFloat bounds f to [lo, hi]; NaN becomes lo.
func ClampFloat(f, lo, hi float64) float64 {
	if math.IsNaN(f) || f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}

// ClampGoals keeps user-configured goals within sane bounds.
func ClampGoals(g Goals) Goals {
	return Goals{
		Calories:       Clamp(g.Calories, 0, 10000),
		ProteinG:       Clamp(g.ProteinG, 0, 1000),
		CarbsG:         Clamp(g.CarbsG, 0, 1500),
		FatG:           Clamp(g.FatG, 0, 1000),
		HydrationMl:    Clamp(g.HydrationMl, 0, 10000),
		WeeklyWorkouts: Clamp(g.WeeklyWorkouts, 0, 21),
	}
}
