package state

import "encoding/json"

// Clone returns a deep copy of the day.
func (d *Day) Clone() *Day {
	if d == nil {
		return nil
	}
	out := &Day{
		DateKey:     d.DateKey,
		Supplements: cloneSupplements(d.Supplements),
		Meals:       append([]Meal{}, d.Meals...),
		HydrationMl: d.HydrationMl,
		WaterEvents: append([]int{}, d.WaterEvents...),
	}
	return out
}

// Clone returns a deep copy of the week.
func (w *Week) Clone() *Week {
	if w == nil {
		return nil
	}
	return &Week{
		WeekKey:           w.WeekKey,
		CompletedWorkouts: append([]CompletedWorkout{}, w.CompletedWorkouts...),
	}
}

// Clone returns a deep copy of the plan.
func (p WorkoutPlan) Clone() WorkoutPlan {
	p.Exercises = append([]PlanExercise{}, p.Exercises...)
	return p
}

// Clone returns a deep copy of the session.
func (s *ActiveSession) Clone() *ActiveSession {
	if s == nil {
		return nil
	}
	out := *s
	out.Exercises = append([]SessionExercise{}, s.Exercises...)
	return &out
}

// Clone returns a deep copy of the snapshot.
func (s *DaySnapshot) Clone() *DaySnapshot {
	if s == nil {
		return nil
	}
	out := *s
	out.Meals = append([]Meal{}, s.Meals...)
	out.Supplements = cloneSupplements(s.Supplements)
	out.WaterEvents = append([]int{}, s.WaterEvents...)
	return &out
}

// Clone returns a deep copy of the history entry.
func (e *HistoryEntry) Clone() *HistoryEntry {
	if e == nil {
		return nil
	}
	events := make([]Event, len(e.Events))
	for i, ev := range e.Events {
		events[i] = ev
		if ev.Data != nil {
			events[i].Data = append(json.RawMessage{}, ev.Data...)
		}
	}
	return &HistoryEntry{Events: events, Snapshot: e.Snapshot.Clone()}
}

// Clone returns a deep copy of the whole document.
func (r *Root) Clone() *Root {
	if r == nil {
		return nil
	}
	out := &Root{
		SchemaVersion: r.SchemaVersion,
		Goals:         r.Goals,
		Day:           r.Day.Clone(),
		Week:          r.Week.Clone(),
		Fitness: Fitness{
			Plans:         ClonePlans(r.Fitness.Plans),
			ActiveSession: r.Fitness.ActiveSession.Clone(),
		},
		History: make(map[string]*HistoryEntry, len(r.History)),
	}
	for key, entry := range r.History {
		out.History[key] = entry.Clone()
	}
	return out
}

// ClonePlans deep-copies a plan list.
func ClonePlans(plans []WorkoutPlan) []WorkoutPlan {
	out := make([]WorkoutPlan, len(plans))
	for i, p := range plans {
		out[i] = p.Clone()
	}
	return out
}

func cloneSupplements(in map[string]SupplementEntry) map[string]SupplementEntry {
	out := make(map[string]SupplementEntry, len(in))
	for name, entry := range in {
		out[name] = entry
	}
	return out
}

// ResetSupplements returns a copy of in with every entry marked as not taken.
func ResetSupplements(in map[string]SupplementEntry) map[string]SupplementEntry {
	out := make(map[string]SupplementEntry, len(in))
	for name, entry := range in {
		entry.Taken = false
		out[name] = entry
	}
	return out
}
