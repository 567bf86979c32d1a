package tracker

import (
	"github.com/fdg312/health-tracker/internal/history"
	"github.com/fdg312/health-tracker/internal/state"
)

// State returns a deep copy of the whole document.
func (t *Tracker) State() *state.Root {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.now()
	return t.root.Clone()
}

func (t *Tracker) Goals() state.Goals {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.root.Goals
}

// Totals returns today's nutrition totals.
func (t *Tracker) Totals() state.Totals {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.now()
	return state.DailyTotals(t.root.Day)
}

// Today returns a live snapshot of the current day.
func (t *Tracker) Today() *state.DaySnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.now()
	return history.BuildSnapshot(t.root.Day)
}

// RecentDays returns n day snapshots ending today, oldest first.
func (t *Tracker) RecentDays(n int) []*state.DaySnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	return history.RecentDays(t.root, now, n)
}

// Events returns the events logged on dateKey.
func (t *Tracker) Events(dateKey string) []state.Event {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.now()
	return history.Events(t.root, dateKey)
}

func (t *Tracker) Week() *state.Week {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.now()
	return t.root.Week.Clone()
}

func (t *Tracker) Plans() []state.WorkoutPlan {
	t.mu.Lock()
	defer t.mu.Unlock()
	return state.ClonePlans(t.root.Fitness.Plans)
}

// ActiveSession returns a copy of the session in progress or nil.
func (t *Tracker) ActiveSession() *state.ActiveSession {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.root.Fitness.ActiveSession.Clone()
}

// Progress returns goal percentages for today and the current week.
func (t *Tracker) Progress() state.GoalProgress {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.now()
	day := t.root.Day
	return state.ComputeProgress(t.root.Goals, state.DailyTotals(day), day.HydrationMl, len(t.root.Week.CompletedWorkouts))
}
