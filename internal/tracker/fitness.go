package tracker

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/fdg312/health-tracker/internal/calendar"
	"github.com/fdg312/health-tracker/internal/state"
)

// MARK: - Plans

// CreatePlan добавляет пустой шаблон тренировки.
func (t *Tracker) CreatePlan(ctx context.Context, name string) (state.WorkoutPlan, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	plan := state.WorkoutPlan{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		Exercises: []state.PlanExercise{},
	}
	t.root.Fitness.Plans = append(t.root.Fitness.Plans, plan)

	return plan.Clone(), t.commit(ctx, now, "", nil, false)
}

// AddExerciseToPlan добавляет упражнение в шаблон; sets в [1,20], reps в [1,100].
func (t *Tracker) AddExerciseToPlan(ctx context.Context, planID string, in ExerciseInput) (state.PlanExercise, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	plan := t.findPlan(planID)
	if plan == nil {
		return state.PlanExercise{}, false, nil
	}
	ex := state.PlanExercise{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(in.Name),
		TargetSets: state.Clamp(in.TargetSets, MinPlanSets, MaxPlanSets),
		TargetReps: state.Clamp(in.TargetReps, MinPlanReps, MaxPlanReps),
	}
	plan.Exercises = append(plan.Exercises, ex)

	return ex, true, t.commit(ctx, now, "", nil, false)
}

// DeletePlan удаляет шаблон. Активная сессия, начатая из него, не трогается.
func (t *Tracker) DeletePlan(ctx context.Context, planID string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	plans := t.root.Fitness.Plans
	for i := range plans {
		if plans[i].ID == planID {
			t.root.Fitness.Plans = append(plans[:i:i], plans[i+1:]...)
			return true, t.commit(ctx, now, "", nil, false)
		}
	}
	return false, nil
}

func (t *Tracker) findPlan(planID string) *state.WorkoutPlan {
	for i := range t.root.Fitness.Plans {
		if t.root.Fitness.Plans[i].ID == planID {
			return &t.root.Fitness.Plans[i]
		}
	}
	return nil
}

// MARK: - Session

// StartPlan начинает сессию по шаблону, заменяя текущую. Упражнения
// копируются с sets_completed=0, avg_reps=target_reps, weight=0.
func (t *Tracker) StartPlan(ctx context.Context, planID string) (*state.ActiveSession, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	plan := t.findPlan(planID)
	if plan == nil {
		return nil, false, nil
	}

	exercises := make([]state.SessionExercise, len(plan.Exercises))
	for i, ex := range plan.Exercises {
		exercises[i] = state.SessionExercise{
			ID:            ex.ID,
			Name:          ex.Name,
			TargetSets:    ex.TargetSets,
			TargetReps:    ex.TargetReps,
			SetsCompleted: 0,
			AvgReps:       ex.TargetReps,
			Weight:        0,
		}
	}
	if prev := t.root.Fitness.ActiveSession; prev != nil {
		t.logf("INFO tracker: session_replaced id=%s name=%q", prev.ID, prev.Name)
	}
	session := &state.ActiveSession{
		ID:        uuid.NewString(),
		PlanID:    plan.ID,
		Name:      plan.Name,
		StartedAt: now,
		Exercises: exercises,
	}
	t.root.Fitness.ActiveSession = session

	return session.Clone(), true, t.commit(ctx, now, "", nil, false)
}

// UpdateSessionExercise сливает заданные поля в упражнение активной сессии.
func (t *Tracker) UpdateSessionExercise(ctx context.Context, exerciseID string, upd SessionExerciseUpdate) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	ex := t.findSessionExercise(exerciseID)
	if ex == nil {
		return false, nil
	}
	if upd.SetsCompleted != nil {
		ex.SetsCompleted = state.Clamp(*upd.SetsCompleted, 0, MaxSessionSets)
	}
	if upd.AvgReps != nil {
		ex.AvgReps = state.Clamp(*upd.AvgReps, 0, MaxSessionAvgReps)
	}
	if upd.Weight != nil {
		ex.Weight = state.ClampFloat(*upd.Weight, 0, MaxSessionWeight)
	}

	return true, t.commit(ctx, now, "", nil, false)
}

// RemoveSessionExercise убирает упражнение из активной сессии.
func (t *Tracker) RemoveSessionExercise(ctx context.Context, exerciseID string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	session := t.root.Fitness.ActiveSession
	if session == nil {
		return false, nil
	}
	for i := range session.Exercises {
		if session.Exercises[i].ID == exerciseID {
			session.Exercises = append(session.Exercises[:i:i], session.Exercises[i+1:]...)
			return true, t.commit(ctx, now, "", nil, false)
		}
	}
	return false, nil
}

func (t *Tracker) findSessionExercise(exerciseID string) *state.SessionExercise {
	session := t.root.Fitness.ActiveSession
	if session == nil {
		return nil
	}
	for i := range session.Exercises {
		if session.Exercises[i].ID == exerciseID {
			return &session.Exercises[i]
		}
	}
	return nil
}

// CancelSession отбрасывает активную сессию без записи тренировки.
func (t *Tracker) CancelSession(ctx context.Context) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if t.root.Fitness.ActiveSession == nil {
		return false, nil
	}
	t.root.Fitness.ActiveSession = nil

	return true, t.commit(ctx, now, "", nil, false)
}

// FinishSession превращает активную сессию в завершённую тренировку
// текущей недели. minutes в [5,300] и не зависит от времени начала.
func (t *Tracker) FinishSession(ctx context.Context, minutes int) (state.CompletedWorkout, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	session := t.root.Fitness.ActiveSession
	if session == nil {
		return state.CompletedWorkout{}, false, nil
	}

	workout := state.CompletedWorkout{
		ID:          uuid.NewString(),
		Name:        session.Name,
		Minutes:     state.Clamp(minutes, MinWorkoutMinutes, MaxWorkoutMinutes),
		DisplayDate: calendar.DisplayDate(now),
	}
	t.root.Week.CompletedWorkouts = append(t.root.Week.CompletedWorkouts, workout)
	t.root.Fitness.ActiveSession = nil

	data := workoutFinishData{
		WorkoutID: workout.ID,
		SessionID: session.ID,
		PlanID:    session.PlanID,
		Name:      session.Name,
		Minutes:   workout.Minutes,
		StartedAt: session.StartedAt,
		Exercises: session.Exercises,
	}
	return workout, true, t.commit(ctx, now, state.EventWorkoutFinish, data, false)
}
