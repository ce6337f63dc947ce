// ABOUTME: Workout session engine: owns the single active session and its lifecycle.
// ABOUTME: Operations on a missing session or exercise are silent no-ops, not errors.
package workout

import (
	"fmt"
	"math"
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/store"
)

// Calorie estimate for non-cardio workouts, per elapsed minute.
const caloriesPerMinute = 6

// Engine owns the active workout session. All mutation goes through its
// operation set; the active session is persisted after every mutation so
// it survives across process invocations.
//
// Mutating operations return a changed flag instead of an error when the
// target session or exercise does not exist: the cost of a missed
// mutation is a display inconsistency, not data corruption. Errors are
// reserved for storage write failures.
type Engine struct {
	store   store.Store
	now     func() time.Time
	current *models.WorkoutSession
}

// NewEngine creates an engine bound to the store, restoring any
// persisted active session. A nil clock defaults to time.Now.
func NewEngine(st store.Store, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	e := &Engine{store: st, now: now}
	e.current = store.LoadActiveSession(st)
	e.Tick()
	return e
}

// Current returns the active session, or nil when none is in progress.
func (e *Engine) Current() *models.WorkoutSession {
	return e.current
}

// Tick recomputes the active session's duration from the wall clock.
// The duration stays frozen while the session is paused or ended.
func (e *Engine) Tick() {
	if e.current == nil || !e.current.IsActive || e.current.IsPaused {
		return
	}
	e.current.Duration = int(e.now().Sub(e.current.StartTime) / time.Second)
}

// Start begins a new workout session for the given body part. Callers
// must not start a workout while one is active; the engine enforces the
// contract by refusing rather than silently replacing the session.
func (e *Engine) Start(bodyPart string) (*models.WorkoutSession, error) {
	if e.current != nil {
		return nil, fmt.Errorf("a %s workout is already in progress", e.current.BodyPart)
	}
	e.current = models.NewWorkoutSession(bodyPart, e.now())
	return e.current, e.save()
}

// Pause freezes the duration tick. No-op when no session is active.
func (e *Engine) Pause() (bool, error) {
	if e.current == nil {
		return false, nil
	}
	e.Tick()
	e.current.IsPaused = true
	return true, e.save()
}

// Resume unfreezes the duration tick. The duration catches back up to
// wall-clock elapsed time, paused period included. No-op when no
// session is active.
func (e *Engine) Resume() (bool, error) {
	if e.current == nil {
		return false, nil
	}
	e.current.IsPaused = false
	e.Tick()
	return true, e.save()
}

// AddExercise appends a new expanded exercise and minimizes all prior
// ones. Returns nil when no session is active.
func (e *Engine) AddExercise(name string) (*models.Exercise, error) {
	if e.current == nil {
		return nil, nil
	}
	for i := range e.current.Exercises {
		e.current.Exercises[i].IsMinimized = true
	}
	ex := models.NewExercise(name)
	e.current.Exercises = append(e.current.Exercises, *ex)
	return ex, e.save()
}

// AddSet appends a set to the named exercise. The engine stores the
// optional weight/calories fields verbatim; supplying the field that
// matches the session's body part is the caller's responsibility.
func (e *Engine) AddSet(exerciseID string, reps int, weight, calories *float64) (bool, error) {
	if e.current == nil {
		return false, nil
	}
	ex := e.current.FindExercise(exerciseID)
	if ex == nil {
		return false, nil
	}
	ex.Sets = append(ex.Sets, models.Set{Reps: reps, Weight: weight, Calories: calories})
	return true, e.save()
}

// RemoveExercise removes the exercise and all its sets. Irreversible.
func (e *Engine) RemoveExercise(exerciseID string) (bool, error) {
	if e.current == nil {
		return false, nil
	}
	for i := range e.current.Exercises {
		if e.current.Exercises[i].ID == exerciseID {
			e.current.Exercises = append(e.current.Exercises[:i], e.current.Exercises[i+1:]...)
			return true, e.save()
		}
	}
	return false, nil
}

// ToggleExerciseMinimized flips the display flag only.
func (e *Engine) ToggleExerciseMinimized(exerciseID string) (bool, error) {
	if e.current == nil {
		return false, nil
	}
	ex := e.current.FindExercise(exerciseID)
	if ex == nil {
		return false, nil
	}
	ex.IsMinimized = !ex.IsMinimized
	return true, e.save()
}

// End finalizes the active session into an immutable completed record:
// it computes calories, prepends the record to the persisted session
// list, bumps the daily calorie and step accumulators, and clears the
// active session. Returns nil when no session is active.
//
// The slot writes are independent; a crash partway through can leave
// the accumulators behind the session list. Accepted, single-key
// last-write-wins store.
func (e *Engine) End() (*models.CompletedSessionRecord, error) {
	if e.current == nil {
		return nil, nil
	}
	e.Tick()
	session := e.current

	rec := models.CompletedSessionRecord{
		ID:        session.ID,
		Name:      fmt.Sprintf("%s Workout", session.BodyPart),
		BodyPart:  session.BodyPart,
		Date:      e.now().Format(models.RecordDateLayout),
		Duration:  session.Duration / 60,
		Calories:  totalCalories(session),
		Status:    models.SessionStatusCompleted,
		Notes:     fmt.Sprintf("%d exercises completed", len(session.Exercises)),
		Exercises: session.Exercises,
	}

	if err := store.PrependSession(e.store, rec); err != nil {
		return nil, err
	}
	if _, err := store.AddDailyCalories(e.store, rec.Calories); err != nil {
		return nil, err
	}
	// Rough step estimate from elapsed time
	if _, err := store.AddDailySteps(e.store, session.Duration*2); err != nil {
		return nil, err
	}

	e.current = nil
	return &rec, store.ClearActiveSession(e.store)
}

// totalCalories computes the end-of-workout calorie figure: the sum of
// per-set calories for cardio sessions, a flat per-minute estimate from
// elapsed time for everything else. The record and the daily counter
// hold whole kcal, so a fractional cardio sum floors.
func totalCalories(session *models.WorkoutSession) int {
	if session.IsCardio() {
		total := 0.0
		for _, ex := range session.Exercises {
			for _, set := range ex.Sets {
				if set.Calories != nil {
					total += *set.Calories
				}
			}
		}
		return int(math.Floor(total))
	}
	return session.Duration * caloriesPerMinute / 60
}

func (e *Engine) save() error {
	return store.SaveActiveSession(e.store, e.current)
}
