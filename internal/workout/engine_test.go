// ABOUTME: Tests for the workout session engine.
// ABOUTME: Covers lifecycle, exercise/set mutation, calorie math, and persistence.
package workout

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/store"
)

// testClock is a controllable wall clock.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func setupEngine(t *testing.T) (*Engine, *store.SQLiteStore, *testClock) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "fittrack.db")
	st, err := store.OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	clock := &testClock{now: time.Date(2025, time.June, 15, 9, 0, 0, 0, time.UTC)}
	return NewEngine(st, clock.Now), st, clock
}

func float(v float64) *float64 { return &v }

func TestStartWorkout(t *testing.T) {
	e, _, _ := setupEngine(t)

	s, err := e.Start("Chest")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if !s.IsActive || s.IsPaused || s.Duration != 0 || len(s.Exercises) != 0 {
		t.Errorf("unexpected new session state: %+v", s)
	}

	// Only one session may be active at a time
	if _, err := e.Start("Legs"); err == nil {
		t.Error("expected second Start to fail")
	}
}

func TestDurationTicking(t *testing.T) {
	e, _, clock := setupEngine(t)

	if _, err := e.Start("Back"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	clock.Advance(95 * time.Second)
	e.Tick()
	if got := e.Current().Duration; got != 95 {
		t.Errorf("Duration = %d, want 95", got)
	}
}

func TestPauseFreezesResumesCatchesUp(t *testing.T) {
	e, _, clock := setupEngine(t)

	if _, err := e.Start("Arms"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	clock.Advance(60 * time.Second)
	if _, err := e.Pause(); err != nil {
		t.Fatalf("Pause failed: %v", err)
	}
	if got := e.Current().Duration; got != 60 {
		t.Errorf("Duration at pause = %d, want 60", got)
	}

	// Frozen while paused
	clock.Advance(30 * time.Second)
	e.Tick()
	if got := e.Current().Duration; got != 60 {
		t.Errorf("Duration while paused = %d, want 60", got)
	}

	// Resume catches back up to wall-clock elapsed time
	if _, err := e.Resume(); err != nil {
		t.Fatalf("Resume failed: %v", err)
	}
	if got := e.Current().Duration; got != 90 {
		t.Errorf("Duration after resume = %d, want 90", got)
	}
}

func TestPauseWithoutSession(t *testing.T) {
	e, _, _ := setupEngine(t)

	changed, err := e.Pause()
	if err != nil {
		t.Fatalf("Pause failed: %v", err)
	}
	if changed {
		t.Error("expected Pause to be a no-op with no session")
	}
	if changed, _ := e.Resume(); changed {
		t.Error("expected Resume to be a no-op with no session")
	}
}

func TestAddExerciseMinimizesPrior(t *testing.T) {
	e, _, _ := setupEngine(t)

	if _, err := e.Start("Legs"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	names := []string{"Squats", "Lunges", "Leg Press"}
	for _, name := range names {
		if _, err := e.AddExercise(name); err != nil {
			t.Fatalf("AddExercise(%s) failed: %v", name, err)
		}
	}

	exercises := e.Current().Exercises
	if len(exercises) != 3 {
		t.Fatalf("expected 3 exercises, got %d", len(exercises))
	}
	for i, ex := range exercises {
		wantMinimized := i != len(exercises)-1
		if ex.IsMinimized != wantMinimized {
			t.Errorf("exercise %d minimized = %v, want %v", i, ex.IsMinimized, wantMinimized)
		}
	}
}

func TestAddExerciseWithoutSession(t *testing.T) {
	e, _, _ := setupEngine(t)

	ex, err := e.AddExercise("Push-ups")
	if err != nil {
		t.Fatalf("AddExercise failed: %v", err)
	}
	if ex != nil {
		t.Error("expected nil exercise with no session")
	}
}

func TestAddSet(t *testing.T) {
	e, _, _ := setupEngine(t)

	if _, err := e.Start("Chest"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	ex, err := e.AddExercise("Bench Press")
	if err != nil {
		t.Fatalf("AddExercise failed: %v", err)
	}

	added, err := e.AddSet(ex.ID, 10, float(50), nil)
	if err != nil {
		t.Fatalf("AddSet failed: %v", err)
	}
	if !added {
		t.Error("expected set to be added")
	}

	sets := e.Current().FindExercise(ex.ID).Sets
	if len(sets) != 1 || sets[0].Reps != 10 || sets[0].Weight == nil || *sets[0].Weight != 50 {
		t.Errorf("unexpected sets: %+v", sets)
	}

	// Unknown exercise is a silent no-op
	added, err = e.AddSet("missing", 8, float(55), nil)
	if err != nil {
		t.Fatalf("AddSet failed: %v", err)
	}
	if added {
		t.Error("expected no-op for unknown exercise")
	}
}

func TestRemoveExercise(t *testing.T) {
	e, _, _ := setupEngine(t)

	if _, err := e.Start("Core"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	ex, _ := e.AddExercise("Planks")
	if _, err := e.AddExercise("Crunches"); err != nil {
		t.Fatalf("AddExercise failed: %v", err)
	}

	removed, err := e.RemoveExercise(ex.ID)
	if err != nil {
		t.Fatalf("RemoveExercise failed: %v", err)
	}
	if !removed {
		t.Error("expected removal")
	}
	if len(e.Current().Exercises) != 1 || e.Current().Exercises[0].Name != "Crunches" {
		t.Errorf("unexpected exercises: %+v", e.Current().Exercises)
	}

	if removed, _ := e.RemoveExercise("missing"); removed {
		t.Error("expected no-op for unknown exercise")
	}
}

func TestToggleExerciseMinimized(t *testing.T) {
	e, _, _ := setupEngine(t)

	if _, err := e.Start("Back"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	ex, _ := e.AddExercise("Rows")

	if _, err := e.ToggleExerciseMinimized(ex.ID); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if !e.Current().FindExercise(ex.ID).IsMinimized {
		t.Error("expected exercise to be minimized after toggle")
	}
	if _, err := e.ToggleExerciseMinimized(ex.ID); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if e.Current().FindExercise(ex.ID).IsMinimized {
		t.Error("expected exercise to be expanded after second toggle")
	}
}

func TestEndCardioSumsSetCalories(t *testing.T) {
	e, st, clock := setupEngine(t)

	if _, err := e.Start("Cardio"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	ex, _ := e.AddExercise("Running")
	if _, err := e.AddSet(ex.ID, 30, nil, float(300)); err != nil {
		t.Fatalf("AddSet failed: %v", err)
	}

	clock.Advance(45 * time.Minute)
	rec, err := e.End()
	if err != nil {
		t.Fatalf("End failed: %v", err)
	}

	// Cardio calories come from the sets, independent of duration
	if rec.Calories != 300 {
		t.Errorf("Calories = %d, want 300", rec.Calories)
	}
	if rec.Duration != 45 {
		t.Errorf("Duration = %d minutes, want 45", rec.Duration)
	}
	if rec.BodyPart != "Cardio" || rec.Name != "Cardio Workout" {
		t.Errorf("unexpected record identity: %+v", rec)
	}
	if rec.Status != models.SessionStatusCompleted {
		t.Errorf("Status = %s, want Completed", rec.Status)
	}
	if rec.Notes != "1 exercises completed" {
		t.Errorf("Notes = %q", rec.Notes)
	}

	if e.Current() != nil {
		t.Error("expected active session to be cleared")
	}
	if got := store.LoadSessions(st); len(got) != 1 || got[0].ID != rec.ID {
		t.Errorf("expected record to be persisted first, got %v", got)
	}
}

func TestEndCardioFloorsFractionalSum(t *testing.T) {
	e, _, clock := setupEngine(t)

	if _, err := e.Start("Cardio"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	ex, _ := e.AddExercise("Rowing")
	if _, err := e.AddSet(ex.ID, 20, nil, float(100.4)); err != nil {
		t.Fatalf("AddSet failed: %v", err)
	}
	if _, err := e.AddSet(ex.ID, 20, nil, float(100.4)); err != nil {
		t.Fatalf("AddSet failed: %v", err)
	}

	clock.Advance(10 * time.Minute)
	rec, err := e.End()
	if err != nil {
		t.Fatalf("End failed: %v", err)
	}

	// 200.8 floors to whole kcal
	if rec.Calories != 200 {
		t.Errorf("Calories = %d, want 200", rec.Calories)
	}
}

func TestEndStrengthEstimatesFromDuration(t *testing.T) {
	e, st, clock := setupEngine(t)

	if _, err := e.Start("Legs"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	ex, _ := e.AddExercise("Squats")
	if _, err := e.AddSet(ex.ID, 10, float(50), nil); err != nil {
		t.Fatalf("AddSet failed: %v", err)
	}
	if _, err := e.AddSet(ex.ID, 8, float(55), nil); err != nil {
		t.Fatalf("AddSet failed: %v", err)
	}

	clock.Advance(600 * time.Second)
	rec, err := e.End()
	if err != nil {
		t.Fatalf("End failed: %v", err)
	}

	// 600 seconds = 10 minutes at 6 calories per minute
	if rec.Calories != 60 {
		t.Errorf("Calories = %d, want 60", rec.Calories)
	}
	if rec.Duration != 10 {
		t.Errorf("Duration = %d minutes, want 10", rec.Duration)
	}

	// Daily accumulators: calories plus the rough step estimate
	if got := store.DailyCalories(st); got != 60 {
		t.Errorf("DailyCalories = %d, want 60", got)
	}
	if got := store.DailySteps(st); got != 1200 {
		t.Errorf("DailySteps = %d, want 1200", got)
	}
}

func TestEndWithoutSession(t *testing.T) {
	e, st, _ := setupEngine(t)

	rec, err := e.End()
	if err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if rec != nil {
		t.Error("expected nil record with no session")
	}
	if got := store.LoadSessions(st); len(got) != 0 {
		t.Error("expected nothing persisted")
	}
}

func TestActiveSessionSurvivesRestart(t *testing.T) {
	e, st, clock := setupEngine(t)

	if _, err := e.Start("Chest"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	ex, _ := e.AddExercise("Push-ups")
	if _, err := e.AddSet(ex.ID, 20, float(0), nil); err != nil {
		t.Fatalf("AddSet failed: %v", err)
	}

	clock.Advance(2 * time.Minute)

	// A fresh engine over the same store picks the session back up
	restored := NewEngine(st, clock.Now)
	s := restored.Current()
	if s == nil {
		t.Fatal("expected restored session")
	}
	if s.BodyPart != "Chest" || len(s.Exercises) != 1 {
		t.Errorf("unexpected restored session: %+v", s)
	}
	if s.Duration != 120 {
		t.Errorf("restored Duration = %d, want 120", s.Duration)
	}
}
