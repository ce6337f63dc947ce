// ABOUTME: Tests for the goal tracker.
// ABOUTME: Covers creation validation, duplicates, progress overwrite, and deletion.
package goals

import (
	"errors"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/store"
)

func setupTracker(t *testing.T) (*Tracker, *store.SQLiteStore) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "fittrack.db")
	st, err := store.OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	now := time.Date(2025, time.June, 15, 9, 0, 0, 0, time.UTC)
	return NewTracker(st, func() time.Time { return now }), st
}

func TestCreateGoal(t *testing.T) {
	tr, _ := setupTracker(t)

	g, err := tr.Create(CreateInput{
		Name:   "Weekly Workouts",
		Type:   models.GoalWorkoutsPerWeek,
		Target: 5,
		Unit:   "workouts",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID == "" || g.Current != 0 {
		t.Errorf("unexpected goal: %+v", g)
	}
	if g.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	goals := tr.List()
	if len(goals) != 1 || goals[0].Name != "Weekly Workouts" {
		t.Errorf("unexpected list: %+v", goals)
	}
}

func TestCreateValidation(t *testing.T) {
	tr, _ := setupTracker(t)

	cases := []struct {
		name  string
		input CreateInput
		want  error
	}{
		{"blank name", CreateInput{Name: "  ", Type: models.GoalCustom, Target: 10, Unit: "km"}, ErrMissingFields},
		{"blank unit", CreateInput{Name: "Run", Type: models.GoalCustom, Target: 10, Unit: ""}, ErrMissingFields},
		{"zero target", CreateInput{Name: "Run", Type: models.GoalCustom, Target: 0, Unit: "km"}, ErrInvalidTarget},
		{"negative target", CreateInput{Name: "Run", Type: models.GoalCustom, Target: -3, Unit: "km"}, ErrInvalidTarget},
		{"NaN target", CreateInput{Name: "Run", Type: models.GoalCustom, Target: math.NaN(), Unit: "km"}, ErrInvalidTarget},
		{"bad deadline", CreateInput{Name: "Run", Type: models.GoalCustom, Target: 10, Unit: "km", Deadline: "soon"}, ErrInvalidDeadline},
		{"past deadline", CreateInput{Name: "Run", Type: models.GoalCustom, Target: 10, Unit: "km", Deadline: "2025-06-14"}, ErrPastDeadline},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tr.Create(tc.input); !errors.Is(err, tc.want) {
				t.Errorf("Create = %v, want %v", err, tc.want)
			}
		})
	}

	// Rejections leave the goal list untouched
	if got := tr.List(); len(got) != 0 {
		t.Errorf("expected no goals after rejections, got %d", len(got))
	}

	// A deadline of today is allowed
	if _, err := tr.Create(CreateInput{Name: "Run", Type: models.GoalCustom, Target: 10, Unit: "km", Deadline: "2025-06-15"}); err != nil {
		t.Errorf("today deadline rejected: %v", err)
	}
}

func TestCreateDuplicateName(t *testing.T) {
	tr, _ := setupTracker(t)

	if _, err := tr.Create(CreateInput{Name: "Weight Loss", Type: models.GoalWeightLoss, Target: 10, Unit: "lbs"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Case-insensitive match
	_, err := tr.Create(CreateInput{Name: "weight loss", Type: models.GoalWeightLoss, Target: 5, Unit: "lbs"})
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName, got %v", err)
	}
	if got := tr.List(); len(got) != 1 {
		t.Errorf("expected 1 goal, got %d", len(got))
	}
}

func TestUpdateProgress(t *testing.T) {
	tr, _ := setupTracker(t)

	g, err := tr.Create(CreateInput{Name: "Daily Calories Burned", Type: models.GoalCalories, Target: 500, Unit: "calories"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	changed, err := tr.UpdateProgress(g.ID, 650)
	if err != nil {
		t.Fatalf("UpdateProgress failed: %v", err)
	}
	if !changed {
		t.Error("expected update to report change")
	}

	// Current is not clamped at write time
	got := tr.Find(g.ID)
	if got == nil || got.Current != 650 {
		t.Errorf("Current = %v, want 650", got)
	}
	if got.Percent() != 100 {
		t.Errorf("Percent = %v, want display-time clamp to 100", got.Percent())
	}

	if changed, _ := tr.UpdateProgress("missing", 10); changed {
		t.Error("expected no-op for unknown goal")
	}
}

func TestDeleteGoal(t *testing.T) {
	tr, st := setupTracker(t)

	g1, _ := tr.Create(CreateInput{Name: "One", Type: models.GoalCustom, Target: 1, Unit: "x"})
	g2, _ := tr.Create(CreateInput{Name: "Two", Type: models.GoalCustom, Target: 2, Unit: "x"})

	removed, err := tr.Delete(g1.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !removed {
		t.Error("expected removal")
	}
	if got := tr.List(); len(got) != 1 || got[0].ID != g2.ID {
		t.Errorf("unexpected remaining goals: %+v", got)
	}

	// Deleting the last goal clears the persisted slot entirely
	if _, err := tr.Delete(g2.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := st.Get(store.SlotGoals); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected cleared slot, got %v", err)
	}

	if removed, _ := tr.Delete("missing"); removed {
		t.Error("expected no-op for unknown goal")
	}
}

func TestPrefill(t *testing.T) {
	t.Run("blank fields take template values", func(t *testing.T) {
		got := Prefill(CreateInput{Type: models.GoalCalories, Target: 500})
		if got.Name != "Daily Calories Burned" {
			t.Errorf("Name = %q", got.Name)
		}
		if got.Unit != "calories" {
			t.Errorf("Unit = %q", got.Unit)
		}
		if got.Description != "Track daily calorie burn goal" {
			t.Errorf("Description = %q", got.Description)
		}
	})

	t.Run("explicit fields win", func(t *testing.T) {
		got := Prefill(CreateInput{Name: "Burn", Type: models.GoalCalories, Target: 500, Unit: "kcal"})
		if got.Name != "Burn" || got.Unit != "kcal" {
			t.Errorf("explicit fields overwritten: %+v", got)
		}
	})

	t.Run("custom type has no unit to prefill", func(t *testing.T) {
		got := Prefill(CreateInput{Type: models.GoalCustom, Target: 30})
		if got.Unit != "" {
			t.Errorf("Unit = %q, want blank", got.Unit)
		}

		tr, _ := setupTracker(t)
		if _, err := tr.Create(got); !errors.Is(err, ErrMissingFields) {
			t.Errorf("Create = %v, want ErrMissingFields", err)
		}
	})

	t.Run("prefilled input passes creation", func(t *testing.T) {
		tr, _ := setupTracker(t)
		goal, err := tr.Create(Prefill(CreateInput{Type: models.GoalWorkoutsPerWeek, Target: 5}))
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if goal.Name != "Weekly Workouts" || goal.Unit != "workouts" {
			t.Errorf("unexpected goal: %+v", goal)
		}
	})
}

func TestTemplates(t *testing.T) {
	for _, gt := range models.AllGoalTypes {
		if _, ok := Templates[gt]; !ok {
			t.Errorf("missing template for %s", gt)
		}
	}
	if Templates[models.GoalWorkoutsPerWeek].Unit != "workouts" {
		t.Errorf("unexpected template: %+v", Templates[models.GoalWorkoutsPerWeek])
	}
}
