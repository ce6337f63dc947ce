// ABOUTME: Tests for the Goal model.
// ABOUTME: Validates constructor defaults and progress math.
package models

import (
	"testing"
	"time"
)

func TestNewGoal(t *testing.T) {
	now := time.Now()
	g := NewGoal("Weekly Workouts", GoalWorkoutsPerWeek, 5, "workouts", now)

	if g.ID == "" {
		t.Error("expected ID to be set")
	}
	if g.Current != 0 {
		t.Errorf("Current = %f, want 0", g.Current)
	}
	if !g.CreatedAt.Equal(now) {
		t.Error("expected CreatedAt to match")
	}
	if g.Deadline != "" || g.Description != "" {
		t.Error("expected optional fields to be empty")
	}
}

func TestGoalPercent(t *testing.T) {
	cases := []struct {
		current, target float64
		want            float64
	}{
		{0, 100, 0},
		{50, 100, 50},
		{100, 100, 100},
		{150, 100, 100}, // clamped
		{3, 4, 75},
	}

	for _, tc := range cases {
		g := Goal{Current: tc.current, Target: tc.target}
		if got := g.Percent(); got != tc.want {
			t.Errorf("Percent(%v/%v) = %v, want %v", tc.current, tc.target, got, tc.want)
		}
	}
}

func TestGoalRemaining(t *testing.T) {
	g := Goal{Current: 30, Target: 100}
	if got := g.Remaining(); got != 70 {
		t.Errorf("Remaining() = %v, want 70", got)
	}

	over := Goal{Current: 120, Target: 100}
	if got := over.Remaining(); got != 0 {
		t.Errorf("Remaining() = %v, want 0", got)
	}
}

func TestGoalAchieved(t *testing.T) {
	if (&Goal{Current: 99, Target: 100}).Achieved() {
		t.Error("99/100 should not be achieved")
	}
	if !(&Goal{Current: 100, Target: 100}).Achieved() {
		t.Error("100/100 should be achieved")
	}
	if !(&Goal{Current: 101, Target: 100}).Achieved() {
		t.Error("101/100 should be achieved")
	}
}

func TestIsValidGoalType(t *testing.T) {
	for _, gt := range AllGoalTypes {
		if !IsValidGoalType(string(gt)) {
			t.Errorf("expected %s to be valid", gt)
		}
	}
	if IsValidGoalType("marathon") {
		t.Error("expected marathon to be invalid")
	}
}
