// ABOUTME: Goal model and GoalType enum for user-defined fitness goals.
// ABOUTME: Progress percent/remaining are display-time only; Current is never clamped.
package models

import (
	"time"

	"github.com/google/uuid"
)

// GoalType is the fixed enumeration of goal categories.
type GoalType string

const (
	GoalCalories        GoalType = "calories"
	GoalWeightLoss      GoalType = "weight_loss"
	GoalWeightGain      GoalType = "weight_gain"
	GoalWorkoutsPerWeek GoalType = "workouts_per_week"
	GoalCustom          GoalType = "custom"
)

// AllGoalTypes lists all valid goal types.
var AllGoalTypes = []GoalType{
	GoalCalories, GoalWeightLoss, GoalWeightGain, GoalWorkoutsPerWeek, GoalCustom,
}

// IsValidGoalType checks if a string is a valid goal type.
func IsValidGoalType(s string) bool {
	for _, gt := range AllGoalTypes {
		if string(gt) == s {
			return true
		}
	}
	return false
}

// DeadlineLayout is the calendar-date format for goal deadlines.
const DeadlineLayout = "2006-01-02"

// Goal is a user-defined target with manually updated progress.
// Name uniqueness (case-insensitive) is enforced at creation time only.
type Goal struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        GoalType  `json:"type"`
	Target      float64   `json:"target"`
	Unit        string    `json:"unit"`
	Current     float64   `json:"current"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	Deadline    string    `json:"deadline,omitempty"`
}

// NewGoal creates a Goal with a generated UUID, zero progress, and the
// given creation timestamp.
func NewGoal(name string, goalType GoalType, target float64, unit string, createdAt time.Time) *Goal {
	return &Goal{
		ID:        uuid.New().String(),
		Name:      name,
		Type:      goalType,
		Target:    target,
		Unit:      unit,
		CreatedAt: createdAt,
	}
}

// WithDescription sets an optional description.
func (g *Goal) WithDescription(description string) *Goal {
	g.Description = description
	return g
}

// WithDeadline sets an optional deadline date string.
func (g *Goal) WithDeadline(deadline string) *Goal {
	g.Deadline = deadline
	return g
}

// Percent returns completion clamped to [0, 100].
func (g *Goal) Percent() float64 {
	if g.Target == 0 {
		return 0
	}
	pct := g.Current / g.Target * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// Remaining returns how much is left to the target, floored at 0.
func (g *Goal) Remaining() float64 {
	remaining := g.Target - g.Current
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Achieved reports whether the goal has been met or exceeded.
func (g *Goal) Achieved() bool {
	return g.Current >= g.Target
}
