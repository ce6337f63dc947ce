// ABOUTME: Goal tracker: creation with validation, progress updates, deletion.
// ABOUTME: Validation failures are user-facing rejections; nothing partial is written.
package goals

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/store"
)

// Validation failures surfaced to the user on goal creation.
var (
	ErrMissingFields   = errors.New("please fill in all required fields")
	ErrInvalidTarget   = errors.New("please enter a valid target number")
	ErrDuplicateName   = errors.New("a goal with this name already exists")
	ErrPastDeadline    = errors.New("deadline must be today or later")
	ErrInvalidDeadline = errors.New("invalid deadline (use YYYY-MM-DD)")
)

// Template carries the prefilled name, unit, and description for a
// non-custom goal type.
type Template struct {
	Name        string
	Unit        string
	Placeholder string
	Description string
}

// Templates maps each goal type to its creation prefill.
var Templates = map[models.GoalType]Template{
	models.GoalCalories: {
		Name:        "Daily Calories Burned",
		Unit:        "calories",
		Placeholder: "500",
		Description: "Track daily calorie burn goal",
	},
	models.GoalWeightLoss: {
		Name:        "Weight Loss",
		Unit:        "lbs",
		Placeholder: "10",
		Description: "Target weight to lose",
	},
	models.GoalWeightGain: {
		Name:        "Weight Gain",
		Unit:        "lbs",
		Placeholder: "5",
		Description: "Target weight to gain",
	},
	models.GoalWorkoutsPerWeek: {
		Name:        "Weekly Workouts",
		Unit:        "workouts",
		Placeholder: "5",
		Description: "Number of workouts per week",
	},
	models.GoalCustom: {
		Name:        "Custom Goal",
		Placeholder: "30",
		Description: "Create your own goal",
	},
}

// CreateInput is the user-supplied goal definition.
type CreateInput struct {
	Name        string
	Type        models.GoalType
	Target      float64
	Unit        string
	Description string
	Deadline    string // YYYY-MM-DD, optional
}

// Prefill fills blank name, unit, and description fields from the goal
// type's template, the way the creation wizard prefills its form. The
// custom type carries no unit, so blank fields stay blank and Create
// still rejects them.
func Prefill(input CreateInput) CreateInput {
	tpl, ok := Templates[input.Type]
	if !ok {
		return input
	}
	if strings.TrimSpace(input.Name) == "" {
		input.Name = tpl.Name
	}
	if strings.TrimSpace(input.Unit) == "" {
		input.Unit = tpl.Unit
	}
	if strings.TrimSpace(input.Description) == "" {
		input.Description = tpl.Description
	}
	return input
}

// Tracker maintains the persisted goal set.
type Tracker struct {
	store store.Store
	now   func() time.Time
}

// NewTracker creates a tracker bound to the store. A nil clock defaults
// to time.Now.
func NewTracker(st store.Store, now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{store: st, now: now}
}

// List returns all persisted goals.
func (t *Tracker) List() []models.Goal {
	return store.LoadGoals(t.store)
}

// Find returns the goal with the given ID, or nil.
func (t *Tracker) Find(id string) *models.Goal {
	for _, g := range t.List() {
		if g.ID == id {
			goal := g
			return &goal
		}
	}
	return nil
}

// Create validates and persists a new goal. Name uniqueness is checked
// case-insensitively against existing goals at creation time only; a
// rejection leaves the goal list untouched.
func (t *Tracker) Create(input CreateInput) (*models.Goal, error) {
	name := strings.TrimSpace(input.Name)
	unit := strings.TrimSpace(input.Unit)

	if name == "" || unit == "" {
		return nil, ErrMissingFields
	}
	if input.Target <= 0 || math.IsNaN(input.Target) || math.IsInf(input.Target, 0) {
		return nil, ErrInvalidTarget
	}

	existing := t.List()
	for _, g := range existing {
		if strings.EqualFold(g.Name, name) {
			return nil, ErrDuplicateName
		}
	}

	if input.Deadline != "" {
		deadline, err := time.Parse(models.DeadlineLayout, input.Deadline)
		if err != nil {
			return nil, ErrInvalidDeadline
		}
		today, _ := time.Parse(models.DeadlineLayout, t.now().Format(models.DeadlineLayout))
		if deadline.Before(today) {
			return nil, ErrPastDeadline
		}
	}

	goal := models.NewGoal(name, input.Type, input.Target, unit, t.now())
	if input.Description != "" {
		goal.WithDescription(strings.TrimSpace(input.Description))
	}
	if input.Deadline != "" {
		goal.WithDeadline(input.Deadline)
	}

	if err := store.SaveGoals(t.store, append(existing, *goal)); err != nil {
		return nil, err
	}
	return goal, nil
}

// UpdateProgress overwrites a goal's current progress unconditionally;
// clamping to the target happens only at display time. Returns false
// when no goal matched.
func (t *Tracker) UpdateProgress(id string, current float64) (bool, error) {
	goals := t.List()
	for i := range goals {
		if goals[i].ID == id {
			goals[i].Current = current
			return true, store.SaveGoals(t.store, goals)
		}
	}
	return false, nil
}

// Delete permanently removes a goal. Deleting the last goal clears the
// persisted slot entirely. Returns false when no goal matched.
func (t *Tracker) Delete(id string) (bool, error) {
	goals := t.List()
	kept := goals[:0]
	for _, g := range goals {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	if len(kept) == len(goals) {
		return false, nil
	}
	return true, store.SaveGoals(t.store, kept)
}
