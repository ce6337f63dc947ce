// ABOUTME: WorkoutSession, Exercise, and Set models for workout tracking.
// ABOUTME: Sessions own ordered exercises; exercises own ordered sets.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CardioBodyPart is the body-part label that switches a session to
// calorie-based set semantics. Matching is case-insensitive.
const CardioBodyPart = "cardio"

// Set is a single set within an exercise. Reps means repetitions for
// strength work and minutes for cardio. Exactly one of Weight/Calories
// is populated, determined by the parent session's body part; the
// caller supplies the right one.
type Set struct {
	Reps     int      `json:"reps"`
	Weight   *float64 `json:"weight,omitempty"`
	Calories *float64 `json:"calories,omitempty"`
}

// Exercise is an ordered list of sets under a free-text name.
// IsMinimized is a display affordance only.
type Exercise struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Sets        []Set  `json:"sets"`
	IsMinimized bool   `json:"isMinimized"`
}

// NewExercise creates an expanded Exercise with a generated UUID and no sets.
func NewExercise(name string) *Exercise {
	return &Exercise{
		ID:   uuid.New().String(),
		Name: name,
		Sets: []Set{},
	}
}

// WorkoutSession is the single in-progress workout. At most one session
// is active at a time; it is owned and mutated by the workout engine.
type WorkoutSession struct {
	ID        string     `json:"id"`
	BodyPart  string     `json:"bodyPart"`
	StartTime time.Time  `json:"startTime"`
	Exercises []Exercise `json:"exercises"`
	IsActive  bool       `json:"isActive"`
	IsPaused  bool       `json:"isPaused"`

	// Duration is elapsed seconds since StartTime, recomputed while the
	// session is active and not paused, frozen otherwise.
	Duration int `json:"duration"`
}

// NewWorkoutSession creates an active, unpaused session starting now.
func NewWorkoutSession(bodyPart string, start time.Time) *WorkoutSession {
	return &WorkoutSession{
		ID:        uuid.New().String(),
		BodyPart:  bodyPart,
		StartTime: start,
		Exercises: []Exercise{},
		IsActive:  true,
	}
}

// IsCardio reports whether the session uses calorie-based set semantics.
func (s *WorkoutSession) IsCardio() bool {
	return strings.EqualFold(s.BodyPart, CardioBodyPart)
}

// FindExercise returns the exercise with the given ID, or nil.
func (s *WorkoutSession) FindExercise(exerciseID string) *Exercise {
	for i := range s.Exercises {
		if s.Exercises[i].ID == exerciseID {
			return &s.Exercises[i]
		}
	}
	return nil
}

// SessionStatusCompleted is the status stamped on every persisted record.
const SessionStatusCompleted = "Completed"

// RecordDateLayout is the calendar-date format used on completed records.
const RecordDateLayout = "Jan 2, 2006"

// CompletedSessionRecord is the immutable snapshot written when a
// session ends. It is prepended to the persisted session list
// (most-recent-first) and never mutated, only deleted wholesale.
type CompletedSessionRecord struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	BodyPart  string     `json:"bodyPart"`
	Date      string     `json:"date"`
	Duration  int        `json:"duration"` // whole minutes, floored
	Calories  int        `json:"calories"`
	Status    string     `json:"status"`
	Notes     string     `json:"notes"`
	Exercises []Exercise `json:"exercises"`
}

// RecordDate parses the record's calendar date. The zero time is
// returned for dates that do not match RecordDateLayout.
func (r *CompletedSessionRecord) RecordDate() time.Time {
	t, err := time.Parse(RecordDateLayout, r.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}
