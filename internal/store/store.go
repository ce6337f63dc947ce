// ABOUTME: Store interface and named-slot keys for local persistence.
// ABOUTME: A slot is an independently read/written string blob; last write wins.
package store

import "errors"

// Slot keys. Each slot is written and read independently; there are no
// cross-slot transactions.
const (
	SlotSessions      = "workout-sessions"
	SlotGoals         = "fitness-goals"
	SlotMetrics       = "fitness-metrics"
	SlotDailyCalories = "daily-calories"
	SlotDailySteps    = "dailySteps"
	SlotStepsDate     = "stepsDate"
	SlotActiveWorkout = "active-workout"
)

// AllSlots lists every slot key, in migration/export order.
var AllSlots = []string{
	SlotSessions,
	SlotGoals,
	SlotMetrics,
	SlotDailyCalories,
	SlotDailySteps,
	SlotStepsDate,
	SlotActiveWorkout,
}

// ErrNotFound is returned by Get for absent slots.
var ErrNotFound = errors.New("not found")

// Store is a synchronous key-to-blob store keyed by named slots.
// This interface allows swapping backends (sqlite, charm kv, tests).
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}
