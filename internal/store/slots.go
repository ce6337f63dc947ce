// ABOUTME: Typed accessors for the named persistence slots.
// ABOUTME: Reads degrade to defaults on absent or malformed blobs; writes report errors.
package store

import (
	"encoding/json"
	"strconv"

	"github.com/harperreed/fittrack/internal/models"
)

// LoadSessions returns the persisted session list, most-recent-first.
// Absent or malformed data reads as an empty list.
func LoadSessions(s Store) []models.CompletedSessionRecord {
	data, err := s.Get(SlotSessions)
	if err != nil {
		return nil
	}
	var sessions []models.CompletedSessionRecord
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil
	}
	return sessions
}

// SaveSessions overwrites the persisted session list.
func SaveSessions(s Store, sessions []models.CompletedSessionRecord) error {
	data, err := json.Marshal(sessions)
	if err != nil {
		return err
	}
	return s.Set(SlotSessions, data)
}

// PrependSession adds a completed record to the front of the session
// list, keeping most-recent-first order.
func PrependSession(s Store, rec models.CompletedSessionRecord) error {
	sessions := append([]models.CompletedSessionRecord{rec}, LoadSessions(s)...)
	return SaveSessions(s, sessions)
}

// DeleteSession removes a record from the persisted list by ID.
// Returns false when no record matched.
func DeleteSession(s Store, id string) (bool, error) {
	sessions := LoadSessions(s)
	kept := sessions[:0]
	for _, rec := range sessions {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(sessions) {
		return false, nil
	}
	return true, SaveSessions(s, kept)
}

// LoadGoals returns the persisted goal list, empty when absent or malformed.
func LoadGoals(s Store) []models.Goal {
	data, err := s.Get(SlotGoals)
	if err != nil {
		return nil
	}
	var goals []models.Goal
	if err := json.Unmarshal(data, &goals); err != nil {
		return nil
	}
	return goals
}

// SaveGoals overwrites the persisted goal list. An empty list clears
// the slot entirely instead of persisting an empty array.
func SaveGoals(s Store, goals []models.Goal) error {
	if len(goals) == 0 {
		return s.Delete(SlotGoals)
	}
	data, err := json.Marshal(goals)
	if err != nil {
		return err
	}
	return s.Set(SlotGoals, data)
}

// LoadMetrics returns the manual chart buckets, zeroed when absent or
// malformed.
func LoadMetrics(s Store) models.PeriodMetrics {
	data, err := s.Get(SlotMetrics)
	if err != nil {
		return models.NewPeriodMetrics()
	}
	var pm models.PeriodMetrics
	if err := json.Unmarshal(data, &pm); err != nil {
		return models.NewPeriodMetrics()
	}
	pm.Normalize()
	return pm
}

// SaveMetrics overwrites the manual chart buckets.
func SaveMetrics(s Store, pm models.PeriodMetrics) error {
	data, err := json.Marshal(pm)
	if err != nil {
		return err
	}
	return s.Set(SlotMetrics, data)
}

// DailyCalories returns the running daily-calorie counter, 0 when unset.
func DailyCalories(s Store) int {
	return loadCounter(s, SlotDailyCalories)
}

// AddDailyCalories increments the daily-calorie counter and returns the
// new value.
func AddDailyCalories(s Store, delta int) (int, error) {
	return addCounter(s, SlotDailyCalories, delta)
}

// ResetDailyCalories zeroes the daily-calorie counter.
func ResetDailyCalories(s Store) error {
	return saveCounter(s, SlotDailyCalories, 0)
}

// DailySteps returns the running daily-step counter, 0 when unset.
func DailySteps(s Store) int {
	return loadCounter(s, SlotDailySteps)
}

// AddDailySteps increments the daily-step counter and returns the new value.
func AddDailySteps(s Store, delta int) (int, error) {
	return addCounter(s, SlotDailySteps, delta)
}

// SetDailySteps overwrites the daily-step counter.
func SetDailySteps(s Store, steps int) error {
	return saveCounter(s, SlotDailySteps, steps)
}

// StepsDate returns the date stamp the step counter belongs to, empty
// when unset.
func StepsDate(s Store) string {
	data, err := s.Get(SlotStepsDate)
	if err != nil {
		return ""
	}
	return string(data)
}

// SetStepsDate stamps the step counter's date.
func SetStepsDate(s Store, date string) error {
	return s.Set(SlotStepsDate, []byte(date))
}

// LoadActiveSession returns the persisted active workout session, nil
// when there is none or the blob is malformed.
func LoadActiveSession(s Store) *models.WorkoutSession {
	data, err := s.Get(SlotActiveWorkout)
	if err != nil {
		return nil
	}
	var session models.WorkoutSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil
	}
	return &session
}

// SaveActiveSession persists the active workout session.
func SaveActiveSession(s Store, session *models.WorkoutSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.Set(SlotActiveWorkout, data)
}

// ClearActiveSession removes the active workout slot.
func ClearActiveSession(s Store) error {
	return s.Delete(SlotActiveWorkout)
}

func loadCounter(s Store, key string) int {
	data, err := s.Get(key)
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return 0
	}
	return n
}

func saveCounter(s Store, key string, value int) error {
	return s.Set(key, []byte(strconv.Itoa(value)))
}

func addCounter(s Store, key string, delta int) (int, error) {
	value := loadCounter(s, key) + delta
	return value, saveCounter(s, key, value)
}
