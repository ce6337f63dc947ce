// ABOUTME: Daily step counter with date rollover, persisted to the dailySteps slot.
// ABOUTME: Steps arrive from a pluggable Source: a motion detector or a simulator.
package steps

import (
	"time"

	"github.com/harperreed/fittrack/internal/store"
)

// DateLayout stamps the day the step counter belongs to.
const DateLayout = "Mon Jan 02 2006"

// Tracker accumulates today's steps in the store, resetting the counter
// when the stamped date no longer matches today.
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

// Steps returns today's step count, rolling the counter over to 0 first
// when the persisted date stamp is stale.
func (t *Tracker) Steps() (int, error) {
	if err := t.rollover(); err != nil {
		return 0, err
	}
	return store.DailySteps(t.store), nil
}

// Add increments today's step count and returns the new value.
func (t *Tracker) Add(delta int) (int, error) {
	if err := t.rollover(); err != nil {
		return 0, err
	}
	return store.AddDailySteps(t.store, delta)
}

// Reset zeroes the counter and stamps it with today's date.
func (t *Tracker) Reset() error {
	if err := store.SetDailySteps(t.store, 0); err != nil {
		return err
	}
	return store.SetStepsDate(t.store, t.today())
}

func (t *Tracker) today() string {
	return t.now().Format(DateLayout)
}

// rollover resets the counter for a new day.
func (t *Tracker) rollover() error {
	if store.StepsDate(t.store) == t.today() {
		return nil
	}
	return t.Reset()
}
