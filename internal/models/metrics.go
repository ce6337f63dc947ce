// ABOUTME: Manual chart-bucket models for the metrics page.
// ABOUTME: Week has 7 day buckets (Mon-Sun), month has 4 week buckets.
package models

// Bucket counts per period.
const (
	WeekBuckets  = 7
	MonthBuckets = 4
)

// MetricsData holds one period's manually maintained chart buckets.
// These counters are edited directly by the user and are not derived
// from completed session records.
type MetricsData struct {
	Calories []int `json:"calories"`
	Steps    []int `json:"steps"`
	Workouts []int `json:"workouts"`
}

// NewMetricsData returns zeroed buckets of the given size.
func NewMetricsData(buckets int) MetricsData {
	return MetricsData{
		Calories: make([]int, buckets),
		Steps:    make([]int, buckets),
		Workouts: make([]int, buckets),
	}
}

// PeriodMetrics is the full persisted fitness-metrics blob.
type PeriodMetrics struct {
	Week  MetricsData `json:"week"`
	Month MetricsData `json:"month"`
}

// NewPeriodMetrics returns empty week and month buckets.
func NewPeriodMetrics() PeriodMetrics {
	return PeriodMetrics{
		Week:  NewMetricsData(WeekBuckets),
		Month: NewMetricsData(MonthBuckets),
	}
}

// Normalize resizes every bucket slice to its period's fixed length,
// padding with zeros and dropping extras. Persisted blobs written by
// other tools may carry the wrong number of buckets.
func (pm *PeriodMetrics) Normalize() {
	pm.Week.resize(WeekBuckets)
	pm.Month.resize(MonthBuckets)
}

func (d *MetricsData) resize(buckets int) {
	d.Calories = resizeBuckets(d.Calories, buckets)
	d.Steps = resizeBuckets(d.Steps, buckets)
	d.Workouts = resizeBuckets(d.Workouts, buckets)
}

func resizeBuckets(values []int, buckets int) []int {
	if len(values) == buckets {
		return values
	}
	out := make([]int, buckets)
	copy(out, values)
	return out
}
