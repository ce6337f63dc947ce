// ABOUTME: Metrics aggregation: period summaries and per-exercise progress series.
// ABOUTME: Pure functions over manual chart buckets and completed session records.
package metrics

import (
	"math"
	"sort"
	"time"

	"github.com/harperreed/fittrack/internal/models"
)

// Period selects which set of manual chart buckets to aggregate.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// IsValidPeriod checks if a string is a valid period.
func IsValidPeriod(s string) bool {
	return s == string(PeriodWeek) || s == string(PeriodMonth)
}

// Labels returns the chart bucket labels for the period.
func (p Period) Labels() []string {
	if p == PeriodMonth {
		return []string{"Week 1", "Week 2", "Week 3", "Week 4"}
	}
	return []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
}

// Data returns the period's buckets from the persisted blob.
func (p Period) Data(pm models.PeriodMetrics) models.MetricsData {
	if p == PeriodMonth {
		return pm.Month
	}
	return pm.Week
}

// Summary is the aggregate view of one period's buckets.
type Summary struct {
	AvgCalories   int
	AvgSteps      int
	TotalCalories int
	TotalSteps    int
	TotalWorkouts int
}

// Summarize computes averages and totals over the period's buckets.
// Averages are the rounded mean over the bucket count, 0 when there are
// no buckets.
func Summarize(data models.MetricsData) Summary {
	return Summary{
		AvgCalories:   mean(data.Calories),
		AvgSteps:      mean(data.Steps),
		TotalCalories: sum(data.Calories),
		TotalSteps:    sum(data.Steps),
		TotalWorkouts: sum(data.Workouts),
	}
}

// ProgressPoint is one session's strength data for a single exercise.
type ProgressPoint struct {
	Date        string
	MaxWeight   float64
	MaxReps     int
	TotalVolume float64
}

// BuildExerciseProgress derives per-exercise progress series from
// completed session records. Exercises are grouped by exact name;
// sessions where an exercise has no sets are excluded from its series.
// Each series is ordered ascending by session date, ties keeping the
// records' input order.
func BuildExerciseProgress(records []models.CompletedSessionRecord) map[string][]ProgressPoint {
	series := make(map[string][]ProgressPoint)

	for _, rec := range records {
		for _, ex := range rec.Exercises {
			if len(ex.Sets) == 0 {
				continue
			}

			point := ProgressPoint{Date: rec.Date}
			for _, set := range ex.Sets {
				weight := 0.0
				if set.Weight != nil {
					weight = *set.Weight
				}
				if weight > point.MaxWeight {
					point.MaxWeight = weight
				}
				if set.Reps > point.MaxReps {
					point.MaxReps = set.Reps
				}
				point.TotalVolume += float64(set.Reps) * weight
			}
			series[ex.Name] = append(series[ex.Name], point)
		}
	}

	for name := range series {
		points := series[name]
		sort.SliceStable(points, func(i, j int) bool {
			return parseDate(points[i].Date).Before(parseDate(points[j].Date))
		})
	}

	return series
}

// ExerciseNames returns the series keys in sorted order for stable display.
func ExerciseNames(series map[string][]ProgressPoint) []string {
	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// parseDate parses a record date, returning the zero time for
// unparseable strings so they order first.
func parseDate(s string) time.Time {
	t, err := time.Parse(models.RecordDateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func mean(values []int) int {
	if len(values) == 0 {
		return 0
	}
	return int(math.Round(float64(sum(values)) / float64(len(values))))
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
