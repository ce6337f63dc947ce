// ABOUTME: CLI commands for aggregated metrics and exercise progress.
// ABOUTME: Shows weekly/monthly bucket summaries and per-exercise series.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/metrics"
	"github.com/harperreed/fittrack/internal/store"
	"github.com/spf13/cobra"
)

var metricsPeriod string

var metricsCmd = &cobra.Command{
	Use:     "metrics",
	Aliases: []string{"m"},
	Short:   "Show aggregated fitness metrics",
	Long: `Show calories, steps, and workout counts aggregated into period buckets.

The week view has one bucket per day (Mon..Sun); the month view has one
per week (Week 1..4). Bucket values are maintained with 'metrics set'.

EXAMPLES:

  fittrack metrics                       # Weekly view
  fittrack metrics --period month        # Monthly view
  fittrack metrics set week calories 0 350`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !metrics.IsValidPeriod(metricsPeriod) {
			return fmt.Errorf("unknown period: %s (use week or month)", metricsPeriod)
		}
		period := metrics.Period(metricsPeriod)

		pm := store.LoadMetrics(appStore)
		data := period.Data(pm)
		labels := period.Labels()
		summary := metrics.Summarize(data)

		bold := color.New(color.Bold)
		bold.Printf("Metrics (%s)\n\n", period)

		fmt.Printf("%s %9s %9s %9s\n", padRight("", 8), "calories", "steps", "workouts")
		for i, label := range labels {
			fmt.Printf("%s %9d %9d %9d\n",
				padRight(label, 8),
				data.Calories[i],
				data.Steps[i],
				data.Workouts[i])
		}

		fmt.Println()
		fmt.Printf("Avg calories: %d kcal\n", summary.AvgCalories)
		fmt.Printf("Avg steps:    %d\n", summary.AvgSteps)
		fmt.Printf("Workouts:     %d\n", summary.TotalWorkouts)

		return nil
	},
}

var metricsSetCmd = &cobra.Command{
	Use:   "set <period> <series> <bucket> <value>",
	Short: "Set a metrics bucket value",
	Long: `Set one bucket of a metrics series.

The period is week or month, the series is calories, steps, or workouts,
and the bucket is a zero-based index (0-6 for week, 0-3 for month).

Examples:
  fittrack metrics set week calories 0 350   # Monday's calories
  fittrack metrics set month workouts 2 4    # Week 3's workout count`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !metrics.IsValidPeriod(args[0]) {
			return fmt.Errorf("unknown period: %s (use week or month)", args[0])
		}
		period := metrics.Period(args[0])

		bucket, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid bucket index: %s", args[2])
		}
		value, err := strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("invalid value: %s", args[3])
		}

		pm := store.LoadMetrics(appStore)
		data := period.Data(pm)

		var series []int
		switch args[1] {
		case "calories":
			series = data.Calories
		case "steps":
			series = data.Steps
		case "workouts":
			series = data.Workouts
		default:
			return fmt.Errorf("unknown series: %s (use calories, steps, or workouts)", args[1])
		}

		if bucket < 0 || bucket >= len(series) {
			return fmt.Errorf("bucket index out of range: %d (period %s has %d buckets)", bucket, period, len(series))
		}
		series[bucket] = value

		if period == metrics.PeriodWeek {
			pm.Week = data
		} else {
			pm.Month = data
		}
		if err := store.SaveMetrics(appStore, pm); err != nil {
			return fmt.Errorf("failed to save metrics: %w", err)
		}

		color.Green("✓ Set %s %s[%d] = %d", period, args[1], bucket, value)
		return nil
	},
}

var progressCmd = &cobra.Command{
	Use:   "progress [exercise]",
	Short: "Show per-exercise strength progress",
	Long: `Show per-exercise progress derived from workout history.

For each exercise and workout date, shows the heaviest set, the highest
rep count, and the total volume (reps x weight summed over sets).
Exercise names are matched case-sensitively.

EXAMPLES:

  fittrack progress                      # All exercises
  fittrack progress "Bench Press"        # One exercise`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		series := metrics.BuildExerciseProgress(store.LoadSessions(appStore))
		if len(series) == 0 {
			fmt.Println("No exercise history found.")
			return nil
		}

		names := metrics.ExerciseNames(series)
		if len(args) == 1 {
			if _, ok := series[args[0]]; !ok {
				return fmt.Errorf("no history for exercise: %s", args[0])
			}
			names = []string{args[0]}
		}

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)
		for _, name := range names {
			bold.Println(name)
			for _, p := range series[name] {
				fmt.Printf("  %s  max %g kg  %d reps  volume %g\n",
					faint.Sprint(padRight(p.Date, 14)),
					p.MaxWeight, p.MaxReps, p.TotalVolume)
			}
		}

		return nil
	},
}

func init() {
	metricsCmd.Flags().StringVarP(&metricsPeriod, "period", "p", "week", "aggregation period: week or month")

	metricsCmd.AddCommand(metricsSetCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(progressCmd)
}
