// ABOUTME: CLI commands for workout sessions.
// ABOUTME: Supports start, pause, resume, status, end, exercise, set, list, show, and delete.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/store"
	"github.com/harperreed/fittrack/internal/workout"
	"github.com/spf13/cobra"
)

var (
	setWeight   float64
	setCalories float64
	listLimit   int
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Manage workout sessions",
	Long: `Track workout sessions with exercises and sets.

A session belongs to one body part and runs until you end it. The elapsed
duration ticks while the session is active and freezes while paused.

WORKFLOW:

  1. Start a session:      fittrack workout start chest
  2. Add an exercise:      fittrack workout exercise add "Bench Press"
  3. Record sets:          fittrack workout set <exercise-id> 8 --weight 60
  4. Finish:               fittrack workout end

COMMANDS:

  start     Begin a new session for a body part
  pause     Freeze the session timer
  resume    Unfreeze the session timer
  status    Show the active session
  end       Finish the session and save it to history
  exercise  Manage exercises in the active session
  set       Record a set for an exercise
  list      List completed sessions
  show      View a completed session with its exercises
  delete    Delete a completed session

The body part is freeform - use whatever split makes sense for you:
  chest, back, legs, shoulders, arms, core, cardio, etc.

Cardio sessions compute calories from per-set values; everything else
gets a flat estimate from elapsed time.`,
}

var workoutStartCmd = &cobra.Command{
	Use:   "start <body-part>",
	Short: "Start a new workout session",
	Long: `Start a new workout session for a body part.

Only one session can be active at a time; end the current one first.

Examples:
  fittrack workout start chest
  fittrack workout start cardio`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := workout.NewEngine(appStore, nil)
		session, err := engine.Start(args[0])
		if err != nil {
			return err
		}

		color.Green("✓ Started %s workout", session.BodyPart)
		fmt.Printf("  ID: %s\n", session.ID[:8])
		return nil
	},
}

var workoutPauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause the active workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := workout.NewEngine(appStore, nil)
		paused, err := engine.Pause()
		if err != nil {
			return fmt.Errorf("failed to pause workout: %w", err)
		}
		if !paused {
			fmt.Println("No active workout.")
			return nil
		}

		color.Yellow("⏸ Workout paused at %s", formatTime(engine.Current().Duration))
		return nil
	},
}

var workoutResumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume the paused workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := workout.NewEngine(appStore, nil)
		resumed, err := engine.Resume()
		if err != nil {
			return fmt.Errorf("failed to resume workout: %w", err)
		}
		if !resumed {
			fmt.Println("No active workout.")
			return nil
		}

		color.Green("▶ Workout resumed at %s", formatTime(engine.Current().Duration))
		return nil
	},
}

var workoutStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := workout.NewEngine(appStore, nil)
		session := engine.Current()
		if session == nil {
			fmt.Println("No active workout.")
			return nil
		}

		state := "in progress"
		if session.IsPaused {
			state = "paused"
		}
		fmt.Printf("Workout: %s (%s)\n", session.BodyPart, state)
		fmt.Printf("Elapsed: %s\n", formatTime(session.Duration))
		fmt.Printf("Started: %s\n", session.StartTime.Format("2006-01-02 15:04"))

		if len(session.Exercises) > 0 {
			fmt.Println("\nExercises:")
			faint := color.New(color.Faint)
			for _, ex := range session.Exercises {
				fmt.Printf("  %s %s (%d sets)\n",
					faint.Sprint(ex.ID[:8]), ex.Name, len(ex.Sets))
				if ex.IsMinimized {
					continue
				}
				for i, set := range ex.Sets {
					fmt.Printf("    Set %d: %s\n", i+1, formatSet(session, set))
				}
			}
		}

		return nil
	},
}

var workoutEndCmd = &cobra.Command{
	Use:   "end",
	Short: "End the workout and save it to history",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := workout.NewEngine(appStore, nil)
		rec, err := engine.End()
		if err != nil {
			return fmt.Errorf("failed to end workout: %w", err)
		}
		if rec == nil {
			fmt.Println("No active workout.")
			return nil
		}

		color.Green("✓ Completed %s", rec.Name)
		fmt.Printf("  Duration: %d min\n", rec.Duration)
		fmt.Printf("  Calories: %d kcal\n", rec.Calories)
		fmt.Printf("  %s\n", rec.Notes)
		return nil
	},
}

var workoutExerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Manage exercises in the active workout",
}

var workoutExerciseAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an exercise to the active workout",
	Long: `Add an exercise to the active workout session.

Adding an exercise collapses all earlier ones in status output; the newest
exercise stays expanded.

Examples:
  fittrack workout exercise add "Bench Press"
  fittrack workout exercise add Squat`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := workout.NewEngine(appStore, nil)
		ex, err := engine.AddExercise(args[0])
		if err != nil {
			return fmt.Errorf("failed to add exercise: %w", err)
		}
		if ex == nil {
			fmt.Println("No active workout.")
			return nil
		}

		color.Green("✓ Added %s", ex.Name)
		fmt.Printf("  ID: %s\n", ex.ID[:8])
		return nil
	},
}

var workoutExerciseRemoveCmd = &cobra.Command{
	Use:     "remove <exercise-id>",
	Aliases: []string{"rm"},
	Short:   "Remove an exercise and its sets",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := workout.NewEngine(appStore, nil)
		removed, err := engine.RemoveExercise(resolveExerciseID(engine, args[0]))
		if err != nil {
			return fmt.Errorf("failed to remove exercise: %w", err)
		}
		if !removed {
			fmt.Println("No matching exercise in the active workout.")
			return nil
		}

		color.Yellow("✗ Removed exercise")
		return nil
	},
}

var workoutExerciseToggleCmd = &cobra.Command{
	Use:   "toggle <exercise-id>",
	Short: "Collapse or expand an exercise in status output",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := workout.NewEngine(appStore, nil)
		toggled, err := engine.ToggleExerciseMinimized(resolveExerciseID(engine, args[0]))
		if err != nil {
			return fmt.Errorf("failed to toggle exercise: %w", err)
		}
		if !toggled {
			fmt.Println("No matching exercise in the active workout.")
			return nil
		}

		color.Green("✓ Toggled exercise")
		return nil
	},
}

var workoutSetCmd = &cobra.Command{
	Use:   "set <exercise-id> <reps>",
	Short: "Record a set for an exercise",
	Long: `Record a set for an exercise in the active workout.

Use --weight for strength sessions and --calories for cardio sessions.

Examples:
  fittrack workout set abc123 8 --weight 60
  fittrack workout set abc123 1 --calories 150`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		reps, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid reps: %s", args[1])
		}

		var weight, calories *float64
		if cmd.Flags().Changed("weight") {
			weight = &setWeight
		}
		if cmd.Flags().Changed("calories") {
			calories = &setCalories
		}

		engine := workout.NewEngine(appStore, nil)
		added, err := engine.AddSet(resolveExerciseID(engine, args[0]), reps, weight, calories)
		if err != nil {
			return fmt.Errorf("failed to add set: %w", err)
		}
		if !added {
			fmt.Println("No matching exercise in the active workout.")
			return nil
		}

		color.Green("✓ Recorded set: %d reps", reps)
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List completed workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions := store.LoadSessions(appStore)
		if len(sessions) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}
		if listLimit > 0 && len(sessions) > listLimit {
			sessions = sessions[:listLimit]
		}

		faint := color.New(color.Faint)
		for _, rec := range sessions {
			fmt.Printf("%s %s %s %3d min %4d kcal\n",
				faint.Sprint(rec.ID[:8]),
				faint.Sprint(padRight(rec.Date, 12)),
				padRight(rec.Name, 20),
				rec.Duration,
				rec.Calories)
		}

		return nil
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a completed workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec := findSession(args[0])
		if rec == nil {
			return fmt.Errorf("workout not found: %s", args[0])
		}

		fmt.Printf("Workout: %s\n", rec.Name)
		fmt.Printf("Date: %s\n", rec.Date)
		fmt.Printf("Duration: %d min\n", rec.Duration)
		fmt.Printf("Calories: %d kcal\n", rec.Calories)
		fmt.Printf("Status: %s\n", rec.Status)
		fmt.Printf("Notes: %s\n", rec.Notes)

		if len(rec.Exercises) > 0 {
			fmt.Println("\nExercises:")
			for _, ex := range rec.Exercises {
				fmt.Printf("  %s (%d sets)\n", ex.Name, len(ex.Sets))
				for i, set := range ex.Sets {
					detail := fmt.Sprintf("%d reps", set.Reps)
					if set.Weight != nil {
						detail += fmt.Sprintf(" @ %g kg", *set.Weight)
					}
					if set.Calories != nil {
						detail += fmt.Sprintf(", %g kcal", *set.Calories)
					}
					fmt.Printf("    Set %d: %s\n", i+1, detail)
				}
			}
		}

		return nil
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a completed workout",
	Long: `Delete a completed workout by its ID or ID prefix.

CAUTION:

  This permanently deletes the workout. There is no undo.
  Daily calorie and step totals are not adjusted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec := findSession(args[0])
		if rec == nil {
			return fmt.Errorf("workout not found: %s", args[0])
		}

		deleted, err := store.DeleteSession(appStore, rec.ID)
		if err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}
		if !deleted {
			return fmt.Errorf("workout not found: %s", args[0])
		}

		color.Yellow("✗ Deleted %s", rec.Name)
		fmt.Printf("  %s %s\n", color.New(color.Faint).Sprint(rec.ID[:8]), rec.Date)
		return nil
	},
}

// findSession resolves a completed session by full ID or unique prefix.
func findSession(idOrPrefix string) *models.CompletedSessionRecord {
	var match *models.CompletedSessionRecord
	for _, rec := range store.LoadSessions(appStore) {
		if rec.ID == idOrPrefix {
			r := rec
			return &r
		}
		if len(idOrPrefix) >= 4 && len(rec.ID) >= len(idOrPrefix) && rec.ID[:len(idOrPrefix)] == idOrPrefix {
			if match != nil {
				return nil // ambiguous prefix
			}
			r := rec
			match = &r
		}
	}
	return match
}

// resolveExerciseID expands a unique exercise ID prefix in the active session.
func resolveExerciseID(engine *workout.Engine, idOrPrefix string) string {
	session := engine.Current()
	if session == nil {
		return idOrPrefix
	}
	var match string
	for _, ex := range session.Exercises {
		if ex.ID == idOrPrefix {
			return idOrPrefix
		}
		if len(idOrPrefix) >= 4 && len(ex.ID) >= len(idOrPrefix) && ex.ID[:len(idOrPrefix)] == idOrPrefix {
			if match != "" {
				return idOrPrefix // ambiguous, let the engine no-op
			}
			match = ex.ID
		}
	}
	if match != "" {
		return match
	}
	return idOrPrefix
}

// formatSet renders a set line, picking the field that fits the session type.
func formatSet(session *models.WorkoutSession, set models.Set) string {
	if session.IsCardio() {
		calories := 0.0
		if set.Calories != nil {
			calories = *set.Calories
		}
		return fmt.Sprintf("%d reps, %g kcal", set.Reps, calories)
	}
	weight := 0.0
	if set.Weight != nil {
		weight = *set.Weight
	}
	return fmt.Sprintf("%d reps @ %g kg", set.Reps, weight)
}

func init() {
	workoutSetCmd.Flags().Float64VarP(&setWeight, "weight", "w", 0, "weight in kg")
	workoutSetCmd.Flags().Float64VarP(&setCalories, "calories", "c", 0, "calories burned")

	workoutListCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "max number of results")

	workoutExerciseCmd.AddCommand(workoutExerciseAddCmd)
	workoutExerciseCmd.AddCommand(workoutExerciseRemoveCmd)
	workoutExerciseCmd.AddCommand(workoutExerciseToggleCmd)

	workoutCmd.AddCommand(workoutStartCmd)
	workoutCmd.AddCommand(workoutPauseCmd)
	workoutCmd.AddCommand(workoutResumeCmd)
	workoutCmd.AddCommand(workoutStatusCmd)
	workoutCmd.AddCommand(workoutEndCmd)
	workoutCmd.AddCommand(workoutExerciseCmd)
	workoutCmd.AddCommand(workoutSetCmd)
	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutShowCmd)
	workoutCmd.AddCommand(workoutDeleteCmd)
	rootCmd.AddCommand(workoutCmd)
}
