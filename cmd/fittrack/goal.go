// ABOUTME: CLI commands for fitness goals.
// ABOUTME: Supports add, list, update, delete, and a types listing.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/goals"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	goalType        string
	goalTarget      float64
	goalUnit        string
	goalDescription string
	goalDeadline    string
)

var goalCmd = &cobra.Command{
	Use:     "goal",
	Aliases: []string{"g"},
	Short:   "Manage fitness goals",
	Long: `Track fitness goals with targets and progress.

GOAL TYPES:

  calories           Burn a calorie total
  weight_loss        Lose weight toward a target
  weight_gain        Gain weight toward a target
  workouts_per_week  Hit a weekly workout count
  custom             Anything else

WORKFLOW:

  1. Create a goal:      fittrack goal add "Burn 500" --type calories --target 500 --unit kcal
  2. Record progress:    fittrack goal update <id> 250
  3. Check progress:     fittrack goal list

Progress caps at 100% in displays but the raw value is preserved, so
overshooting a target is recorded faithfully.

A deadline is optional; when given it must be YYYY-MM-DD and not in
the past. Goal names must be unique (case-insensitive).`,
}

var goalAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Create a new goal",
	Long: `Create a new fitness goal.

Non-custom goal types prefill the name, unit, and description from
their template (run 'fittrack goal types' to see them); flags and the
name argument override the prefill.

Examples:
  fittrack goal add --type calories --target 500
  fittrack goal add "Burn 500" --type calories --target 500 --unit kcal
  fittrack goal add "Cut to 80kg" --type weight_loss --target 5 --unit kg --deadline 2026-12-31`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidGoalType(goalType) {
			return fmt.Errorf("unknown goal type: %s (run 'fittrack goal types')", goalType)
		}

		name := ""
		if len(args) > 0 {
			name = args[0]
		}

		tracker := goals.NewTracker(appStore, nil)
		goal, err := tracker.Create(goals.Prefill(goals.CreateInput{
			Name:        name,
			Type:        models.GoalType(goalType),
			Target:      goalTarget,
			Unit:        goalUnit,
			Description: goalDescription,
			Deadline:    goalDeadline,
		}))
		if err != nil {
			return err
		}

		color.Green("✓ Created goal %q", goal.Name)
		fmt.Printf("  ID: %s\n", goal.ID[:8])
		fmt.Printf("  Target: %g %s\n", goal.Target, goal.Unit)
		if goal.Deadline != "" {
			fmt.Printf("  Deadline: %s\n", goal.Deadline)
		}
		return nil
	},
}

var goalListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List goals with progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		tracker := goals.NewTracker(appStore, nil)
		list := tracker.List()
		if len(list) == 0 {
			fmt.Println("No goals found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, g := range list {
			marker := " "
			if g.Achieved() {
				marker = color.GreenString("✓")
			}
			deadline := ""
			if g.Deadline != "" {
				deadline = faint.Sprintf(" (by %s)", g.Deadline)
			}
			fmt.Printf("%s %s %s %s %3.0f%%  %g/%g %s%s\n",
				marker,
				faint.Sprint(g.ID[:8]),
				padRight(g.Name, 24),
				progressBar(g.Percent(), 20),
				g.Percent(),
				g.Current, g.Target, g.Unit,
				deadline)
		}

		return nil
	},
}

var goalUpdateCmd = &cobra.Command{
	Use:   "update <id> <current>",
	Short: "Set a goal's current progress",
	Long: `Set the current progress value of a goal.

The value overwrites the previous progress; it is not added to it.

Examples:
  fittrack goal update abc123 250`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid value: %s", args[1])
		}

		tracker := goals.NewTracker(appStore, nil)
		goal := findGoal(tracker, args[0])
		if goal == nil {
			return fmt.Errorf("goal not found: %s", args[0])
		}

		if _, err := tracker.UpdateProgress(goal.ID, current); err != nil {
			return fmt.Errorf("failed to update goal: %w", err)
		}

		updated := tracker.Find(goal.ID)
		color.Green("✓ Updated %q", updated.Name)
		fmt.Printf("  %g/%g %s (%.0f%%)\n", updated.Current, updated.Target, updated.Unit, updated.Percent())
		if updated.Achieved() {
			color.Green("  Goal achieved!")
		}
		return nil
	},
}

var goalDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a goal",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tracker := goals.NewTracker(appStore, nil)
		goal := findGoal(tracker, args[0])
		if goal == nil {
			return fmt.Errorf("goal not found: %s", args[0])
		}

		if _, err := tracker.Delete(goal.ID); err != nil {
			return fmt.Errorf("failed to delete goal: %w", err)
		}

		color.Yellow("✗ Deleted %q", goal.Name)
		return nil
	},
}

var goalTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List goal types",
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)
		for _, gt := range models.AllGoalTypes {
			tpl := goals.Templates[gt]
			fmt.Printf("%s %s %s\n",
				padRight(string(gt), 20),
				padRight(tpl.Unit, 10),
				faint.Sprint(tpl.Description))
		}
		return nil
	},
}

// findGoal resolves a goal by full ID or unique prefix.
func findGoal(tracker *goals.Tracker, idOrPrefix string) *models.Goal {
	if g := tracker.Find(idOrPrefix); g != nil {
		return g
	}
	if len(idOrPrefix) < 4 {
		return nil
	}
	var match *models.Goal
	for _, g := range tracker.List() {
		if strings.HasPrefix(g.ID, idOrPrefix) {
			if match != nil {
				return nil // ambiguous prefix
			}
			goal := g
			match = &goal
		}
	}
	return match
}

// progressBar renders a fixed-width bar for a 0..100 percentage.
func progressBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func init() {
	goalAddCmd.Flags().StringVarP(&goalType, "type", "t", "custom", "goal type")
	goalAddCmd.Flags().Float64Var(&goalTarget, "target", 0, "target value (required, positive)")
	goalAddCmd.Flags().StringVarP(&goalUnit, "unit", "u", "", "unit of measurement (required)")
	goalAddCmd.Flags().StringVarP(&goalDescription, "description", "d", "", "optional description")
	goalAddCmd.Flags().StringVar(&goalDeadline, "deadline", "", "optional deadline (YYYY-MM-DD)")

	goalCmd.AddCommand(goalAddCmd)
	goalCmd.AddCommand(goalListCmd)
	goalCmd.AddCommand(goalUpdateCmd)
	goalCmd.AddCommand(goalDeleteCmd)
	goalCmd.AddCommand(goalTypesCmd)
	rootCmd.AddCommand(goalCmd)
}
