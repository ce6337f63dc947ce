// ABOUTME: Default dashboard output for the bare fittrack command.
// ABOUTME: Shows greeting, daily totals, top goals, and the active workout.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/steps"
	"github.com/harperreed/fittrack/internal/store"
	"github.com/harperreed/fittrack/internal/workout"
)

// runHome prints the dashboard.
func runHome() error {
	now := time.Now()

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	bold.Printf("%s, fighter\n", greeting(now.Hour()))
	faint.Println(now.Format("Monday, Jan 2, 2006"))
	fmt.Println()

	stepTracker := steps.NewTracker(appStore, nil)
	todaySteps, err := stepTracker.Steps()
	if err != nil {
		return fmt.Errorf("failed to read steps: %w", err)
	}

	fmt.Printf("  Calories burned today: %d kcal\n", store.DailyCalories(appStore))
	fmt.Printf("  Steps today:           %d\n", todaySteps)
	fmt.Println()

	if goals := store.LoadGoals(appStore); len(goals) > 0 {
		bold.Println("Goals")
		top := goals
		if len(top) > 3 {
			top = top[:3]
		}
		for _, g := range top {
			fmt.Printf("  %s %s %.0f%%  (%g/%g %s)\n",
				faint.Sprint(g.ID[:8]),
				padRight(g.Name, 24),
				g.Percent(),
				g.Current, g.Target, g.Unit)
		}
		fmt.Println()
	}

	engine := workout.NewEngine(appStore, nil)
	if session := engine.Current(); session != nil {
		state := "in progress"
		if session.IsPaused {
			state = "paused"
		}
		color.Green("▶ %s workout %s  %s", session.BodyPart, state, formatTime(session.Duration))
	} else {
		faint.Println("No active workout. Start one with 'fittrack workout start <body-part>'.")
	}

	return nil
}

// greeting picks the salutation for an hour of the day.
func greeting(hour int) string {
	switch {
	case hour < 12:
		return "Good Morning"
	case hour < 17:
		return "Good Afternoon"
	default:
		return "Good Evening"
	}
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

// formatTime renders a second count as h:mm:ss, or m:ss under an hour.
func formatTime(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
