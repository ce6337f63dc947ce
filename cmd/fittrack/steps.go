// ABOUTME: CLI command for the daily step counter.
// ABOUTME: Supports showing, adding, live simulated counting, and resetting.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/steps"
	"github.com/spf13/cobra"
)

var (
	stepsWatch bool
	stepsReset bool
)

var stepsCmd = &cobra.Command{
	Use:   "steps [count]",
	Short: "Show or update today's step count",
	Long: `Show today's step count, or add steps to it.

The counter resets automatically at midnight. Without hardware motion
sensing, --watch runs a simulated counter that adds a few steps every
ten seconds until interrupted.

EXAMPLES:

  fittrack steps              # Show today's count
  fittrack steps 500          # Add 500 steps
  fittrack steps --watch      # Live simulated counting (Ctrl-C to stop)
  fittrack steps --reset      # Zero the counter`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tracker := steps.NewTracker(appStore, nil)

		if stepsReset {
			if err := tracker.Reset(); err != nil {
				return fmt.Errorf("failed to reset steps: %w", err)
			}
			color.Yellow("✗ Step counter reset")
			return nil
		}

		if len(args) == 1 {
			delta, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid step count: %s", args[0])
			}
			total, err := tracker.Add(delta)
			if err != nil {
				return fmt.Errorf("failed to add steps: %w", err)
			}
			color.Green("✓ Added %d steps", delta)
			fmt.Printf("  Today: %d\n", total)
			return nil
		}

		if stepsWatch {
			return watchSteps(tracker)
		}

		total, err := tracker.Steps()
		if err != nil {
			return fmt.Errorf("failed to read steps: %w", err)
		}
		fmt.Printf("Steps today: %d\n", total)
		return nil
	},
}

// watchSteps runs the simulated step source until interrupted.
func watchSteps(tracker *steps.Tracker) error {
	total, err := tracker.Steps()
	if err != nil {
		return fmt.Errorf("failed to read steps: %w", err)
	}
	fmt.Printf("Steps today: %d (watching, Ctrl-C to stop)\n", total)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	sim := steps.NewSimulator()
	err = sim.Run(ctx, func(delta int) {
		if delta == 0 {
			return
		}
		if updated, err := tracker.Add(delta); err == nil {
			fmt.Printf("\rSteps today: %d   ", updated)
		}
	})
	fmt.Println()
	if err == context.Canceled {
		return nil
	}
	return err
}

func init() {
	stepsCmd.Flags().BoolVar(&stepsWatch, "watch", false, "count simulated steps until interrupted")
	stepsCmd.Flags().BoolVar(&stepsReset, "reset", false, "zero the counter")
	rootCmd.AddCommand(stepsCmd)
}
