// ABOUTME: Root Cobra command for fittrack CLI.
// ABOUTME: Handles store lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/fittrack/internal/config"
	"github.com/harperreed/fittrack/internal/store"
	"github.com/spf13/cobra"
)

var (
	appStore store.Store
	cfg      *config.Config

	flagBackend string
	flagDataDir string
)

var rootCmd = &cobra.Command{
	Use:   "fittrack",
	Short: "Personal workout and fitness tracker",
	Long: `Fittrack is a CLI tool for tracking workouts, fitness goals, and daily activity.

WORKOUT SESSIONS:

  $ fittrack workout start chest            # Start a chest workout
  $ fittrack workout exercise add "Bench Press"
  $ fittrack workout set <exercise-id> 8 --weight 60
  $ fittrack workout end                    # Finish and save to history
  $ fittrack workout list                   # Browse workout history

  Cardio sessions track calories per set instead of weight:

  $ fittrack workout start cardio
  $ fittrack workout exercise add "Treadmill"
  $ fittrack workout set <exercise-id> 1 --calories 150

GOALS:

  $ fittrack goal add "Burn 500" --type calories --target 500 --unit kcal
  $ fittrack goal update <id> 250           # Record progress
  $ fittrack goal list                      # See progress bars

METRICS:

  $ fittrack metrics                        # Weekly calories/steps/workouts
  $ fittrack metrics --period month         # Monthly view
  $ fittrack progress                       # Per-exercise strength progress

STEPS:

  $ fittrack steps                          # Today's step count
  $ fittrack steps --watch                  # Live step counting

MCP INTEGRATION:

  Run 'fittrack mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants. Add to your Claude
  config:

  {
    "mcpServers": {
      "fittrack": { "command": "fittrack", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data is stored in SQLite at ~/.local/share/fittrack/fittrack.db by default.
  Use --backend charm for an E2E-encrypted cloud-synced store, or set it
  permanently in ~/.config/fittrack/config.json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHome()
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if flagBackend != "" {
			cfg.Backend = flagBackend
		}
		if flagDataDir != "" {
			cfg.DataDir = flagDataDir
		}

		appStore, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if appStore != nil {
			return appStore.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend: sqlite or charm (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default ~/.local/share/fittrack)")
}
