// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/fittrack/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your fittrack data
through a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "fittrack": {
        "command": "fittrack",
        "args": ["mcp"]
      }
    }
  }

  On macOS, the config is at:
    ~/Library/Application Support/Claude/claude_desktop_config.json

AVAILABLE TOOLS:

  start_workout          Start a workout session
  workout_status         Show the active session
  pause_workout          Pause the active session
  resume_workout         Resume the paused session
  add_exercise           Add an exercise to the session
  add_set                Record a set for an exercise
  end_workout            Finish the session and save to history
  list_sessions          List completed sessions
  delete_session         Delete a completed session
  create_goal            Create a fitness goal
  list_goals             List goals with progress
  update_goal_progress   Set a goal's current value
  delete_goal            Delete a goal
  metrics_summary        Aggregated calories/steps/workouts
  exercise_progress      Per-exercise strength progress

AVAILABLE RESOURCES:

  fittrack://recent     Recent workout sessions
  fittrack://goals      All goals with progress
  fittrack://daily      Today's totals and active workout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(appStore)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
