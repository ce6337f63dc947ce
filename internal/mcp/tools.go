// ABOUTME: MCP tool implementations for fittrack.
// ABOUTME: Exposes workout session, goal, and metrics operations.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/fittrack/internal/goals"
	"github.com/harperreed/fittrack/internal/metrics"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// start_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "start_workout",
		Description: "Start a new workout session for a body part (chest, back, legs, cardio, etc.)",
	}, s.handleStartWorkout)

	// workout_status
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "workout_status",
		Description: "Get the active workout session with its exercises and running duration",
	}, s.handleWorkoutStatus)

	// pause_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "pause_workout",
		Description: "Pause the active workout session",
	}, s.handlePauseWorkout)

	// resume_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "resume_workout",
		Description: "Resume the paused workout session",
	}, s.handleResumeWorkout)

	// add_exercise
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_exercise",
		Description: "Add an exercise to the active workout session",
	}, s.handleAddExercise)

	// add_set
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_set",
		Description: "Record a set for an exercise in the active workout",
	}, s.handleAddSet)

	// end_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "end_workout",
		Description: "End the active workout and save it to history",
	}, s.handleEndWorkout)

	// list_sessions
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_sessions",
		Description: "List completed workout sessions, most recent first",
	}, s.handleListSessions)

	// delete_session
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_session",
		Description: "Delete a completed workout session by ID",
	}, s.handleDeleteSession)

	// create_goal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_goal",
		Description: "Create a fitness goal (calories, weight_loss, weight_gain, workouts_per_week, custom)",
	}, s.handleCreateGoal)

	// list_goals
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_goals",
		Description: "List all fitness goals with progress",
	}, s.handleListGoals)

	// update_goal_progress
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_goal_progress",
		Description: "Set the current progress value of a goal",
	}, s.handleUpdateGoalProgress)

	// delete_goal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_goal",
		Description: "Delete a goal by ID",
	}, s.handleDeleteGoal)

	// metrics_summary
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "metrics_summary",
		Description: "Get aggregated calories, steps, and workout counts for a period (week or month)",
	}, s.handleMetricsSummary)

	// exercise_progress
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "exercise_progress",
		Description: "Get per-exercise progress (max weight, max reps, total volume) across workout history",
	}, s.handleExerciseProgress)
}

// Tool input/output types

type startWorkoutInput struct {
	BodyPart string `json:"body_part" jsonschema:"Body part for the session (chest, back, legs, shoulders, arms, cardio, etc.)"`
}

type sessionOutput struct {
	ID       string `json:"id"`
	BodyPart string `json:"body_part"`
	Message  string `json:"message"`
}

type addExerciseInput struct {
	Name string `json:"name" jsonschema:"Exercise name (e.g. Bench Press)"`
}

type exerciseOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type addSetInput struct {
	ExerciseID string   `json:"exercise_id" jsonschema:"ID of the exercise"`
	Reps       int      `json:"reps" jsonschema:"Repetition count"`
	Weight     *float64 `json:"weight,omitempty" jsonschema:"Weight in kg (strength sessions)"`
	Calories   *float64 `json:"calories,omitempty" jsonschema:"Calories burned (cardio sessions)"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type listSessionsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type deleteSessionInput struct {
	ID string `json:"id" jsonschema:"Session ID"`
}

type createGoalInput struct {
	Name        string  `json:"name" jsonschema:"Goal name"`
	Type        string  `json:"type" jsonschema:"Goal type (calories, weight_loss, weight_gain, workouts_per_week, custom)"`
	Target      float64 `json:"target" jsonschema:"Target value, must be positive"`
	Unit        string  `json:"unit" jsonschema:"Unit of measurement (kcal, kg, workouts, etc.)"`
	Description string  `json:"description,omitempty" jsonschema:"Optional description"`
	Deadline    string  `json:"deadline,omitempty" jsonschema:"Optional deadline (YYYY-MM-DD), must not be in the past"`
}

type goalOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type updateGoalInput struct {
	ID      string  `json:"id" jsonschema:"Goal ID"`
	Current float64 `json:"current" jsonschema:"New current progress value"`
}

type deleteGoalInput struct {
	ID string `json:"id" jsonschema:"Goal ID"`
}

type metricsSummaryInput struct {
	Period string `json:"period,omitempty" jsonschema:"Aggregation period: week (default) or month"`
}

type exerciseProgressInput struct {
	Exercise string `json:"exercise,omitempty" jsonschema:"Filter to one exercise name (case-sensitive)"`
}

// Tool handlers

func (s *Server) handleStartWorkout(ctx context.Context, req *mcp.CallToolRequest, input startWorkoutInput) (*mcp.CallToolResult, sessionOutput, error) {
	session, err := s.engine.Start(input.BodyPart)
	if err != nil {
		return nil, sessionOutput{}, err
	}

	return nil, sessionOutput{
		ID:       session.ID,
		BodyPart: session.BodyPart,
		Message:  fmt.Sprintf("Started %s workout (ID: %s)", session.BodyPart, session.ID[:8]),
	}, nil
}

func (s *Server) handleWorkoutStatus(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	s.engine.Tick()
	session := s.engine.Current()
	if session == nil {
		return nil, map[string]interface{}{"message": "No active workout."}, nil
	}
	return nil, session, nil
}

func (s *Server) handlePauseWorkout(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, simpleOutput, error) {
	paused, err := s.engine.Pause()
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to pause workout: %w", err)
	}
	if !paused {
		return nil, simpleOutput{Message: "No active workout."}, nil
	}
	return nil, simpleOutput{Message: "Workout paused."}, nil
}

func (s *Server) handleResumeWorkout(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, simpleOutput, error) {
	resumed, err := s.engine.Resume()
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to resume workout: %w", err)
	}
	if !resumed {
		return nil, simpleOutput{Message: "No active workout."}, nil
	}
	return nil, simpleOutput{Message: "Workout resumed."}, nil
}

func (s *Server) handleAddExercise(ctx context.Context, req *mcp.CallToolRequest, input addExerciseInput) (*mcp.CallToolResult, exerciseOutput, error) {
	ex, err := s.engine.AddExercise(input.Name)
	if err != nil {
		return nil, exerciseOutput{}, fmt.Errorf("failed to add exercise: %w", err)
	}
	if ex == nil {
		return nil, exerciseOutput{Message: "No active workout."}, nil
	}

	return nil, exerciseOutput{
		ID:      ex.ID,
		Name:    ex.Name,
		Message: fmt.Sprintf("Added %s (ID: %s)", ex.Name, ex.ID[:8]),
	}, nil
}

func (s *Server) handleAddSet(ctx context.Context, req *mcp.CallToolRequest, input addSetInput) (*mcp.CallToolResult, simpleOutput, error) {
	added, err := s.engine.AddSet(input.ExerciseID, input.Reps, input.Weight, input.Calories)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to add set: %w", err)
	}
	if !added {
		return nil, simpleOutput{Message: "No matching exercise in the active workout."}, nil
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Recorded set: %d reps", input.Reps),
	}, nil
}

func (s *Server) handleEndWorkout(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	rec, err := s.engine.End()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to end workout: %w", err)
	}
	if rec == nil {
		return nil, map[string]interface{}{"message": "No active workout."}, nil
	}
	return nil, rec, nil
}

func (s *Server) handleListSessions(ctx context.Context, req *mcp.CallToolRequest, input listSessionsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	sessions := store.LoadSessions(s.store)
	if len(sessions) == 0 {
		return nil, map[string]interface{}{"message": "No workout sessions found."}, nil
	}
	if len(sessions) > input.Limit {
		sessions = sessions[:input.Limit]
	}

	return nil, sessions, nil
}

func (s *Server) handleDeleteSession(ctx context.Context, req *mcp.CallToolRequest, input deleteSessionInput) (*mcp.CallToolResult, simpleOutput, error) {
	deleted, err := store.DeleteSession(s.store, input.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete session: %w", err)
	}
	if !deleted {
		return nil, simpleOutput{Message: fmt.Sprintf("No session with ID %s", input.ID)}, nil
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted session: %s", input.ID),
	}, nil
}

func (s *Server) handleCreateGoal(ctx context.Context, req *mcp.CallToolRequest, input createGoalInput) (*mcp.CallToolResult, goalOutput, error) {
	if !models.IsValidGoalType(input.Type) {
		return nil, goalOutput{}, fmt.Errorf("unknown goal type: %s", input.Type)
	}

	goal, err := s.goals.Create(goals.CreateInput{
		Name:        input.Name,
		Type:        models.GoalType(input.Type),
		Target:      input.Target,
		Unit:        input.Unit,
		Description: input.Description,
		Deadline:    input.Deadline,
	})
	if err != nil {
		return nil, goalOutput{}, fmt.Errorf("failed to create goal: %w", err)
	}

	return nil, goalOutput{
		ID:      goal.ID,
		Name:    goal.Name,
		Message: fmt.Sprintf("Created goal %q: %g %s (ID: %s)", goal.Name, goal.Target, goal.Unit, goal.ID[:8]),
	}, nil
}

func (s *Server) handleListGoals(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	list := s.goals.List()
	if len(list) == 0 {
		return nil, map[string]interface{}{"message": "No goals found."}, nil
	}
	return nil, list, nil
}

func (s *Server) handleUpdateGoalProgress(ctx context.Context, req *mcp.CallToolRequest, input updateGoalInput) (*mcp.CallToolResult, simpleOutput, error) {
	updated, err := s.goals.UpdateProgress(input.ID, input.Current)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to update goal: %w", err)
	}
	if !updated {
		return nil, simpleOutput{Message: fmt.Sprintf("No goal with ID %s", input.ID)}, nil
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Updated goal progress to %g", input.Current),
	}, nil
}

func (s *Server) handleDeleteGoal(ctx context.Context, req *mcp.CallToolRequest, input deleteGoalInput) (*mcp.CallToolResult, simpleOutput, error) {
	deleted, err := s.goals.Delete(input.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete goal: %w", err)
	}
	if !deleted {
		return nil, simpleOutput{Message: fmt.Sprintf("No goal with ID %s", input.ID)}, nil
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted goal: %s", input.ID),
	}, nil
}

func (s *Server) handleMetricsSummary(ctx context.Context, req *mcp.CallToolRequest, input metricsSummaryInput) (*mcp.CallToolResult, any, error) {
	period := metrics.Period(input.Period)
	if input.Period == "" {
		period = metrics.PeriodWeek
	}
	if !metrics.IsValidPeriod(string(period)) {
		return nil, nil, fmt.Errorf("unknown period: %s", input.Period)
	}

	pm := store.LoadMetrics(s.store)
	data := period.Data(pm)
	summary := metrics.Summarize(data)

	return nil, map[string]interface{}{
		"period":  string(period),
		"labels":  period.Labels(),
		"data":    data,
		"summary": summary,
	}, nil
}

func (s *Server) handleExerciseProgress(ctx context.Context, req *mcp.CallToolRequest, input exerciseProgressInput) (*mcp.CallToolResult, any, error) {
	series := metrics.BuildExerciseProgress(store.LoadSessions(s.store))
	if len(series) == 0 {
		return nil, map[string]interface{}{"message": "No exercise history found."}, nil
	}

	if input.Exercise != "" {
		points, ok := series[input.Exercise]
		if !ok {
			return nil, map[string]interface{}{"message": fmt.Sprintf("No history for %s", input.Exercise)}, nil
		}
		return nil, map[string]interface{}{input.Exercise: points}, nil
	}

	return nil, series, nil
}
