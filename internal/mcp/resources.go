// ABOUTME: MCP resource implementations for fittrack.
// ABOUTME: Provides fittrack://recent, fittrack://goals, and fittrack://daily resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/fittrack/internal/metrics"
	"github.com/harperreed/fittrack/internal/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// fittrack://recent - Last 10 completed workout sessions
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fittrack://recent",
		Name:        "Recent Workouts",
		Description: "Last 10 completed workout sessions",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// fittrack://goals - All goals with computed progress
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fittrack://goals",
		Name:        "Fitness Goals",
		Description: "All fitness goals with progress percentages",
		MIMEType:    "application/json",
	}, s.handleGoalsResource)

	// fittrack://daily - Today's calories and steps plus any active session
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fittrack://daily",
		Name:        "Daily Dashboard",
		Description: "Today's calories burned, step count, weekly averages, and the active workout if any",
		MIMEType:    "application/json",
	}, s.handleDailyResource)
}

// Resource handlers

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	sessions := store.LoadSessions(s.store)
	if len(sessions) > 10 {
		sessions = sessions[:10]
	}

	result := map[string]interface{}{
		"sessions": sessions,
		"count":    len(sessions),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "fittrack://recent",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleGoalsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	list := s.goals.List()

	entries := make([]map[string]interface{}, 0, len(list))
	for _, g := range list {
		entries = append(entries, map[string]interface{}{
			"id":        g.ID,
			"name":      g.Name,
			"type":      g.Type,
			"target":    g.Target,
			"current":   g.Current,
			"unit":      g.Unit,
			"percent":   g.Percent(),
			"remaining": g.Remaining(),
			"achieved":  g.Achieved(),
			"deadline":  g.Deadline,
		})
	}

	result := map[string]interface{}{
		"goals": entries,
		"count": len(entries),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "fittrack://goals",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleDailyResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	s.engine.Tick()

	pm := store.LoadMetrics(s.store)
	weekSummary := metrics.Summarize(metrics.PeriodWeek.Data(pm))

	result := map[string]interface{}{
		"generated_at":   time.Now().Format(time.RFC3339),
		"daily_calories": store.DailyCalories(s.store),
		"daily_steps":    store.DailySteps(s.store),
		"week_summary":   weekSummary,
	}
	if session := s.engine.Current(); session != nil {
		result["active_workout"] = session
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "fittrack://daily",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
