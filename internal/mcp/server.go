// ABOUTME: MCP server setup for the fittrack store.
// ABOUTME: Wraps MCP server with the slot store and domain trackers.
package mcp

import (
	"context"

	"github.com/harperreed/fittrack/internal/goals"
	"github.com/harperreed/fittrack/internal/store"
	"github.com/harperreed/fittrack/internal/workout"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with store access.
type Server struct {
	mcpServer *mcp.Server
	store     store.Store
	engine    *workout.Engine
	goals     *goals.Tracker
}

// NewServer creates a new MCP server over the given store.
func NewServer(st store.Store) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fittrack",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		store:     st,
		engine:    workout.NewEngine(st, nil),
		goals:     goals.NewTracker(st, nil),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
