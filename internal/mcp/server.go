// ABOUTME: MCP server setup for fittrack data.
// ABOUTME: Wraps the MCP server with the activity store and pedometer.
package mcp

import (
	"context"

	"github.com/harperreed/fittrack/internal/clock"
	"github.com/harperreed/fittrack/internal/config"
	"github.com/harperreed/fittrack/internal/pedometer"
	"github.com/harperreed/fittrack/internal/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with access to fittrack's core.
type Server struct {
	mcpServer *mcp.Server
	store     *store.ActivityStore
	ped       *pedometer.Simulated
	clock     clock.Clock
	cfg       *config.Config
}

// NewServer creates a new MCP server over the given store and config.
func NewServer(st *store.ActivityStore, ped *pedometer.Simulated, c clock.Clock, cfg *config.Config) (*Server, error) {
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
		ped:       ped,
		clock:     c,
		cfg:       cfg,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
