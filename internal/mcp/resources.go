// ABOUTME: MCP resource implementations for fittrack.
// ABOUTME: Provides fittrack://today and fittrack://summary resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harperreed/fittrack/internal/clock"
	"github.com/harperreed/fittrack/internal/metrics"
	"github.com/harperreed/fittrack/internal/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// fittrack://today - today's workouts, water, and steps
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fittrack://today",
		Name:        "Today's Activity",
		Description: "Workouts logged today plus water and step progress",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// fittrack://summary - full record history plus profile
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fittrack://summary",
		Name:        "Fittrack Summary",
		Description: "All logged workouts, the water counter, and the profile",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	records, err := s.store.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load workouts: %w", err)
	}
	today := clock.Today(s.clock)

	water, err := s.store.WaterIntake()
	if err != nil {
		return nil, fmt.Errorf("failed to read water intake: %w", err)
	}

	steps, err := s.ped.StepsToday()
	if err != nil {
		return nil, fmt.Errorf("failed to read steps: %w", err)
	}

	result := map[string]interface{}{
		"date":     today,
		"workouts": store.FilterByDate(records, today),
		"water": map[string]interface{}{
			"count":    water.Count,
			"goal":     s.cfg.GetWaterGoal(),
			"progress": metrics.ProgressRatio(float64(water.Count), float64(s.cfg.GetWaterGoal())),
		},
		"steps": map[string]interface{}{
			"count":    steps,
			"goal":     s.cfg.GetStepGoal(),
			"progress": metrics.ProgressRatio(float64(steps), float64(s.cfg.GetStepGoal())),
		},
	}

	return jsonResource("fittrack://today", result)
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	data, err := s.store.Export()
	if err != nil {
		return nil, fmt.Errorf("failed to export data: %w", err)
	}
	return jsonResource("fittrack://summary", data)
}

func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
