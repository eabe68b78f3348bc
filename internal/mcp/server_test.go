// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Covers NewServer, tool handlers, and resource handlers.
package mcp

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/harperreed/fittrack/internal/clock"
	"github.com/harperreed/fittrack/internal/config"
	"github.com/harperreed/fittrack/internal/kv"
	"github.com/harperreed/fittrack/internal/metrics"
	"github.com/harperreed/fittrack/internal/pedometer"
	"github.com/harperreed/fittrack/internal/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// setupServer creates a server over an in-memory store with a fixed clock.
func setupServer(t *testing.T) *Server {
	t.Helper()

	c := clock.Fixed{T: time.Date(2026, 9, 1, 7, 30, 0, 0, time.UTC)}
	st := store.New(kv.NewMemoryStore(), c)
	t.Cleanup(func() { st.Close() })

	server, err := NewServer(st, pedometer.NewSimulated(c, 42), c, &config.Config{})
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return server
}

func TestNewServer(t *testing.T) {
	server := setupServer(t)

	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.store == nil {
		t.Error("Expected non-nil store")
	}
}

func TestHandleLogWorkout(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		input     logWorkoutInput
		wantErr   bool
		errSubstr string
	}{
		{
			name:    "valid sets/reps exercise",
			input:   logWorkoutInput{Category: "Legs", Exercise: "Squats", Sets: 3, Reps: 10},
			wantErr: false,
		},
		{
			name:    "valid time-based exercise",
			input:   logWorkoutInput{Category: "Abdominals", Exercise: "Plank", Time: 45},
			wantErr: false,
		},
		{
			name:      "unknown category",
			input:     logWorkoutInput{Category: "Cardio", Exercise: "Squats", Sets: 3, Reps: 10},
			wantErr:   true,
			errSubstr: "unknown category",
		},
		{
			name:      "missing reps",
			input:     logWorkoutInput{Category: "Legs", Exercise: "Squats", Sets: 3},
			wantErr:   true,
			errSubstr: "reps",
		},
		{
			name:      "time-based without time",
			input:     logWorkoutInput{Category: "Abdominals", Exercise: "Plank"},
			wantErr:   true,
			errSubstr: "time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := server.handleLogWorkout(ctx, &mcp.CallToolRequest{}, tt.input)

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				} else if tt.errSubstr != "" && !strings.Contains(err.Error(), tt.errSubstr) {
					t.Errorf("Error %q should contain %q", err.Error(), tt.errSubstr)
				}
				return
			}

			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}
			if output.Name != tt.input.Exercise {
				t.Errorf("output name = %q, want %q", output.Name, tt.input.Exercise)
			}
			if output.Date != "2026-09-01" {
				t.Errorf("output date = %q, want 2026-09-01", output.Date)
			}
		})
	}
}

func TestHandleListWorkouts(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	_, _, err := server.handleLogWorkout(ctx, &mcp.CallToolRequest{},
		logWorkoutInput{Category: "Legs", Exercise: "Squats", Sets: 3, Reps: 10})
	if err != nil {
		t.Fatalf("handleLogWorkout failed: %v", err)
	}

	_, output, err := server.handleListWorkouts(ctx, &mcp.CallToolRequest{}, listWorkoutsInput{Today: true})
	if err != nil {
		t.Fatalf("handleListWorkouts failed: %v", err)
	}
	records, ok := output.([]workoutOutput)
	if !ok {
		t.Fatalf("output type = %T, want []workoutOutput", output)
	}
	if len(records) != 1 || records[0].Name != "Squats" {
		t.Errorf("records = %+v", records)
	}

	// Filtering to another day finds nothing
	_, output, err = server.handleListWorkouts(ctx, &mcp.CallToolRequest{}, listWorkoutsInput{Date: "1999-01-01"})
	if err != nil {
		t.Fatalf("handleListWorkouts failed: %v", err)
	}
	if _, ok := output.(map[string]interface{}); !ok {
		t.Errorf("expected empty-result message, got %T: %+v", output, output)
	}
}

func TestHandleWater(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	_, status, err := server.handleWaterStatus(ctx, &mcp.CallToolRequest{}, struct{}{})
	if err != nil {
		t.Fatalf("handleWaterStatus failed: %v", err)
	}
	if status.Count != 0 {
		t.Errorf("initial count = %d, want 0", status.Count)
	}
	if status.Goal != config.DefaultWaterGoal {
		t.Errorf("goal = %d, want %d", status.Goal, config.DefaultWaterGoal)
	}

	for i := 0; i < 3; i++ {
		_, status, err = server.handleAddWater(ctx, &mcp.CallToolRequest{}, struct{}{})
		if err != nil {
			t.Fatalf("handleAddWater failed: %v", err)
		}
	}
	if status.Count != 3 {
		t.Errorf("count = %d, want 3", status.Count)
	}
	if status.Date != "2026-09-01" {
		t.Errorf("date = %q, want 2026-09-01", status.Date)
	}
}

func TestHandleSteps(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	_, today, err := server.handleStepsToday(ctx, &mcp.CallToolRequest{}, struct{}{})
	if err != nil {
		t.Fatalf("handleStepsToday failed: %v", err)
	}
	if today.Steps < 2000 || today.Steps > 9999 {
		t.Errorf("steps = %d, want 2000..9999", today.Steps)
	}

	_, output, err := server.handleStepsHistory(ctx, &mcp.CallToolRequest{}, stepsHistoryInput{Days: 3})
	if err != nil {
		t.Fatalf("handleStepsHistory failed: %v", err)
	}
	history, ok := output.([]metrics.DaySteps)
	if !ok {
		t.Fatalf("output type = %T, want []metrics.DaySteps", output)
	}
	if len(history) != 3 {
		t.Errorf("got %d days, want 3", len(history))
	}
	if history[len(history)-1].Label != "1/9" {
		t.Errorf("last label = %q, want 1/9", history[len(history)-1].Label)
	}
}

func TestHandleProfile(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	_, output, err := server.handleGetProfile(ctx, &mcp.CallToolRequest{}, struct{}{})
	if err != nil {
		t.Fatalf("handleGetProfile failed: %v", err)
	}
	if output.Message != "No profile saved." {
		t.Errorf("message = %q", output.Message)
	}

	_, output, err = server.handleSetProfile(ctx, &mcp.CallToolRequest{},
		setProfileInput{Name: "Sam", HeightCm: 180, WeightKg: 72})
	if err != nil {
		t.Fatalf("handleSetProfile failed: %v", err)
	}
	if output.BMI != 22.22 {
		t.Errorf("bmi = %v, want 22.22", output.BMI)
	}

	// Partial update keeps existing fields
	_, output, err = server.handleSetProfile(ctx, &mcp.CallToolRequest{}, setProfileInput{Phone: "555-0142"})
	if err != nil {
		t.Fatalf("handleSetProfile failed: %v", err)
	}
	if output.Name != "Sam" || output.Phone != "555-0142" {
		t.Errorf("profile = %+v, want merged fields", output)
	}
}

func TestTodayResource(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	_, _, err := server.handleLogWorkout(ctx, &mcp.CallToolRequest{},
		logWorkoutInput{Category: "Legs", Exercise: "Squats", Sets: 3, Reps: 10})
	if err != nil {
		t.Fatalf("handleLogWorkout failed: %v", err)
	}

	result, err := server.handleTodayResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("handleTodayResource failed: %v", err)
	}
	if len(result.Contents) != 1 {
		t.Fatalf("got %d contents, want 1", len(result.Contents))
	}
	text := result.Contents[0].Text
	if !strings.Contains(text, "Squats") {
		t.Errorf("expected Squats in resource, got: %s", text)
	}
	if !strings.Contains(text, "2026-09-01") {
		t.Errorf("expected today's date in resource, got: %s", text)
	}
}

func TestSummaryResource(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	_, _, err := server.handleSetProfile(ctx, &mcp.CallToolRequest{}, setProfileInput{Name: "Sam"})
	if err != nil {
		t.Fatalf("handleSetProfile failed: %v", err)
	}

	result, err := server.handleSummaryResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("handleSummaryResource failed: %v", err)
	}
	if !strings.Contains(result.Contents[0].Text, "Sam") {
		t.Errorf("expected profile in summary, got: %s", result.Contents[0].Text)
	}
}
