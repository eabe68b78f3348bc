// ABOUTME: MCP tool implementations for fittrack.
// ABOUTME: Logging, listing, water, steps, and profile operations.
package mcp

import (
	"context"
	"fmt"
	"strconv"

	"github.com/harperreed/fittrack/internal/clock"
	"github.com/harperreed/fittrack/internal/metrics"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/store"
	"github.com/harperreed/fittrack/internal/workout"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_workout",
		Description: "Log a gym exercise (sets/reps, or time for time-based exercises like Plank)",
	}, s.handleLogWorkout)

	// list_workouts
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List logged workouts, optionally filtered by date (YYYY-MM-DD)",
	}, s.handleListWorkouts)

	// water_status
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "water_status",
		Description: "Get today's water intake and goal progress",
	}, s.handleWaterStatus)

	// add_water
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_water",
		Description: "Add one glass of water to today's count",
	}, s.handleAddWater)

	// steps_today
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "steps_today",
		Description: "Get today's step count and goal progress",
	}, s.handleStepsToday)

	// steps_history
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "steps_history",
		Description: "Get day-bucketed step counts for the last N days",
	}, s.handleStepsHistory)

	// get_profile
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_profile",
		Description: "Get the saved profile with computed BMI",
	}, s.handleGetProfile)

	// set_profile
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_profile",
		Description: "Save profile fields (name, phone, height, weight)",
	}, s.handleSetProfile)
}

// Tool input/output types

type logWorkoutInput struct {
	Category string `json:"category" jsonschema:"Gym category (Chest, Back, Arms, Abdominals, Legs, Shoulders)"`
	Exercise string `json:"exercise" jsonschema:"Exercise name within the category"`
	Sets     int    `json:"sets,omitempty" jsonschema:"Number of sets (sets/reps exercises)"`
	Reps     int    `json:"reps,omitempty" jsonschema:"Number of reps (sets/reps exercises)"`
	Time     int    `json:"time,omitempty" jsonschema:"Time in seconds (time-based exercises)"`
}

type workoutOutput struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Date     string `json:"date"`
	Detail   string `json:"detail"`
	Message  string `json:"message"`
}

type listWorkoutsInput struct {
	Date  string `json:"date,omitempty" jsonschema:"Filter by day (YYYY-MM-DD); omit for all"`
	Today bool   `json:"today,omitempty" jsonschema:"Shortcut: filter to today"`
}

type waterOutput struct {
	Date     string  `json:"date"`
	Count    int     `json:"count"`
	Goal     int     `json:"goal"`
	Progress float64 `json:"progress"`
	Message  string  `json:"message"`
}

type stepsOutput struct {
	Date     string  `json:"date"`
	Steps    int     `json:"steps"`
	Goal     int     `json:"goal"`
	Progress float64 `json:"progress"`
	Message  string  `json:"message"`
}

type stepsHistoryInput struct {
	Days int `json:"days,omitempty" jsonschema:"Number of days (default 7, max 30)"`
}

type profileOutput struct {
	Name     string  `json:"name,omitempty"`
	Phone    string  `json:"phone,omitempty"`
	HeightCm float64 `json:"height_cm,omitempty"`
	WeightKg float64 `json:"weight_kg,omitempty"`
	BMI      float64 `json:"bmi,omitempty"`
	Message  string  `json:"message,omitempty"`
}

type setProfileInput struct {
	Name     string  `json:"name,omitempty" jsonschema:"Display name"`
	Phone    string  `json:"phone,omitempty" jsonschema:"Phone number"`
	HeightCm float64 `json:"height_cm,omitempty" jsonschema:"Height in centimeters"`
	WeightKg float64 `json:"weight_kg,omitempty" jsonschema:"Weight in kilograms"`
}

// Tool handlers

func (s *Server) handleLogWorkout(ctx context.Context, req *mcp.CallToolRequest, input logWorkoutInput) (*mcp.CallToolResult, workoutOutput, error) {
	in := workout.LogInput{
		Category: input.Category,
		Exercise: input.Exercise,
	}
	if input.Sets > 0 {
		in.Sets = strconv.Itoa(input.Sets)
	}
	if input.Reps > 0 {
		in.Reps = strconv.Itoa(input.Reps)
	}
	if input.Time > 0 {
		in.Time = strconv.Itoa(input.Time)
	}

	record, err := workout.BuildRecord(s.clock, in)
	if err != nil {
		return nil, workoutOutput{}, err
	}
	if _, err := s.store.Append(record); err != nil {
		return nil, workoutOutput{}, fmt.Errorf("failed to log workout: %w", err)
	}

	return nil, workoutOutput{
		Name:     record.Name,
		Category: record.Category,
		Date:     record.Date,
		Detail:   record.Detail.Summary(),
		Message:  fmt.Sprintf("Logged %s: %s", record.Name, record.Detail.Summary()),
	}, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listWorkoutsInput) (*mcp.CallToolResult, any, error) {
	records, err := s.store.LoadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	date := input.Date
	if input.Today {
		date = clock.Today(s.clock)
	}
	if date != "" {
		records = store.FilterByDate(records, date)
	}

	if len(records) == 0 {
		return nil, map[string]interface{}{"message": "No workouts found."}, nil
	}

	out := make([]workoutOutput, 0, len(records))
	for _, r := range records {
		out = append(out, workoutOutput{
			Name:     r.Name,
			Category: r.Category,
			Date:     r.Date,
			Detail:   r.Detail.Summary(),
		})
	}
	return nil, out, nil
}

func (s *Server) handleWaterStatus(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, waterOutput, error) {
	w, err := s.store.WaterIntake()
	if err != nil {
		return nil, waterOutput{}, fmt.Errorf("failed to read water intake: %w", err)
	}
	return nil, s.waterOutput(w), nil
}

func (s *Server) handleAddWater(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, waterOutput, error) {
	w, err := s.store.AddGlass()
	if err != nil {
		return nil, waterOutput{}, fmt.Errorf("failed to add water: %w", err)
	}
	return nil, s.waterOutput(w), nil
}

func (s *Server) waterOutput(w models.WaterIntake) waterOutput {
	goal := s.cfg.GetWaterGoal()
	return waterOutput{
		Date:     w.Date,
		Count:    w.Count,
		Goal:     goal,
		Progress: metrics.ProgressRatio(float64(w.Count), float64(goal)),
		Message:  fmt.Sprintf("%d / %d glasses", w.Count, goal),
	}
}

func (s *Server) handleStepsToday(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, stepsOutput, error) {
	steps, err := s.ped.StepsToday()
	if err != nil {
		return nil, stepsOutput{}, fmt.Errorf("failed to read steps: %w", err)
	}

	goal := s.cfg.GetStepGoal()
	return nil, stepsOutput{
		Date:     clock.Today(s.clock),
		Steps:    steps,
		Goal:     goal,
		Progress: metrics.ProgressRatio(float64(steps), float64(goal)),
		Message:  fmt.Sprintf("%d / %d steps", steps, goal),
	}, nil
}

func (s *Server) handleStepsHistory(ctx context.Context, req *mcp.CallToolRequest, input stepsHistoryInput) (*mcp.CallToolResult, any, error) {
	days := input.Days
	if days <= 0 {
		days = 7
	}
	if days > 30 {
		days = 30
	}
	return nil, metrics.StepsHistory(s.clock, s.ped, days), nil
}

func (s *Server) handleGetProfile(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, profileOutput, error) {
	p, err := s.store.Profile()
	if err != nil {
		return nil, profileOutput{}, fmt.Errorf("failed to read profile: %w", err)
	}
	if p == nil {
		return nil, profileOutput{Message: "No profile saved."}, nil
	}

	out := profileOutput{
		Name:     p.Name,
		Phone:    p.Phone,
		HeightCm: p.HeightCm,
		WeightKg: p.WeightKg,
	}
	if bmi, ok := metrics.BMI(p.HeightCm, p.WeightKg); ok {
		out.BMI = bmi
	}
	return nil, out, nil
}

func (s *Server) handleSetProfile(ctx context.Context, req *mcp.CallToolRequest, input setProfileInput) (*mcp.CallToolResult, profileOutput, error) {
	current, err := s.store.Profile()
	if err != nil {
		return nil, profileOutput{}, fmt.Errorf("failed to read profile: %w", err)
	}

	p := models.Profile{}
	if current != nil {
		p = *current
	}
	if input.Name != "" {
		p.Name = input.Name
	}
	if input.Phone != "" {
		p.Phone = input.Phone
	}
	if input.HeightCm > 0 {
		p.HeightCm = input.HeightCm
	}
	if input.WeightKg > 0 {
		p.WeightKg = input.WeightKg
	}

	if err := s.store.SetProfile(p); err != nil {
		return nil, profileOutput{}, fmt.Errorf("failed to save profile: %w", err)
	}

	out := profileOutput{
		Name:     p.Name,
		Phone:    p.Phone,
		HeightCm: p.HeightCm,
		WeightKg: p.WeightKg,
		Message:  "Profile saved.",
	}
	if bmi, ok := metrics.BMI(p.HeightCm, p.WeightKg); ok {
		out.BMI = bmi
	}
	return nil, out, nil
}
