// ABOUTME: CLI commands for the daily water counter.
// ABOUTME: Shows today's progress and adds glasses.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/metrics"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/spf13/cobra"
)

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Track daily water intake",
	Long: `Track glasses of water per day.

The counter resets automatically at midnight: reading it on a new day
starts from zero.

Examples:
  fittrack water        # Today's count vs goal
  fittrack water add    # One more glass`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := st.WaterIntake()
		if err != nil {
			return fmt.Errorf("failed to read water intake: %w", err)
		}
		printWater(w)
		return nil
	},
}

var waterAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a glass of water",
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := st.AddGlass()
		if err != nil {
			return fmt.Errorf("failed to add water: %w", err)
		}
		color.Green("✓ Glass added")
		printWater(w)
		return nil
	},
}

func printWater(w models.WaterIntake) {
	goal := cfg.GetWaterGoal()
	fmt.Printf("💧 %d / %d glasses %s\n", w.Count, goal,
		progressBar(metrics.ProgressRatio(float64(w.Count), float64(goal)), 20))
}

// progressBar renders a ratio as a fixed-width bar; ratios over 1.0 fill it.
func progressBar(ratio float64, width int) string {
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func init() {
	waterCmd.AddCommand(waterAddCmd)
	rootCmd.AddCommand(waterCmd)
}
