// ABOUTME: CLI commands for step counts and history.
// ABOUTME: Today's progress plus a day-bucketed history chart.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/metrics"
	"github.com/spf13/cobra"
)

var historyDays int

var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "Show today's step count",
	Long: `Show today's step count against the daily goal.

Step counts come from a simulated pedometer source until a device
integration provides real readings.

Examples:
  fittrack steps                   # Today vs goal
  fittrack steps history           # Last 7 days
  fittrack steps history --days 30 # Last 30 days`,
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, err := ped.StepsToday()
		if err != nil {
			return fmt.Errorf("failed to read steps: %w", err)
		}
		goal := cfg.GetStepGoal()
		fmt.Printf("👟 %d / %d steps %s\n", steps, goal,
			progressBar(metrics.ProgressRatio(float64(steps), float64(goal)), 20))
		return nil
	},
}

var stepsHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show day-bucketed step history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if historyDays <= 0 {
			return fmt.Errorf("--days must be positive")
		}

		history := metrics.StepsHistory(appClock, ped, historyDays)
		faint := color.New(color.Faint)
		for _, d := range history {
			ratio := metrics.ProgressRatio(float64(d.Steps), float64(cfg.GetStepGoal()))
			fmt.Printf("%s %s %6d\n", faint.Sprint(padRight(d.Label, 6)), progressBar(ratio, 20), d.Steps)
		}
		return nil
	},
}

func init() {
	stepsHistoryCmd.Flags().IntVar(&historyDays, "days", 7, "number of days to show")
	stepsCmd.AddCommand(stepsHistoryCmd)
	rootCmd.AddCommand(stepsCmd)
}
