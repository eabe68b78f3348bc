// ABOUTME: CLI commands for logging and timing workouts.
// ABOUTME: Supports log, start, list, and catalog subcommands.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/clock"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/session"
	"github.com/harperreed/fittrack/internal/store"
	"github.com/harperreed/fittrack/internal/workout"
	"github.com/spf13/cobra"
)

var (
	logCategory string
	logExercise string
	logSets     string
	logReps     string
	logTime     string
	listDate    string
	listToday   bool
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Log and time workouts",
	Long: `Track gym exercises and timed activities.

WORKFLOW:

  Gym logging:     fittrack workout log -c Legs -e Squats --sets 3 --reps 10
  Time-based:      fittrack workout log -c Abdominals -e Plank --time 45
  Timed session:   fittrack workout start Running
  Review:          fittrack workout list --today

COMMANDS:

  log        Log a gym exercise
  start      Start a timed workout session
  list       List logged workouts
  types      Show timeable activities
  exercises  Show gym categories and exercises

Records are append-only: once logged they are never changed or deleted.`,
}

var workoutLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a gym exercise",
	Long: `Log a gym exercise by category.

Most exercises take --sets and --reps. Time-based exercises (Plank,
Wall Sit) take --time in seconds instead.

Examples:
  fittrack workout log -c Chest -e "Bench Press" --sets 3 --reps 12
  fittrack workout log -c Abdominals -e Plank --time 60`,
	RunE: func(cmd *cobra.Command, args []string) error {
		record, err := workout.BuildRecord(appClock, workout.LogInput{
			Category: logCategory,
			Exercise: logExercise,
			Sets:     logSets,
			Reps:     logReps,
			Time:     logTime,
		})
		if err != nil {
			var verr *workout.ValidationError
			if errors.As(err, &verr) {
				color.Yellow("✗ %s", verr.Message)
				return nil
			}
			return err
		}

		if _, err := st.Append(record); err != nil {
			return fmt.Errorf("failed to log workout: %w", err)
		}

		color.Green("✓ Workout logged!")
		fmt.Printf("  %s %s: %s — %s\n", record.Icon, record.Category, record.Name, record.Detail.Summary())
		return nil
	},
}

var workoutStartCmd = &cobra.Command{
	Use:   "start <activity>",
	Short: "Start a timed workout session",
	Long: `Start a timed workout session for an activity.

The timer ticks once per second until you press Enter (or Ctrl-C), then
the session is saved as a workout with its elapsed duration. A session
stopped at zero seconds saves nothing.

Activities: Running, Gym, Volleyball, Cricket, Cycling, Yoga.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wt, ok := models.FindWorkoutType(args[0])
		if !ok {
			return fmt.Errorf("unknown activity: %s (see 'fittrack workout types')", args[0])
		}

		ctrl := session.NewController(st, appClock)
		runner, err := session.StartRunner(ctrl, session.Activity{Name: wt.Name, Icon: wt.Icon}, time.Second)
		if err != nil {
			return err
		}

		fmt.Printf("%s %s — session running. Press Enter to stop & save.\n", wt.Icon, wt.Name)

		// Enter stops the session; so does SIGINT/SIGTERM.
		input := make(chan struct{})
		go func() {
			bufio.NewReader(os.Stdin).ReadString('\n')
			close(input)
		}()
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)

		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

	wait:
		for {
			select {
			case <-ticker.C:
				elapsed := ctrl.Elapsed()
				fmt.Printf("\r  %d:%02d elapsed ", elapsed/60, elapsed%60)
			case <-input:
				break wait
			case <-sigChan:
				fmt.Println()
				break wait
			}
		}

		record, err := runner.Stop()
		if err != nil {
			return err
		}
		if record == nil {
			fmt.Println("Session stopped at zero seconds; nothing saved.")
			return nil
		}

		color.Green("✓ Saved %s workout — %s", record.Name, record.Detail.Summary())
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List logged workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := st.LoadAll()
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}

		date := listDate
		if listToday {
			date = clock.Today(appClock)
		}
		if date != "" {
			records = store.FilterByDate(records, date)
		}

		if len(records) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, r := range records {
			name := r.Name
			if r.Category != "" {
				name = r.Category + ": " + r.Name
			}
			startTime := ""
			if r.StartTime != "" {
				startTime = faint.Sprintf(" @ %s", r.StartTime)
			}
			fmt.Printf("%s %s %s — %s%s\n",
				faint.Sprint(r.Date),
				r.Icon,
				padRight(name, 28),
				r.Detail.Summary(),
				startTime)
		}
		return nil
	},
}

var workoutTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "Show timeable activities",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, w := range models.WorkoutTypes {
			fmt.Printf("  %s %s\n", w.Icon, w.Name)
		}
		return nil
	},
}

var workoutExercisesCmd = &cobra.Command{
	Use:   "exercises",
	Short: "Show gym categories and exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, c := range models.GymCategories {
			fmt.Printf("%s %s\n", c.Icon, c.Name)
			for _, e := range c.Exercises {
				marker := ""
				if models.IsTimeBased(e) {
					marker = " (time-based)"
				}
				fmt.Printf("    %s%s\n", e, marker)
			}
		}
		return nil
	},
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func init() {
	workoutLogCmd.Flags().StringVarP(&logCategory, "category", "c", "", "gym category")
	workoutLogCmd.Flags().StringVarP(&logExercise, "exercise", "e", "", "exercise name")
	workoutLogCmd.Flags().StringVar(&logSets, "sets", "", "number of sets")
	workoutLogCmd.Flags().StringVar(&logReps, "reps", "", "number of reps")
	workoutLogCmd.Flags().StringVar(&logTime, "time", "", "time in seconds (time-based exercises)")

	workoutListCmd.Flags().StringVar(&listDate, "date", "", "filter by day (YYYY-MM-DD)")
	workoutListCmd.Flags().BoolVar(&listToday, "today", false, "only today's workouts")

	workoutCmd.AddCommand(workoutLogCmd)
	workoutCmd.AddCommand(workoutStartCmd)
	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutTypesCmd)
	workoutCmd.AddCommand(workoutExercisesCmd)
	rootCmd.AddCommand(workoutCmd)
}
