// ABOUTME: Root Cobra command for fittrack CLI.
// ABOUTME: Opens the activity store via config in PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/fittrack/internal/clock"
	"github.com/harperreed/fittrack/internal/config"
	"github.com/harperreed/fittrack/internal/pedometer"
	"github.com/harperreed/fittrack/internal/store"
	"github.com/spf13/cobra"
)

var (
	cfg      *config.Config
	st       *store.ActivityStore
	appClock clock.Clock = clock.System{}
	ped      *pedometer.Simulated

	dataDirFlag string
)

var rootCmd = &cobra.Command{
	Use:   "fittrack",
	Short: "Personal fitness tracker",
	Long: `Fittrack is a CLI tool for tracking workouts, water, and steps.

QUICK START:

  $ fittrack workout log -c Legs -e Squats --sets 3 --reps 10
  $ fittrack workout start Running     # Timed session, Enter to stop & save
  $ fittrack workout list --today      # Today's activity
  $ fittrack water add                 # One more glass
  $ fittrack steps                     # Today's count vs goal

WORKOUTS:

  Gym exercises are logged by category (Chest, Back, Arms, Abdominals,
  Legs, Shoulders). Most take --sets and --reps; time-based exercises
  (Plank, Wall Sit) take --time in seconds. Freeform activities (Running,
  Cycling, Yoga, ...) are timed live with 'workout start'.

PROFILE:

  $ fittrack profile set --height 180 --weight 72
  $ fittrack profile                   # Shows BMI

MCP INTEGRATION:

  Run 'fittrack mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants.

DATA STORAGE:

  Records live in a local Badger store at ~/.local/share/fittrack by
  default. Set "backend": "charm" in the config to sync via Charm Cloud
  (E2E encrypted with your SSH key).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if dataDirFlag != "" {
			cfg.DataDir = dataDirFlag
			cfg.Backend = "badger"
		}

		backend, err := cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open storage backend: %w", err)
		}
		st = store.New(backend, appClock)
		ped = pedometer.NewSimulated(appClock, pedometer.SeedFromString(cfg.GetDataDir()))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if st != nil {
			err := st.Close()
			st = nil
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "override the data directory (forces the badger backend)")
}
