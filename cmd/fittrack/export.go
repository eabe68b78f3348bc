// ABOUTME: CLI command for exporting all data as JSON.
// ABOUTME: Writes to stdout or a file for backups.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data as JSON",
	Long: `Export every logged workout, the water counter, and the profile
as a single JSON document.

Examples:
  fittrack export                    # To stdout
  fittrack export -o backup.json     # To a file`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := st.Export()
		if err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}

		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode export: %w", err)
		}

		if exportOutput == "" {
			fmt.Println(string(out))
			return nil
		}

		if err := os.WriteFile(exportOutput, out, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		color.Green("✓ Exported %d workouts to %s", len(data.Workouts), exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
