// ABOUTME: CLI commands for the local profile.
// ABOUTME: Shows and updates name, phone, height, weight, and derived BMI.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/metrics"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	profileName   string
	profilePhone  string
	profileHeight float64
	profileWeight float64
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the saved profile",
	Long: `Show the local profile and derived BMI.

The profile is device-local display data; nothing is verified or sent
anywhere. BMI is computed from height and weight on demand, never stored.

Examples:
  fittrack profile
  fittrack profile set --height 180 --weight 72
  fittrack profile set --name "Sam" --phone "555-0142"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := st.Profile()
		if err != nil {
			return fmt.Errorf("failed to read profile: %w", err)
		}
		if p == nil {
			fmt.Println("No profile saved. Use 'fittrack profile set'.")
			return nil
		}

		if p.Name != "" {
			fmt.Printf("  Name:   %s\n", p.Name)
		}
		if p.Phone != "" {
			fmt.Printf("  Phone:  %s\n", p.Phone)
		}
		if p.HeightCm > 0 {
			fmt.Printf("  Height: %.0f cm\n", p.HeightCm)
		}
		if p.WeightKg > 0 {
			fmt.Printf("  Weight: %.1f kg\n", p.WeightKg)
		}
		if bmi, ok := metrics.BMI(p.HeightCm, p.WeightKg); ok {
			fmt.Printf("  BMI:    %.2f\n", bmi)
		}
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := st.Profile()
		if err != nil {
			return fmt.Errorf("failed to read profile: %w", err)
		}

		p := models.Profile{}
		if current != nil {
			p = *current
		}
		if profileName != "" {
			p.Name = profileName
		}
		if profilePhone != "" {
			p.Phone = profilePhone
		}
		if profileHeight > 0 {
			p.HeightCm = profileHeight
		}
		if profileWeight > 0 {
			p.WeightKg = profileWeight
		}

		if err := st.SetProfile(p); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		color.Green("✓ Profile saved")
		if bmi, ok := metrics.BMI(p.HeightCm, p.WeightKg); ok {
			fmt.Printf("  BMI: %.2f\n", bmi)
		}
		return nil
	},
}

func init() {
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "display name")
	profileSetCmd.Flags().StringVar(&profilePhone, "phone", "", "phone number")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "height in cm")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "weight in kg")

	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}
