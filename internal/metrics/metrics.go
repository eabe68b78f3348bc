// ABOUTME: Derived metrics: BMI, goal progress ratios, steps history.
// ABOUTME: Pure functions computed on read, never persisted.
package metrics

import (
	"fmt"
	"math"
	"time"

	"github.com/harperreed/fittrack/internal/clock"
	"github.com/harperreed/fittrack/internal/pedometer"
)

// BMI computes body mass index from height in cm and weight in kg, rounded
// to two decimal places. ok is false when either input is not positive.
func BMI(heightCm, weightKg float64) (bmi float64, ok bool) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, false
	}
	h := heightCm / 100
	return math.Round(weightKg/(h*h)*100) / 100, true
}

// ProgressRatio returns current/goal. It may exceed 1.0; the caller is
// responsible for ensuring goal is positive.
func ProgressRatio(current, goal float64) float64 {
	return current / goal
}

// DaySteps is one day-bucket entry in a steps history.
type DaySteps struct {
	Label string `json:"label"`
	Steps int    `json:"steps"`
}

// StepsHistory returns exactly days entries for the consecutive calendar
// dates ending today, oldest first. Labels are D/M day strings.
func StepsHistory(c clock.Clock, source pedometer.HistorySource, days int) []DaySteps {
	now := c.Now()
	history := make([]DaySteps, 0, days)
	for i := days - 1; i >= 0; i-- {
		d := now.AddDate(0, 0, -i)
		history = append(history, DaySteps{
			Label: dayLabel(d),
			Steps: source.StepsOn(d),
		})
	}
	return history
}

func dayLabel(t time.Time) string {
	return fmt.Sprintf("%d/%d", t.Day(), int(t.Month()))
}
