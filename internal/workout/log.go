// ABOUTME: Validation and record construction for the gym logging flow.
// ABOUTME: Time-based exercises need a time; everything else needs sets/reps.
package workout

import (
	"fmt"
	"strconv"

	"github.com/harperreed/fittrack/internal/clock"
	"github.com/harperreed/fittrack/internal/models"
)

// ValidationError is a recoverable user-input failure. The message is
// user-facing; no state changes when it is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// LogInput is the raw gym logging form: category and exercise selections
// plus the numeric fields as entered.
type LogInput struct {
	Category string
	Exercise string
	Sets     string
	Reps     string
	Time     string
}

// BuildRecord validates the input and constructs the activity record. The
// detail shape follows the exercise kind: time-based exercises require a
// positive time in seconds, all others require positive sets and reps.
func BuildRecord(c clock.Clock, in LogInput) (*models.ActivityRecord, error) {
	if in.Category == "" {
		return nil, invalid("please select a category")
	}
	category, ok := models.FindGymCategory(in.Category)
	if !ok {
		return nil, invalid("unknown category: %s", in.Category)
	}

	if in.Exercise == "" {
		return nil, invalid("please select an exercise")
	}
	if !category.HasExercise(in.Exercise) {
		return nil, invalid("exercise %q is not in the %s category", in.Exercise, category.Name)
	}

	var detail models.Detail
	if models.IsTimeBased(in.Exercise) {
		seconds, err := parsePositive(in.Time)
		if err != nil {
			return nil, invalid("%s is time-based: please enter a positive time in seconds", in.Exercise)
		}
		detail = models.TimedExercise{Seconds: seconds}
	} else {
		sets, err := parsePositive(in.Sets)
		if err != nil {
			return nil, invalid("please enter a positive number of sets")
		}
		reps, err := parsePositive(in.Reps)
		if err != nil {
			return nil, invalid("please enter a positive number of reps")
		}
		detail = models.SetsReps{Sets: sets, Reps: reps}
	}

	now := c.Now()
	record := models.NewActivityRecord(in.Exercise, now.Format(clock.DayFormat), detail).
		WithCategory(category.Name).
		WithIcon(category.Icon).
		WithStartTime(now.Format("3:04 PM"))
	return record, nil
}

func parsePositive(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("not positive: %d", n)
	}
	return n, nil
}
