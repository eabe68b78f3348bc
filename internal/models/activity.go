// ABOUTME: ActivityRecord model and the Detail union for logged activities.
// ABOUTME: Marshals to the flat JSON shape stored under the "workouts" key.
package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Detail is the measurement attached to an activity record. Exactly one
// concrete shape is present per record: a timed exercise, a sets/reps
// exercise, or a freeform timed workout.
type Detail interface {
	// Summary renders the detail for display ("45 sec", "3 sets x 10 reps").
	Summary() string

	isDetail()
}

// TimedExercise is a time-based gym exercise (Plank, Wall Sit).
type TimedExercise struct {
	Seconds int
}

func (TimedExercise) isDetail() {}

func (t TimedExercise) Summary() string {
	return fmt.Sprintf("%d sec", t.Seconds)
}

// SetsReps is a set/rep-based gym exercise.
type SetsReps struct {
	Sets int
	Reps int
}

func (SetsReps) isDetail() {}

func (s SetsReps) Summary() string {
	return fmt.Sprintf("%d sets x %d reps", s.Sets, s.Reps)
}

// FreeformDuration is an elapsed-time workout captured by the session timer.
type FreeformDuration struct {
	Seconds int
}

func (FreeformDuration) isDetail() {}

func (f FreeformDuration) Summary() string {
	return fmt.Sprintf("%d:%02d min", f.Seconds/60, f.Seconds%60)
}

// ActivityRecord is one logged exercise or workout session. Records are
// append-only: created at stop/log time, never mutated or deleted.
type ActivityRecord struct {
	ID        uuid.UUID
	Name      string
	Category  string // gym muscle-group category; empty for freeform workouts
	Icon      string // opaque display reference, carried through unchanged
	Date      string // day bucket, YYYY-MM-DD
	StartTime string // optional human-readable clock time
	Detail    Detail
}

// NewActivityRecord creates a record with a generated UUID.
func NewActivityRecord(name, date string, detail Detail) *ActivityRecord {
	return &ActivityRecord{
		ID:     uuid.New(),
		Name:   name,
		Date:   date,
		Detail: detail,
	}
}

// WithCategory sets the gym category.
func (r *ActivityRecord) WithCategory(category string) *ActivityRecord {
	r.Category = category
	return r
}

// WithIcon sets the display icon.
func (r *ActivityRecord) WithIcon(icon string) *ActivityRecord {
	r.Icon = icon
	return r
}

// WithStartTime sets the human-readable start time.
func (r *ActivityRecord) WithStartTime(startTime string) *ActivityRecord {
	r.StartTime = startTime
	return r
}

// Validate enforces the per-record shape invariants: non-empty name, a set
// date, and exactly one detail shape.
func (r *ActivityRecord) Validate() error {
	if r.Name == "" {
		return errors.New("activity record: name is required")
	}
	if r.Date == "" {
		return errors.New("activity record: date is required")
	}
	if r.Detail == nil {
		return errors.New("activity record: detail shape is required")
	}
	return nil
}

// activityJSON is the flat wire shape. The detail union flattens into
// mutually exclusive optional fields so stored data stays compatible with
// the "workouts" key format.
type activityJSON struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Category  string `json:"category,omitempty"`
	Icon      string `json:"icon,omitempty"`
	Date      string `json:"date"`
	StartTime string `json:"startTime,omitempty"`
	Time      *int   `json:"time,omitempty"`
	Sets      *int   `json:"sets,omitempty"`
	Reps      *int   `json:"reps,omitempty"`
	Duration  *int   `json:"duration,omitempty"`
}

// MarshalJSON writes the flat wire shape with exactly one detail present.
func (r ActivityRecord) MarshalJSON() ([]byte, error) {
	out := activityJSON{
		Name:      r.Name,
		Category:  r.Category,
		Icon:      r.Icon,
		Date:      r.Date,
		StartTime: r.StartTime,
	}
	if r.ID != uuid.Nil {
		out.ID = r.ID.String()
	}

	switch d := r.Detail.(type) {
	case TimedExercise:
		out.Time = &d.Seconds
	case SetsReps:
		out.Sets = &d.Sets
		out.Reps = &d.Reps
	case FreeformDuration:
		out.Duration = &d.Seconds
	case nil:
		return nil, errors.New("marshal activity record: missing detail shape")
	default:
		return nil, fmt.Errorf("marshal activity record: unknown detail shape %T", d)
	}

	return json.Marshal(out)
}

// UnmarshalJSON reads the flat wire shape back into the tagged union.
// Detail precedence mirrors the stored format: time, then sets/reps, then
// duration.
func (r *ActivityRecord) UnmarshalJSON(data []byte) error {
	var in activityJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	r.ID = uuid.Nil
	if in.ID != "" {
		id, err := uuid.Parse(in.ID)
		if err != nil {
			return fmt.Errorf("unmarshal activity record: bad id: %w", err)
		}
		r.ID = id
	}
	r.Name = in.Name
	r.Category = in.Category
	r.Icon = in.Icon
	r.Date = in.Date
	r.StartTime = in.StartTime

	switch {
	case in.Time != nil:
		r.Detail = TimedExercise{Seconds: *in.Time}
	case in.Sets != nil && in.Reps != nil:
		r.Detail = SetsReps{Sets: *in.Sets, Reps: *in.Reps}
	case in.Duration != nil:
		r.Detail = FreeformDuration{Seconds: *in.Duration}
	default:
		r.Detail = nil
	}

	return nil
}
