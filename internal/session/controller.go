// ABOUTME: Session controller state machine for in-progress workouts.
// ABOUTME: Idle -> Running -> Idle; stop finalizes an activity record.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/harperreed/fittrack/internal/clock"
	"github.com/harperreed/fittrack/internal/models"
)

var (
	// ErrSessionActive reports a Start while a session is already running.
	ErrSessionActive = errors.New("a workout session is already running")
	// ErrNotRunning reports a Stop with no session running.
	ErrNotRunning = errors.New("no workout session is running")
)

// State is the controller's lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
)

// Activity describes what is being timed: a name plus optional category
// and icon carried onto the finalized record.
type Activity struct {
	Name     string
	Category string
	Icon     string
}

// Appender receives the finalized record at stop time. Satisfied by
// store.ActivityStore.
type Appender interface {
	Append(*models.ActivityRecord) ([]models.ActivityRecord, error)
}

// Controller tracks the single in-progress workout session. Session state
// is ephemeral: it lives in memory only and is discarded if the process
// ends before Stop. At most one session runs at a time; violating
// transitions are hard errors rather than silent no-ops.
type Controller struct {
	mu       sync.Mutex
	store    Appender
	clock    clock.Clock
	state    State
	activity Activity
	elapsed  int
}

// NewController creates an idle controller.
func NewController(store Appender, c clock.Clock) *Controller {
	return &Controller{store: store, clock: c}
}

// Start begins timing the given activity. Valid only from idle.
func (c *Controller) Start(activity Activity) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateRunning {
		return ErrSessionActive
	}
	if activity.Name == "" {
		return errors.New("start session: activity name is required")
	}

	c.state = StateRunning
	c.activity = activity
	c.elapsed = 0
	return nil
}

// Tick advances the elapsed time by one second. A tick while idle is a
// no-op, not an error, so a straggling tick racing a Stop is harmless.
func (c *Controller) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateRunning {
		return
	}
	c.elapsed++
}

// Stop ends the running session. With elapsed time it finalizes an
// activity record dated today, appends it to the store, and returns it.
// With zero elapsed seconds it returns nil and creates no record. Either
// way the controller is idle afterward.
func (c *Controller) Stop() (*models.ActivityRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateRunning {
		return nil, ErrNotRunning
	}

	activity := c.activity
	elapsed := c.elapsed
	c.state = StateIdle
	c.activity = Activity{}
	c.elapsed = 0

	if elapsed == 0 {
		return nil, nil
	}

	record := models.NewActivityRecord(activity.Name, clock.Today(c.clock), models.FreeformDuration{Seconds: elapsed})
	if activity.Category != "" {
		record.WithCategory(activity.Category)
	}
	if activity.Icon != "" {
		record.WithIcon(activity.Icon)
	}

	if _, err := c.store.Append(record); err != nil {
		return nil, fmt.Errorf("save workout: %w", err)
	}
	return record, nil
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Elapsed returns the running session's elapsed seconds (zero when idle).
func (c *Controller) Elapsed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed
}

// Activity returns the running session's activity (zero value when idle).
func (c *Controller) Activity() Activity {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activity
}
