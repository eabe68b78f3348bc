// ABOUTME: Runner drives the controller with a periodic one-second ticker.
// ABOUTME: The ticker is owned by one goroutine and always released on stop.
package session

import (
	"sync"
	"time"

	"github.com/harperreed/fittrack/internal/models"
)

// Runner owns the periodic ticker for a running session. Exactly one
// goroutine ticks the controller; Stop releases the ticker exactly once
// regardless of how many times it is called.
type Runner struct {
	ctrl     *Controller
	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
}

// StartRunner starts a session on the controller and begins ticking it at
// the given interval. An interval of zero or less means one second.
func StartRunner(ctrl *Controller, activity Activity, interval time.Duration) (*Runner, error) {
	if err := ctrl.Start(activity); err != nil {
		return nil, err
	}
	if interval <= 0 {
		interval = time.Second
	}

	r := &Runner{
		ctrl:   ctrl,
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}
	go r.loop()
	return r, nil
}

func (r *Runner) loop() {
	defer r.ticker.Stop()
	for {
		select {
		case <-r.ticker.C:
			r.ctrl.Tick()
		case <-r.done:
			return
		}
	}
}

// Stop halts ticking and finalizes the session via the controller. Only
// the first call stops anything; later calls return (nil, nil).
func (r *Runner) Stop() (*models.ActivityRecord, error) {
	var record *models.ActivityRecord
	var err error
	stopped := false

	r.stopOnce.Do(func() {
		close(r.done)
		record, err = r.ctrl.Stop()
		stopped = true
	})

	if !stopped {
		return nil, nil
	}
	return record, err
}
