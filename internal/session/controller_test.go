// ABOUTME: Tests for the session controller state machine.
// ABOUTME: Covers transitions, tick tolerance, and stop finalization.
package session

import (
	"errors"
	"testing"
	"time"

	"github.com/harperreed/fittrack/internal/clock"
	"github.com/harperreed/fittrack/internal/models"
)

type fakeAppender struct {
	records []models.ActivityRecord
	err     error
}

func (f *fakeAppender) Append(r *models.ActivityRecord) ([]models.ActivityRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.records = append(f.records, *r)
	return f.records, nil
}

func testClock() clock.Clock {
	return clock.Fixed{T: time.Date(2026, 9, 1, 7, 30, 0, 0, time.UTC)}
}

func TestStartTickStop(t *testing.T) {
	store := &fakeAppender{}
	ctrl := NewController(store, testClock())

	if err := ctrl.Start(Activity{Name: "Running", Icon: "🏃"}); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if ctrl.State() != StateRunning {
		t.Fatal("not running after Start")
	}

	ctrl.Tick()
	ctrl.Tick()
	ctrl.Tick()

	record, err := ctrl.Stop()
	if err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if record == nil {
		t.Fatal("Stop returned no record after three ticks")
	}

	d, ok := record.Detail.(models.FreeformDuration)
	if !ok {
		t.Fatalf("Detail = %#v, want FreeformDuration", record.Detail)
	}
	if d.Seconds != 3 {
		t.Errorf("duration = %d, want 3", d.Seconds)
	}
	if record.Name != "Running" || record.Icon != "🏃" {
		t.Errorf("activity not carried onto record: %+v", record)
	}
	if record.Date != "2026-09-01" {
		t.Errorf("date = %q, want today", record.Date)
	}

	if len(store.records) != 1 {
		t.Errorf("store has %d records, want 1", len(store.records))
	}
	if ctrl.State() != StateIdle {
		t.Error("not idle after Stop")
	}
}

func TestStopWithoutStart(t *testing.T) {
	store := &fakeAppender{}
	ctrl := NewController(store, testClock())

	record, err := ctrl.Stop()
	if !errors.Is(err, ErrNotRunning) {
		t.Errorf("Stop while idle error = %v, want ErrNotRunning", err)
	}
	if record != nil {
		t.Errorf("Stop while idle returned a record: %+v", record)
	}
}

func TestDoubleStopDoesNotDuplicate(t *testing.T) {
	store := &fakeAppender{}
	ctrl := NewController(store, testClock())

	if err := ctrl.Start(Activity{Name: "Yoga"}); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	ctrl.Tick()

	if _, err := ctrl.Stop(); err != nil {
		t.Fatalf("first Stop failed: %v", err)
	}
	record, err := ctrl.Stop()
	if !errors.Is(err, ErrNotRunning) {
		t.Errorf("second Stop error = %v, want ErrNotRunning", err)
	}
	if record != nil {
		t.Error("second Stop returned a record")
	}
	if len(store.records) != 1 {
		t.Errorf("store has %d records, want 1 (no duplicate)", len(store.records))
	}
}

func TestStopWithZeroTicks(t *testing.T) {
	store := &fakeAppender{}
	ctrl := NewController(store, testClock())

	if err := ctrl.Start(Activity{Name: "Cycling"}); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	record, err := ctrl.Stop()
	if err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if record != nil {
		t.Errorf("zero-tick Stop returned a record: %+v", record)
	}
	if len(store.records) != 0 {
		t.Errorf("store changed on zero-tick stop: %d records", len(store.records))
	}
	if ctrl.State() != StateIdle {
		t.Error("not idle after zero-tick Stop")
	}
}

func TestStartWhileRunning(t *testing.T) {
	ctrl := NewController(&fakeAppender{}, testClock())

	if err := ctrl.Start(Activity{Name: "Running"}); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	err := ctrl.Start(Activity{Name: "Yoga"})
	if !errors.Is(err, ErrSessionActive) {
		t.Errorf("second Start error = %v, want ErrSessionActive", err)
	}

	// The original session is untouched.
	if ctrl.Activity().Name != "Running" {
		t.Errorf("activity = %q, want Running", ctrl.Activity().Name)
	}
}

func TestStartRequiresName(t *testing.T) {
	ctrl := NewController(&fakeAppender{}, testClock())
	if err := ctrl.Start(Activity{}); err == nil {
		t.Error("Start accepted an empty activity")
	}
}

func TestTickWhileIdleIsNoOp(t *testing.T) {
	ctrl := NewController(&fakeAppender{}, testClock())

	// A straggling tick racing a stop must be harmless.
	ctrl.Tick()
	if ctrl.Elapsed() != 0 {
		t.Errorf("Elapsed = %d after idle tick, want 0", ctrl.Elapsed())
	}
	if ctrl.State() != StateIdle {
		t.Error("idle tick changed state")
	}
}

func TestStopPropagatesAppendFailure(t *testing.T) {
	appendErr := errors.New("backend down")
	store := &fakeAppender{err: appendErr}
	ctrl := NewController(store, testClock())

	if err := ctrl.Start(Activity{Name: "Running"}); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	ctrl.Tick()

	_, err := ctrl.Stop()
	if !errors.Is(err, appendErr) {
		t.Errorf("Stop error = %v, want wrapped append failure", err)
	}
	// The controller still leaves the running state.
	if ctrl.State() != StateIdle {
		t.Error("not idle after failed Stop")
	}
}

func TestSessionCarriesCategory(t *testing.T) {
	store := &fakeAppender{}
	ctrl := NewController(store, testClock())

	if err := ctrl.Start(Activity{Name: "Gym", Category: "Legs", Icon: "🏋️"}); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	ctrl.Tick()

	record, err := ctrl.Stop()
	if err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if record.Category != "Legs" {
		t.Errorf("Category = %q, want Legs", record.Category)
	}
}
