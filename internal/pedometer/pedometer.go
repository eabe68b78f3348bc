// ABOUTME: Pedometer service boundary for device step counts.
// ABOUTME: The Simulated source stands in until a real device integration.
package pedometer

import (
	"hash/fnv"
	"time"

	"github.com/harperreed/fittrack/internal/clock"
)

// Service reports today's step count from the device.
type Service interface {
	StepsToday() (int, error)
}

// HistorySource reports the step count for a past calendar date. A real
// integration would query the device's historical step API.
type HistorySource interface {
	StepsOn(date time.Time) int
}

// Simulated generates plausible step counts (2000-9999 per day). It is a
// stand-in for a device pedometer: counts are synthesized, not measured,
// but stay stable per date for a given seed.
type Simulated struct {
	clock clock.Clock
	seed  int64
}

// NewSimulated creates a simulated pedometer with the given seed.
func NewSimulated(c clock.Clock, seed int64) *Simulated {
	return &Simulated{clock: c, seed: seed}
}

// SeedFromString derives a stable seed from an identifying string, so the
// same installation sees the same counts across invocations.
func SeedFromString(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

// StepsToday returns the synthesized count for the current date.
func (s *Simulated) StepsToday() (int, error) {
	return s.StepsOn(s.clock.Now()), nil
}

// StepsOn returns the synthesized count for the given date.
func (s *Simulated) StepsOn(date time.Time) int {
	h := fnv.New64a()
	h.Write([]byte(date.Format(clock.DayFormat)))
	var seedBytes [8]byte
	for i := 0; i < 8; i++ {
		seedBytes[i] = byte(s.seed >> (8 * i))
	}
	h.Write(seedBytes[:])
	return int(h.Sum64()%8000) + 2000
}
