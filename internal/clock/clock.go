// ABOUTME: Injectable clock capability for day-bucket and timestamp logic.
// ABOUTME: Lets tests pin "today" for deterministic day-boundary behavior.
package clock

import "time"

// DayFormat is the calendar-date layout used for day buckets.
const DayFormat = "2006-01-02"

// Clock provides the current time. Stores and controllers take a Clock
// instead of calling time.Now directly.
type Clock interface {
	Now() time.Time
}

// System is the real wall clock.
type System struct{}

// Now returns the current local time.
func (System) Now() time.Time {
	return time.Now()
}

// Fixed is a clock pinned to a single instant, for tests.
type Fixed struct {
	T time.Time
}

// Now returns the pinned instant.
func (f Fixed) Now() time.Time {
	return f.T
}

// Today formats the clock's current date as a day bucket (YYYY-MM-DD).
func Today(c Clock) string {
	return c.Now().Format(DayFormat)
}
