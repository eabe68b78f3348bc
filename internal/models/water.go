// ABOUTME: WaterIntake daily counter model with read-time day rollover.
// ABOUTME: A single mutable record, not a log; stale dates reset to zero.
package models

// WaterIntake is the daily glasses-of-water counter. At most one record is
// live at a time; it is overwritten on each increment.
type WaterIntake struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// EffectiveOn applies the day-rollover rule: if the stored date is not the
// given day, the effective count is zero. The reset is computed at read
// time and not written back until the next increment.
func (w WaterIntake) EffectiveOn(date string) WaterIntake {
	if w.Date != date {
		return WaterIntake{Date: date}
	}
	return w
}
