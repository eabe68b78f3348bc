// ABOUTME: Full-data export for backups.
// ABOUTME: Bundles records, the raw water counter, and the profile as JSON.
package store

import (
	"time"

	"github.com/harperreed/fittrack/internal/models"
)

// ExportData is the complete store contents for backup or transfer.
type ExportData struct {
	ExportedAt time.Time               `json:"exported_at"`
	Workouts   []models.ActivityRecord `json:"workouts"`
	Water      *models.WaterIntake     `json:"water,omitempty"`
	Profile    *models.Profile         `json:"profile,omitempty"`
}

// Export snapshots everything the store owns. The water counter is exported
// as stored, without the day-rollover rule, so backups round-trip exactly.
func (s *ActivityStore) Export() (*ExportData, error) {
	workouts, err := s.LoadAll()
	if err != nil {
		return nil, err
	}

	water, err := s.rawWaterIntake()
	if err != nil {
		return nil, err
	}

	profile, err := s.Profile()
	if err != nil {
		return nil, err
	}

	out := &ExportData{
		ExportedAt: s.clock.Now(),
		Workouts:   workouts,
		Profile:    profile,
	}
	if water.Date != "" {
		out.Water = &water
	}
	return out, nil
}
