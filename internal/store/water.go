// ABOUTME: Daily water-intake counter over the "waterIntake" key.
// ABOUTME: Stale dates reset to zero at read time; increments persist today.
package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/harperreed/fittrack/internal/kv"
	"github.com/harperreed/fittrack/internal/models"
)

// WaterIntake returns today's effective counter. A stored value from an
// earlier day reads as {today, 0}; nothing is written back until the next
// increment.
func (s *ActivityStore) WaterIntake() (models.WaterIntake, error) {
	stored, err := s.rawWaterIntake()
	if err != nil {
		return models.WaterIntake{}, err
	}
	return stored.EffectiveOn(s.today()), nil
}

// AddGlass increments today's effective count by one and persists it.
func (s *ActivityStore) AddGlass() (models.WaterIntake, error) {
	lock := s.locks.of(waterKey)
	lock.Lock()
	defer lock.Unlock()

	current, err := s.WaterIntake()
	if err != nil {
		return models.WaterIntake{}, err
	}

	current.Count++
	data, err := json.Marshal(current)
	if err != nil {
		return models.WaterIntake{}, fmt.Errorf("encode water intake: %w", err)
	}
	if err := s.backend.Set(waterKey, data); err != nil {
		return models.WaterIntake{}, fmt.Errorf("store water intake: %w", err)
	}
	return current, nil
}

// rawWaterIntake reads the stored counter without the rollover rule.
func (s *ActivityStore) rawWaterIntake() (models.WaterIntake, error) {
	data, err := s.backend.Get(waterKey)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return models.WaterIntake{}, nil
	}
	if err != nil {
		return models.WaterIntake{}, fmt.Errorf("load water intake: %w", err)
	}

	var w models.WaterIntake
	if err := json.Unmarshal(data, &w); err != nil {
		return models.WaterIntake{}, fmt.Errorf("decode water intake: %w", err)
	}
	return w, nil
}
