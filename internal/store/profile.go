// ABOUTME: Profile persistence over the "profile" key.
// ABOUTME: A nil profile means none has been saved yet.
package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/harperreed/fittrack/internal/kv"
	"github.com/harperreed/fittrack/internal/models"
)

// Profile returns the saved profile, or nil if none exists.
func (s *ActivityStore) Profile() (*models.Profile, error) {
	data, err := s.backend.Get(profileKey)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	var p models.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &p, nil
}

// SetProfile overwrites the saved profile.
func (s *ActivityStore) SetProfile(p models.Profile) error {
	lock := s.locks.of(profileKey)
	lock.Lock()
	defer lock.Unlock()

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := s.backend.Set(profileKey, data); err != nil {
		return fmt.Errorf("store profile: %w", err)
	}
	return nil
}
