// ABOUTME: Append-only activity record operations over the "workouts" key.
// ABOUTME: LoadAll, Append, and order-preserving date filtering.
package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/harperreed/fittrack/internal/kv"
	"github.com/harperreed/fittrack/internal/models"
)

// LoadAll reads the full persisted record collection in insertion order.
// An absent key yields an empty collection; a backend failure propagates.
func (s *ActivityStore) LoadAll() ([]models.ActivityRecord, error) {
	data, err := s.backend.Get(workoutsKey)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return []models.ActivityRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load workouts: %w", err)
	}

	var records []models.ActivityRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode workouts: %w", err)
	}
	return records, nil
}

// Append validates the record, adds it to the stored collection, writes the
// collection back, and returns it. The read-modify-write runs under the
// workouts key's mutex so racing appends cannot drop records.
func (s *ActivityStore) Append(record *models.ActivityRecord) ([]models.ActivityRecord, error) {
	if err := record.Validate(); err != nil {
		return nil, err
	}

	lock := s.locks.of(workoutsKey)
	lock.Lock()
	defer lock.Unlock()

	records, err := s.LoadAll()
	if err != nil {
		return nil, err
	}

	records = append(records, *record)
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode workouts: %w", err)
	}
	if err := s.backend.Set(workoutsKey, data); err != nil {
		return nil, fmt.Errorf("store workouts: %w", err)
	}
	return records, nil
}

// Today returns the records whose day bucket is the current day.
func (s *ActivityStore) Today() ([]models.ActivityRecord, error) {
	records, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	return FilterByDate(records, s.today()), nil
}

// FilterByDate returns the subsequence of records whose date equals the
// given day bucket, preserving insertion order.
func FilterByDate(records []models.ActivityRecord, date string) []models.ActivityRecord {
	filtered := []models.ActivityRecord{}
	for _, r := range records {
		if r.Date == date {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
