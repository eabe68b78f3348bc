// ABOUTME: ActivityStore owns the persisted record collection and counters.
// ABOUTME: Serializes read-modify-write cycles per storage key.
package store

import (
	"sync"

	"github.com/harperreed/fittrack/internal/clock"
	"github.com/harperreed/fittrack/internal/kv"
)

// Storage keys owned by the store.
const (
	workoutsKey = "workouts"
	waterKey    = "waterIntake"
	profileKey  = "profile"
)

// ActivityStore is the single owner of the persisted activity records, the
// daily water counter, and the profile. All writes to a key go through a
// per-key mutex so concurrent read-modify-write cycles cannot lose updates.
type ActivityStore struct {
	backend kv.Store
	clock   clock.Clock
	locks   keyedMutex
}

// New creates an ActivityStore over the given backend and clock.
func New(backend kv.Store, c clock.Clock) *ActivityStore {
	return &ActivityStore{backend: backend, clock: c}
}

// Close closes the underlying backend.
func (s *ActivityStore) Close() error {
	return s.backend.Close()
}

// today returns the current day bucket.
func (s *ActivityStore) today() string {
	return clock.Today(s.clock)
}

// keyedMutex hands out one mutex per storage key.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedMutex) of(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	return m
}
