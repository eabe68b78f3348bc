// ABOUTME: Charm KV-backed Store implementation with automatic cloud sync.
// ABOUTME: Optional backend; data is E2E encrypted with the user's SSH key.
package kv

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/charm/kv"
	badger "github.com/dgraph-io/badger/v3"
)

const (
	charmDBName = "fittrack"
	charmHost   = "charm.2389.dev"
)

// CharmStore is a Store backed by Charm KV, syncing to Charm Cloud after
// each write. If another process holds the write lock the store opens
// read-only and writes fail.
type CharmStore struct {
	kv       *kv.KV
	autoSync bool
	mu       sync.Mutex
}

// OpenCharm opens the Charm KV database, pulling remote data on startup.
func OpenCharm() (*CharmStore, error) {
	// Set server before opening KV
	if err := os.Setenv("CHARM_HOST", charmHost); err != nil {
		return nil, err
	}

	db, err := kv.OpenWithDefaultsFallback(charmDBName)
	if err != nil {
		return nil, fmt.Errorf("open charm kv: %w", err)
	}

	s := &CharmStore{kv: db, autoSync: true}

	// Pull remote data on startup (skip in read-only mode)
	if !db.IsReadOnly() {
		_ = db.Sync()
	}

	return s, nil
}

// Get returns the value for key, or ErrKeyNotFound.
func (s *CharmStore) Get(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, err := s.kv.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("charm get %q: %w", key, err)
	}
	return value, nil
}

// Set stores value under key and syncs to the cloud.
func (s *CharmStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process")
	}
	if err := s.kv.Set([]byte(key), value); err != nil {
		return fmt.Errorf("charm set %q: %w", key, err)
	}
	s.syncIfEnabled()
	return nil
}

// Delete removes key and syncs to the cloud.
func (s *CharmStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process")
	}
	if err := s.kv.Delete([]byte(key)); err != nil {
		return fmt.Errorf("charm delete %q: %w", key, err)
	}
	s.syncIfEnabled()
	return nil
}

// SetAutoSync enables or disables automatic sync after writes.
func (s *CharmStore) SetAutoSync(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoSync = enabled
}

// Sync synchronizes local state with Charm Cloud.
func (s *CharmStore) Sync() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kv.IsReadOnly() {
		return nil
	}
	return s.kv.Sync()
}

func (s *CharmStore) syncIfEnabled() {
	if s.autoSync && !s.kv.IsReadOnly() {
		_ = s.kv.Sync()
	}
}

// Close closes the KV database connection.
func (s *CharmStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kv != nil {
		return s.kv.Close()
	}
	return nil
}
