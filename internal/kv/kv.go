// ABOUTME: Key-value storage backend boundary for fittrack data.
// ABOUTME: Defines the Store interface and the absent-key sentinel error.
package kv

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrKeyNotFound reports that a key has no stored value. Callers use it to
// tell "no data yet" apart from a backend failure; the two are never
// collapsed into an empty result.
var ErrKeyNotFound = errors.New("key not found")

// Store is a string-keyed byte store holding JSON-serialized values.
// Implementations must return ErrKeyNotFound from Get for absent keys.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// DataDir returns the default data directory following the XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "fittrack")
}
