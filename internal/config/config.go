// ABOUTME: Fittrack configuration with backend selection and daily goals.
// ABOUTME: Handles settings, XDG paths, and the storage backend factory.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/fittrack/internal/kv"
)

// Default daily goals.
const (
	DefaultStepGoal  = 10000
	DefaultWaterGoal = 8 // glasses
)

// Config stores fittrack configuration.
type Config struct {
	// Backend selects the storage backend: "badger" (default, local) or
	// "charm" (synced via Charm Cloud).
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for local data storage. Supports ~
	// expansion. Defaults to ~/.local/share/fittrack.
	DataDir string `json:"data_dir,omitempty"`

	// StepGoal is the daily step target.
	StepGoal int `json:"step_goal,omitempty"`

	// WaterGoal is the daily water target in glasses.
	WaterGoal int `json:"water_goal,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "badger".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "badger"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return kv.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetStepGoal returns the daily step goal.
func (c *Config) GetStepGoal() int {
	if c.StepGoal <= 0 {
		return DefaultStepGoal
	}
	return c.StepGoal
}

// GetWaterGoal returns the daily water goal in glasses.
func (c *Config) GetWaterGoal() int {
	if c.WaterGoal <= 0 {
		return DefaultWaterGoal
	}
	return c.WaterGoal
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStore creates a kv.Store based on the configured backend.
func (c *Config) OpenStore() (kv.Store, error) {
	switch backend := c.GetBackend(); backend {
	case "badger":
		return kv.OpenBadger(filepath.Join(c.GetDataDir(), "badger"))
	case "charm":
		return kv.OpenCharm()
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "fittrack", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
