// Package project persists the solver's external configuration
// (truck envelope, department priorities, tuning constants) as a JSON
// file under the user's home directory, the same shape as the
// teacher's app-config persistence.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/BudgetAppV2/truck-load-planner/internal/model"
)

// DefaultConfigDir returns the default directory for wallplanner
// configuration. On all platforms this is ~/.wallplanner/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".wallplanner")
}

// DefaultConfigPath returns the default path for the config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveConfig persists a model.Config to the given path as JSON,
// creating any missing parent directories.
func SaveConfig(path string, cfg model.Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadConfig reads a model.Config from the given path. If the file
// does not exist, it returns model.DefaultConfig() with no error.
func LoadConfig(path string) (model.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultConfig(), nil
		}
		return model.Config{}, err
	}
	var cfg model.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return model.Config{}, err
	}
	return cfg.Normalized(), nil
}
