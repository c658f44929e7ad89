package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

// App holds configuration for the campaign editor.
type App struct {
	Addr    string `envconfig:"PACETRACK_ADDR" default:":8080"`
	DataDir string `envconfig:"PACETRACK_DATA_DIR"`
}

// LoadApp loads editor configuration from environment variables. When no
// data directory is configured it falls back to the XDG data home.
func LoadApp() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.DataDir == "" {
		dir, err := defaultDataDir()
		if err != nil {
			return nil, err
		}
		cfg.DataDir = dir
	}
	return &cfg, nil
}

// defaultDataDir respects XDG_DATA_HOME if set, otherwise falls back to
// ~/.local/share/pacetrack.
func defaultDataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "pacetrack"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".local", "share", "pacetrack"), nil
}
