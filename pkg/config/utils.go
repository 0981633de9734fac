package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"workspace-grid/pkg/logger"
)

// DefaultPath returns $XDG_CONFIG_HOME/workspace-grid/config.yaml.
func DefaultPath() (string, error) {
	homeConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeConfigDir, "workspace-grid", "config.yaml"), nil
}

// FindConfig locates and loads the configuration:
// 1. the provided path, which must exist and parse
// 2. the default path, if a file is there
// 3. built-in defaults
//
// Nothing is ever written to disk.
func FindConfig(providedPath string, log *logger.Logger) (*Config, error) {
	log.Debug("Looking for configuration", "provided_path", providedPath)

	if providedPath != "" {
		config, err := loadConfigFromPath(providedPath, log)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from provided path: %w", err)
		}
		return config, nil
	}

	defaultPath, err := DefaultPath()
	if err != nil {
		log.Warn("Failed to get user config directory, using defaults", "error", err.Error())
		return DefaultConfig(log), nil
	}

	if _, err := os.Stat(defaultPath); errors.Is(err, fs.ErrNotExist) {
		log.Debug("No config file, using defaults", "path", defaultPath)
		return DefaultConfig(log), nil
	}

	return loadConfigFromPath(defaultPath, log)
}
