package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"workspace-grid/pkg/logger"
)

// fileConfig mirrors the YAML layout. Pointers tell an absent key from a
// zero value so absent keys keep their defaults.
type fileConfig struct {
	IPCCommand    *string `yaml:"ipc_command"`
	NotifyCommand *string `yaml:"notify_command"`
	Overlay       struct {
		Size          *float32       `yaml:"size"`
		Duration      *time.Duration `yaml:"duration"`
		Alpha         *float64       `yaml:"alpha"`
		InactiveColor *string        `yaml:"inactive_color"`
		ActiveColor   *string        `yaml:"active_color"`
	} `yaml:"overlay"`
}

// LoadFromFile overlays the values found in a YAML file onto c.
func (c *Config) LoadFromFile(path string, log *logger.Logger) error {
	log.Debug("Loading configuration from file", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("Failed to read config file", err, "path", path)
		return err
	}
	log.Debug("Config file read successfully", "size_bytes", len(data))

	var temp fileConfig
	if err := yaml.Unmarshal(data, &temp); err != nil {
		log.Error("Failed to parse config YAML", err)
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if temp.IPCCommand != nil {
		c.ipcCommand = *temp.IPCCommand
	}
	if temp.NotifyCommand != nil {
		c.notifyCommand = *temp.NotifyCommand
	}
	if temp.Overlay.Size != nil {
		c.overlay.Size = *temp.Overlay.Size
	}
	if temp.Overlay.Duration != nil {
		c.overlay.Duration = *temp.Overlay.Duration
	}
	if temp.Overlay.Alpha != nil {
		c.overlay.Alpha = *temp.Overlay.Alpha
	}
	if temp.Overlay.InactiveColor != nil {
		c.overlay.InactiveColor = *temp.Overlay.InactiveColor
	}
	if temp.Overlay.ActiveColor != nil {
		c.overlay.ActiveColor = *temp.Overlay.ActiveColor
	}

	if err := c.validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", path, err)
	}
	return nil
}

// loadConfigFromPath loads the configuration from a file on top of the defaults.
func loadConfigFromPath(path string, log *logger.Logger) (*Config, error) {
	config := DefaultConfig(log)
	if err := config.LoadFromFile(path, log); err != nil {
		return nil, err
	}
	return config, nil
}
