package config

import (
	"time"

	"workspace-grid/pkg/logger"
)

const (
	DefaultIPCCommand      = "i3-msg"
	DefaultOverlaySize     = 90
	DefaultOverlayDuration = 200 * time.Millisecond
	DefaultOverlayAlpha    = 0.5
	// Tk's "gray" and "gray20".
	DefaultInactiveColor = "#bebebe"
	DefaultActiveColor   = "#333333"
)

// DefaultConfig creates a default configuration.
func DefaultConfig(log *logger.Logger) *Config {
	log.Debug("Creating default configuration")

	return &Config{
		ipcCommand: DefaultIPCCommand,
		overlay: Overlay{
			Size:          DefaultOverlaySize,
			Duration:      DefaultOverlayDuration,
			Alpha:         DefaultOverlayAlpha,
			InactiveColor: DefaultInactiveColor,
			ActiveColor:   DefaultActiveColor,
		},
		log: log,
	}
}
