package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"workspace-grid/pkg/logger"
)

// Config holds the application configuration.
type Config struct {
	// Configurable via YAML file (private fields to enforce immutability)
	ipcCommand    string
	notifyCommand string
	overlay       Overlay

	log *logger.Logger
}

// Overlay describes how the workspace indicator is drawn.
type Overlay struct {
	Size          float32
	Duration      time.Duration
	Alpha         float64
	InactiveColor string
	ActiveColor   string
}

// New creates a new Config instance with the provided logger.
func New(log *logger.Logger) *Config {
	return &Config{
		log: log,
	}
}

// GetIPCCommand returns the window manager IPC binary, e.g. i3-msg.
func (c *Config) GetIPCCommand() string {
	return c.ipcCommand
}

// GetNotifyCommand returns the notify command.
func (c *Config) GetNotifyCommand() string {
	return c.notifyCommand
}

// GetOverlay returns a copy of the overlay settings.
func (c *Config) GetOverlay() Overlay {
	return c.overlay
}

// validate rejects settings the overlay or IPC client cannot work with.
func (c *Config) validate() error {
	if strings.TrimSpace(c.ipcCommand) == "" {
		return fmt.Errorf("ipc_command must not be empty")
	}
	if c.overlay.Size <= 0 {
		return fmt.Errorf("overlay.size must be positive, got %v", c.overlay.Size)
	}
	if c.overlay.Duration <= 0 {
		return fmt.Errorf("overlay.duration must be positive, got %v", c.overlay.Duration)
	}
	if c.overlay.Alpha <= 0 || c.overlay.Alpha > 1 {
		return fmt.Errorf("overlay.alpha must be in (0, 1], got %v", c.overlay.Alpha)
	}
	if _, err := ParseHexColor(c.overlay.InactiveColor); err != nil {
		return fmt.Errorf("overlay.inactive_color: %w", err)
	}
	if _, err := ParseHexColor(c.overlay.ActiveColor); err != nil {
		return fmt.Errorf("overlay.active_color: %w", err)
	}
	return nil
}

// ParseHexColor parses "#rrggbb" into an opaque color.
func ParseHexColor(s string) (color.NRGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
