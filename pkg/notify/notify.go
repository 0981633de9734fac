package notify

import (
	"fmt"
	"os/exec"

	"workspace-grid/pkg/logger"
)

// NotificationType represents the type of notification
type NotificationType int

const (
	Error NotificationType = iota
	Info
)

func (t NotificationType) String() string {
	if t == Error {
		return "ERROR"
	}
	return "INFO"
}

const title = "workspace-grid"

// NotifyService handles desktop notifications
type NotifyService struct {
	log           *logger.Logger
	notifyCommand string
	tools         []notificationTool
	terminal      *terminal
}

// NewNotifyService creates a new notification service
func NewNotifyService(notifyCommand string, log *logger.Logger) *NotifyService {
	return &NotifyService{
		log:           log,
		notifyCommand: notifyCommand,
		tools:         notificationTools,
		terminal:      newTerminal(),
	}
}

// Show displays a notification of the specified type
func (n *NotifyService) Show(message string, nType NotificationType) error {
	// First try configured notification command if available
	if n.notifyCommand != "" {
		if err := n.executeNotifyCommand(message, nType); err == nil {
			return nil
		}
		n.log.Warn("Custom notification command failed", "command", n.notifyCommand)
	}

	if err := n.trySystemNotification(message, nType); err == nil {
		return nil
	}

	return n.terminal.print(message, nType)
}

func (n *NotifyService) executeNotifyCommand(message string, nType NotificationType) error {
	n.log.Debug("Executing notify command", "notifyCommand", n.notifyCommand, "nType", nType.String())

	// Type and message are passed as positional parameters, never spliced
	// into the script.
	cmd := exec.Command("sh", "-c", n.notifyCommand+` "$1" "$2"`, "sh", nType.String(), message)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("notify command: %w", err)
	}
	return nil
}
