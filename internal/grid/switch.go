package grid

import (
	"fmt"
	"slices"

	"workspace-grid/pkg/logger"
)

// Commander sends a single command to the window manager.
type Commander interface {
	SendCommand(command string) error
}

// MoveCommand moves the focused container to workspace n.
func MoveCommand(n int) string {
	return fmt.Sprintf("move container to workspace number %d", n)
}

// SwitchCommand focuses workspace n.
func SwitchCommand(n int) string {
	return fmt.Sprintf("workspace number %d", n)
}

// Switcher issues the commands that carry out a planned move.
type Switcher struct {
	wm  Commander
	log *logger.Logger
}

func NewSwitcher(wm Commander, log *logger.Logger) *Switcher {
	return &Switcher{wm: wm, log: log}
}

// Apply moves the focused container to dest when mode is ModeMove, then
// switches to dest if focus should follow. It returns the workspace that
// is current afterwards. Command failures are logged and otherwise
// ignored; the next query shows what the window manager actually did.
func (s *Switcher) Apply(current, dest int, mode Mode, occupied *Occupied) int {
	if mode == ModeMove {
		s.send(MoveCommand(dest))
		occupied.Add(dest)
	}

	if !occupied.UsesLowerRows() && !slices.Contains(followTargets, dest) {
		s.log.Debug("Focus stays", "current", current, "destination", dest)
		return current
	}

	s.send(SwitchCommand(dest))
	return dest
}

func (s *Switcher) send(command string) {
	s.log.Debug("Sending command", "command", command)
	if err := s.wm.SendCommand(command); err != nil {
		s.log.Warn("Window manager command failed", "command", command, "error", err.Error())
	}
}
