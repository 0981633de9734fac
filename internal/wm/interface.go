package wm

import (
	"errors"
	"fmt"

	"workspace-grid/internal/grid"
)

// ErrIPC wraps every failure to talk to the window manager.
var ErrIPC = errors.New("window manager ipc failure")

//go:generate mockgen -destination=mocks/mock_client.go -package=mocks workspace-grid/internal/wm Client

type Client interface {
	// ListWorkspaces returns the workspaces in the order the WM reports them
	ListWorkspaces() (WorkspaceSet, error)
	// SendCommand runs one WM command, e.g. "workspace number 3"
	SendCommand(command string) error
	// Name returns the WM name for logging/display
	Name() string
}

type Workspace struct {
	Num     int
	Focused bool
}

type WorkspaceSet []Workspace

// Occupied returns the number of every workspace in report order.
func (s WorkspaceSet) Occupied() grid.Occupied {
	occupied := make(grid.Occupied, 0, len(s))
	for _, w := range s {
		occupied.Add(w.Num)
	}
	return occupied
}

// Focused returns the number of the focused workspace.
func (s WorkspaceSet) Focused() (int, error) {
	for _, w := range s {
		if w.Focused {
			return w.Num, nil
		}
	}
	return 0, fmt.Errorf("no focused workspace among %d: %w", len(s), grid.ErrNotFound)
}
