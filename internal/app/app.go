package app

import (
	"errors"
	"fmt"

	"workspace-grid/internal/grid"
	"workspace-grid/internal/wm"
	"workspace-grid/pkg/logger"
)

// ErrUsage is returned for arguments the tool cannot act on.
var ErrUsage = errors.New("usage: workspace-grid <move|switch|display> <up|down|left|right|next|N>")

// Renderer shows the workspace indicator and returns once it is gone.
type Renderer interface {
	Render(focused int, occupied grid.Occupied) error
}

type WorkspaceGrid struct {
	wm       wm.Client
	switcher *grid.Switcher
	renderer Renderer
	log      *logger.Logger
}

func NewWorkspaceGrid(client wm.Client, renderer Renderer, log *logger.Logger) *WorkspaceGrid {
	return &WorkspaceGrid{
		wm:       client,
		switcher: grid.NewSwitcher(client, log),
		renderer: renderer,
		log:      log,
	}
}

// Run carries out one invocation: navigate unless mode is display, then
// re-read the workspaces and show them.
func (g *WorkspaceGrid) Run(modeArg, moveArg string) error {
	mode, err := grid.ParseMode(modeArg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if mode != grid.ModeDisplay {
		if err := g.navigate(mode, grid.ParseRequest(moveArg)); err != nil {
			return err
		}
	}

	set, err := g.wm.ListWorkspaces()
	if err != nil {
		return err
	}
	focused, err := set.Focused()
	if err != nil {
		return err
	}

	return g.renderer.Render(focused, set.Occupied())
}

func (g *WorkspaceGrid) navigate(mode grid.Mode, req grid.Request) error {
	set, err := g.wm.ListWorkspaces()
	if err != nil {
		return err
	}
	focused, err := set.Focused()
	if err != nil {
		return err
	}
	occupied := set.Occupied()

	dest := req.Dest
	if !req.Absolute {
		g.log.Debug("Not a workspace number, planning a direction", "move", req.String())
		dest, err = grid.Plan(focused, req, occupied)
		if err != nil {
			return err
		}
	}

	current := g.switcher.Apply(focused, dest, mode, &occupied)
	g.log.Info("Navigated",
		"wm", g.wm.Name(),
		"mode", string(mode),
		"move", req.String(),
		"from", focused,
		"to", dest,
		"current", current)
	return nil
}
