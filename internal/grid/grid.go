// Package grid maps workspaces 1-9 onto a 3x3 grid, plans moves across it
// and applies them through the window manager.
//
//	1 2 3
//	4 5 6
//	7 8 9
package grid

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
)

// ErrNotFound is returned when a workspace expected in a set is missing.
var ErrNotFound = errors.New("workspace not found")

// Columns is the width of the workspace grid.
const Columns = 3

// Position returns the 0-indexed row and column of workspace n.
func Position(n int) (row, col int) {
	return (n - 1) / Columns, (n - 1) % Columns
}

// lowerRows are the workspaces whose occupancy switches the grid to its
// full three-row form. The set includes 3.
var lowerRows = []int{3, 6, 7, 8, 9}

// followTargets always receive focus after a switch or move.
var followTargets = []int{1, 2, 4, 5}

// Occupied is an ordered set of workspace numbers, kept in the order the
// window manager reported them.
type Occupied []int

// Contains reports whether n is in the set.
func (o Occupied) Contains(n int) bool {
	return slices.Contains(o, n)
}

// Index returns the position of n, or -1.
func (o Occupied) Index(n int) int {
	return slices.Index(o, n)
}

// Add appends n unless it is already present.
func (o *Occupied) Add(n int) {
	if !o.Contains(n) {
		*o = append(*o, n)
	}
}

// IntersectsAny reports whether any of nums is in the set.
func (o Occupied) IntersectsAny(nums ...int) bool {
	for _, n := range nums {
		if o.Contains(n) {
			return true
		}
	}
	return false
}

// UsesLowerRows reports whether the layout reaches past the compact
// two-row indicator.
func (o Occupied) UsesLowerRows() bool {
	return o.IntersectsAny(lowerRows...)
}

// Mode selects what a run does with the computed destination.
type Mode string

const (
	ModeMove    Mode = "move"
	ModeSwitch  Mode = "switch"
	ModeDisplay Mode = "display"
)

// ParseMode accepts exactly the three known modes.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeMove, ModeSwitch, ModeDisplay:
		return m, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want move, switch or display)", s)
	}
}

// Direction is a relative movement token. Unknown tokens are kept as-is
// and plan as no movement.
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
	Next  Direction = "next"
)

// Request is either an absolute destination or a direction.
type Request struct {
	Absolute  bool
	Dest      int
	Direction Direction
}

// ParseRequest builds an absolute request when s is an integer and a
// directional one otherwise.
func ParseRequest(s string) Request {
	if n, err := strconv.Atoi(s); err == nil {
		return Request{Absolute: true, Dest: n}
	}
	return Request{Direction: Direction(s)}
}

func (r Request) String() string {
	if r.Absolute {
		return strconv.Itoa(r.Dest)
	}
	return string(r.Direction)
}
