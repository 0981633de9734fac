// Package overlay draws the short-lived workspace grid indicator.
package overlay

import "workspace-grid/internal/grid"

// Cell is one filled square of the indicator, in window coordinates.
type Cell struct {
	Num      int
	X, Y     float32
	Size     float32
	Selected bool
}

// Layout is everything needed to paint one indicator.
type Layout struct {
	Size     float32
	Rows     int
	CellSize float32
	Cells    []Cell
}

// Compute lays out the indicator inside a size x size square. When no
// lower-row workspace is occupied only the top two rows are drawn, at half
// the window size each. The selected cell comes last so it paints on top.
// Workspaces outside 1-9 have no place on the grid and are skipped.
func Compute(focused int, occupied grid.Occupied, size float32) Layout {
	l := Layout{Size: size, Rows: 3, CellSize: size / 3}
	if !occupied.UsesLowerRows() {
		l.Rows = 2
		l.CellSize = size / 2
	}

	for _, n := range occupied {
		if c, ok := l.cell(n); ok {
			l.Cells = append(l.Cells, c)
		}
	}
	if c, ok := l.cell(focused); ok {
		c.Selected = true
		l.Cells = append(l.Cells, c)
	}
	return l
}

func (l Layout) cell(n int) (Cell, bool) {
	if n < 1 || n > 9 {
		return Cell{}, false
	}
	row, col := grid.Position(n)
	return Cell{
		Num:  n,
		X:    float32(col) * l.CellSize,
		Y:    float32(row) * l.CellSize,
		Size: l.CellSize,
	}, true
}
