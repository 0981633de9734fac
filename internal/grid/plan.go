package grid

import (
	"fmt"
	"slices"
)

var (
	leftColumn  = []int{1, 4, 7}
	rightColumn = []int{3, 6, 9}
)

// Plan computes the destination workspace for req starting from current.
// Moves never wrap: a step off the grid leaves current unchanged. Next
// cycles through occupied in report order and fails with ErrNotFound when
// current is not in it.
func Plan(current int, req Request, occupied Occupied) (int, error) {
	if req.Absolute {
		return req.Dest, nil
	}

	switch req.Direction {
	case Up:
		if current-3 > 0 {
			return current - 3, nil
		}
	case Down:
		if current+3 < 10 {
			return current + 3, nil
		}
	case Left:
		if !slices.Contains(leftColumn, current) {
			return current - 1, nil
		}
	case Right:
		if !slices.Contains(rightColumn, current) {
			return current + 1, nil
		}
	case Next:
		i := occupied.Index(current)
		if i < 0 {
			return 0, fmt.Errorf("next from %d: %w", current, ErrNotFound)
		}
		return occupied[(i+1)%len(occupied)], nil
	}

	return current, nil
}
