package thetastar

import (
	"github.com/theta-robotics/quailpath/geom"
	"github.com/theta-robotics/quailpath/occgrid"
)

// Jump advances from pos in direction (dx, dy), one cell at a time, until
// the current cell has a blocked cell somewhere in its 3x3 neighborhood (or
// would leave the grid), then returns that cell. It is the building block
// for WithJumpAcceleration's extra neighbor candidates: a cheap way to skip
// across open space toward the next place a direction change could matter,
// inspired by jump-point search but considerably simpler.
//
// Jump never mutates the grid and is safe to call with dx == dy == 0, in
// which case it returns pos immediately.
func Jump(grid occgrid.Grid, pos geom.Cell, dx, dy int) geom.Cell {
	if dx == 0 && dy == 0 {
		return pos
	}

	x, y := pos.X, pos.Y
	for {
		if !grid.InBounds(x, y) {
			return geom.Cell{X: x - dx, Y: y - dy}
		}
		if nearBlocked(grid, x, y) {
			return geom.Cell{X: x, Y: y}
		}
		x += dx
		y += dy
	}
}

// nearBlocked reports whether any cell in the 3x3 neighborhood centered on
// (x, y), including (x, y) itself, is blocked.
func nearBlocked(grid occgrid.Grid, x, y int) bool {
	for oy := -1; oy <= 1; oy++ {
		for ox := -1; ox <= 1; ox++ {
			if grid.Blocked(x+ox, y+oy) {
				return true
			}
		}
	}
	return false
}
