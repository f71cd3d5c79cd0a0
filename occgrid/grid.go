package occgrid

import "github.com/theta-robotics/quailpath/geom"

// Grid is a read-only occupancy map. Implementations must treat
// out-of-bounds cells as blocked.
type Grid interface {
	// Width returns the number of columns.
	Width() int
	// Height returns the number of rows.
	Height() int
	// InBounds reports whether (x, y) lies within [0, Width) x [0, Height).
	InBounds(x, y int) bool
	// Blocked reports whether the cell at (x, y) is occupied. Cells outside
	// the grid are always blocked.
	Blocked(x, y int) bool
}

// CellBlocked reports whether c is blocked in g, treating c as blocked if
// it falls outside g's bounds.
func CellBlocked(g Grid, c geom.Cell) bool {
	return g.Blocked(c.X, c.Y)
}
