package losight

import (
	"github.com/theta-robotics/quailpath/geom"
	"github.com/theta-robotics/quailpath/occgrid"
	"github.com/theta-robotics/quailpath/raster"
)

// Visible reports whether a and b are in line of sight on grid g:
//
//  1. a == b is always visible.
//  2. Either endpoint out of bounds -> not visible.
//  3. Every cell the rasterized segment a->b passes through must be free.
//
// Visible is symmetric (Visible(g,a,b) == Visible(g,b,a)) and reflexive
// (Visible(g,a,a) == true for any a, in or out of bounds).
func Visible(g occgrid.Grid, a, b geom.Cell) bool {
	if a == b {
		return true
	}
	if !g.InBounds(a.X, a.Y) || !g.InBounds(b.X, b.Y) {
		return false
	}

	for _, c := range raster.Supercover(a, b) {
		if g.Blocked(c.X, c.Y) {
			return false
		}
	}

	return true
}
